// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package models

import "time"

// WeatherSnapshot is a synthetic weather reading for a city.
type WeatherSnapshot struct {
	CityID      string   `json:"cityId"`
	Condition   string   `json:"condition"`
	Temperature int      `json:"temperature"`
	Humidity    int      `json:"humidity"`
	WindSpeed   int      `json:"windSpeed"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// Congestion levels reported by the traffic snapshot.
const (
	CongestionHeavy    = "heavy"
	CongestionModerate = "moderate"
	CongestionLight    = "light"
)

// TrafficSnapshot is a synthetic congestion reading for a route.
type TrafficSnapshot struct {
	RouteID         string    `json:"routeId"`
	CongestionLevel string    `json:"congestionLevel"`
	Delay           int       `json:"delay"`
	AlternateRoutes int       `json:"alternateRoutes"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// ChatResponse is the reply of the keyword chat responder.
type ChatResponse struct {
	Response    string   `json:"response"`
	Topic       string   `json:"topic"`
	Suggestions []string `json:"suggestions"`
}
