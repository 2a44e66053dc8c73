// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package models

// RouteEndpoint is a resolved building together with the id of its city.
type RouteEndpoint struct {
	Building
	City string `json:"city"`
}

// TransportOption is one ranked way of travelling a route.
// Duration and Delay are whole minutes.
type TransportOption struct {
	Type            string  `json:"type"`
	Icon            string  `json:"icon"`
	Color           string  `json:"color"`
	Distance        float64 `json:"distance"`
	Duration        int     `json:"duration"`
	Cost            float64 `json:"cost"`
	CarbonFootprint float64 `json:"carbonFootprint"`
	Delay           int     `json:"delay"`
	Recommended     bool    `json:"recommended"`
}

// RouteSummary compares the returned transport options.
type RouteSummary struct {
	Fastest       string  `json:"fastest"`
	Cheapest      string  `json:"cheapest"`
	Greenest      string  `json:"greenest"`
	AverageCarbon float64 `json:"averageCarbon"`
	TreesToOffset int     `json:"treesToOffset"`
}

// RouteResult is the output of route planning.
type RouteResult struct {
	Departure        RouteEndpoint     `json:"departure"`
	Destination      RouteEndpoint     `json:"destination"`
	Distance         float64           `json:"distance"`
	TransportOptions []TransportOption `json:"transportOptions"`
	RoutePoints      []Coordinates     `json:"routePoints"`
	RouteType        string            `json:"routeType"`
	Summary          *RouteSummary     `json:"summary,omitempty"`
}
