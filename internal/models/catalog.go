// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package models

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// City groups the buildings that can be used as route endpoints.
type City struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	Buildings []Building `json:"buildings"`
}

// Building is an addressable route endpoint. IDs are unique across all cities.
type Building struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Coordinates
}

// TransportProfile holds the static characteristics of one transport type.
type TransportProfile struct {
	Type            string  `json:"type"`
	Icon            string  `json:"icon"`
	Color           string  `json:"color"`
	AvgSpeed        float64 `json:"avgSpeed"`
	CostPerKm       float64 `json:"costPerKm"`
	CarbonFootprint float64 `json:"carbonFootprint"`
}

// Route tier names.
const (
	TierShort            = "short"
	TierMedium           = "medium"
	TierLong             = "long"
	TierIntercontinental = "intercontinental"
)

// RouteTierConfig lists the transport types considered for a distance tier
// and the types highlighted as fastest, cheapest and greenest.
type RouteTierConfig struct {
	Recommended []string `json:"recommended"`
	Fastest     string   `json:"fastest"`
	Cheapest    string   `json:"cheapest"`
	Greenest    string   `json:"greenest"`
}

// Highlights reports whether transportType is one of the tier's designated picks.
func (t RouteTierConfig) Highlights(transportType string) bool {
	return transportType == t.Fastest || transportType == t.Cheapest || transportType == t.Greenest
}

// Place is a restaurant, cafe or attraction in a city's catalog.
type Place struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Mood        []string `json:"mood"`
}

// CityPlaces is the per-city place catalog, grouped by category.
type CityPlaces struct {
	Restaurants []Place `json:"restaurants"`
	Cafes       []Place `json:"cafes"`
	Attractions []Place `json:"attractions"`
}

// MoodProfile describes a travel disposition.
type MoodProfile struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Tips        []string `json:"tips"`
}

// Time-of-day buckets.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
)

// TimeOfDayProfile is display text for a departure time bucket.
type TimeOfDayProfile struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

// Duration categories.
const (
	DurationShort    = "short"
	DurationHalfDay  = "half-day"
	DurationFullDay  = "full-day"
	DurationMultiDay = "multi-day"
)

// DurationProfile describes a trip length category. MinStops and MaxStops
// are authoritative; NumberOfStops is the display form.
type DurationProfile struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	NumberOfStops string `json:"numberOfStops"`
	MinStops      int    `json:"minStops"`
	MaxStops      int    `json:"maxStops"`
}

// Persona is a canned voice used to phrase the recommendation summary.
type Persona struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Greeting string `json:"greeting"`
	Style    string `json:"style"`
}

// Weather conditions produced by the weather snapshot.
const (
	WeatherSunny = "sunny"
	WeatherRainy = "rainy"
	WeatherCold  = "cold"
	WeatherHot   = "hot"
)

// WeatherAdaptation holds advice for one weather condition.
type WeatherAdaptation struct {
	Recommendations []string `json:"recommendations"`
	Tips            []string `json:"tips"`
}
