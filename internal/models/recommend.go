// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package models

// ScoredPlace is a catalog place with its ranking score.
type ScoredPlace struct {
	Place
	Score float64 `json:"score"`
}

// Recommendations holds the ranked and truncated place lists.
type Recommendations struct {
	Restaurants []ScoredPlace `json:"restaurants"`
	Cafes       []ScoredPlace `json:"cafes"`
	Attractions []ScoredPlace `json:"attractions"`
}

// Total returns the number of places across all categories.
func (r Recommendations) Total() int {
	return len(r.Restaurants) + len(r.Cafes) + len(r.Attractions)
}

// RecommendationResult is the output of the recommendation engine.
type RecommendationResult struct {
	Mood                MoodProfile      `json:"mood"`
	TimeOfDay           TimeOfDayProfile `json:"timeOfDay"`
	Duration            DurationProfile  `json:"duration"`
	Recommendations     Recommendations  `json:"recommendations"`
	Persona             Persona          `json:"persona"`
	PersonalizedMessage string           `json:"personalizedMessage"`
	Tips                []string         `json:"tips"`
}

// PlanTripResult chains a route with recommendations and weather for the
// destination city.
type PlanTripResult struct {
	Route           *RouteResult          `json:"route"`
	Recommendations *RecommendationResult `json:"recommendations"`
	Weather         *WeatherSnapshot      `json:"weather"`
}
