// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package models defines the data structures shared by the planning core and
the HTTP layer.

Model Categories:

1. Catalog Models:
  - City, Building, Coordinates: static geography
  - TransportProfile, RouteTierConfig: transport speeds, prices and per-tier choices
  - Place, CityPlaces: restaurants, cafes and attractions per city
  - MoodProfile, TimeOfDayProfile, DurationProfile, Persona, WeatherAdaptation

2. Result Models:
  - RouteResult, TransportOption, RouteSummary
  - RecommendationResult, ScoredPlace
  - WeatherSnapshot, TrafficSnapshot, ChatResponse
  - PlanTripResult

3. API Request/Response Models:
  - CalculateRouteRequest, PlanTripRequest, RecommendRequest, ChatRequest
  - APIResponse: standard envelope with Metadata and APIError

# Errors

The core reports failures with the sentinel kinds in errors.go. Callers
match with errors.Is:

	if errors.Is(err, models.ErrNotFound) {
		// 404
	}

JSON field names follow the camelCase of the original web client and are
stable API.
*/
package models
