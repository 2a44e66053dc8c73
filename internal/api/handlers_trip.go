// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/tripweaver/internal/logging"
	"github.com/tomtom215/tripweaver/internal/metrics"
	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/recommend"
)

// CalculateRoute plans a route between two buildings
//
// @Summary Calculate a route
// @Description Resolves both buildings, classifies the distance into a route tier and ranks the tier's transport options by duration.
// @Description mood, duration and departureTime are validated but do not affect the route. The legacy keys departure and destination are accepted when the normalized keys are absent.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body models.CalculateRouteRequest true "Route endpoints"
// @Success 200 {object} models.APIResponse{data=models.RouteResult} "Planned route"
// @Failure 400 {object} models.APIResponse "INVALID_REQUEST or VALIDATION_ERROR"
// @Failure 404 {object} models.APIResponse "BUILDINGS_NOT_FOUND"
// @Router /calculate-route [post]
func (h *Handler) CalculateRoute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req models.CalculateRouteRequest
	if !decodeAndValidate(w, r, "calculate_route", &req, req.Normalize) {
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	result, err := h.planner.Plan(ctx, req.DepartureBuildingID, req.DestinationBuildingID)
	if err != nil {
		respondDomainError(w, r, "calculate_route", err)
		return
	}

	metrics.RecordRoute(result.RouteType, result.Distance)
	respondSuccess(w, result, start)
}

// Recommend scores places in a city for a mood, duration and departure time
//
// @Summary Recommend places
// @Description Scores the city's restaurants, cafes and attractions against the mood and returns the best of each with a persona greeting.
// @Description Unknown moods fall back to the adventurous profile. departureTime is RFC 3339 or a zoneless local time such as 2024-01-01T19:00.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Recommendation inputs"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResult} "Recommendations"
// @Failure 400 {object} models.APIResponse "INVALID_REQUEST or VALIDATION_ERROR"
// @Failure 404 {object} models.APIResponse "CITY_NOT_FOUND"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req models.RecommendRequest
	if !decodeAndValidate(w, r, "recommend", &req, nil) {
		return
	}

	departure, err := models.ParseDepartureTime(req.DepartureTime, h.location)
	if err != nil {
		respondDomainError(w, r, "recommend", err)
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	result, err := h.engine.Recommend(ctx, recommend.Request{
		CityID:        req.CityID,
		Mood:          req.Mood,
		Duration:      float64(req.Duration),
		DepartureTime: departure,
	})
	if err != nil {
		respondDomainError(w, r, "recommend", err)
		return
	}

	recordRecommendation(result)
	respondSuccess(w, result, start)
}

// PlanTrip plans a route and recommends places at the destination
//
// @Summary Plan a trip
// @Description Plans the route, then concurrently recommends places in the destination building's city and draws a weather snapshot for it.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body models.PlanTripRequest true "Trip inputs"
// @Success 200 {object} models.APIResponse{data=models.PlanTripResult} "Route, recommendations and weather"
// @Failure 400 {object} models.APIResponse "INVALID_REQUEST or VALIDATION_ERROR"
// @Failure 404 {object} models.APIResponse "BUILDINGS_NOT_FOUND or CITY_NOT_FOUND"
// @Router /plan-trip [post]
func (h *Handler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req models.PlanTripRequest
	if !decodeAndValidate(w, r, "plan_trip", &req, req.Normalize) {
		return
	}

	departure, err := models.ParseDepartureTime(req.DepartureTime, h.location)
	if err != nil {
		respondDomainError(w, r, "plan_trip", err)
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	route, err := h.planner.Plan(ctx, req.DepartureBuildingID, req.DestinationBuildingID)
	if err != nil {
		respondDomainError(w, r, "plan_trip", err)
		return
	}
	cityID := route.Destination.City

	var (
		recs    *models.RecommendationResult
		weather models.WeatherSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recs, err = h.engine.Recommend(gctx, recommend.Request{
			CityID:        cityID,
			Mood:          req.Mood,
			Duration:      float64(req.Duration),
			DepartureTime: departure,
		})
		return err
	})
	g.Go(func() error {
		var err error
		weather, err = h.advisor.Weather(cityID)
		return err
	})
	if err := g.Wait(); err != nil {
		respondDomainError(w, r, "plan_trip", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("route_type", route.RouteType).
		Str("city_id", cityID).
		Str("condition", weather.Condition).
		Msg("trip planned")

	metrics.RecordRoute(route.RouteType, route.Distance)
	recordRecommendation(recs)
	metrics.RecordWeather(weather.Condition)
	respondSuccess(w, models.PlanTripResult{
		Route:           route,
		Recommendations: recs,
		Weather:         &weather,
	}, start)
}

func recordRecommendation(result *models.RecommendationResult) {
	metrics.RecordRecommendation(result.Mood.ID, result.TimeOfDay.ID, len(result.Recommendations.Attractions))
}
