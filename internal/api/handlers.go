// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/recommend"
)

// CityDirectory lists cities and their buildings.
type CityDirectory interface {
	Cities() []models.City
	Buildings(cityID string) ([]models.Building, bool)
}

// RoutePlanner plans a route between two buildings.
type RoutePlanner interface {
	Plan(ctx context.Context, departureID, destinationID string) (*models.RouteResult, error)
}

// Recommender scores places for a city.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*models.RecommendationResult, error)
}

// Advisor serves the weather, traffic and chat advisories.
type Advisor interface {
	Weather(cityID string) (models.WeatherSnapshot, error)
	Traffic(routeID string) models.TrafficSnapshot
	Chat(message string) models.ChatResponse
}

// HandlerConfig holds request handling settings.
type HandlerConfig struct {
	// Location is the zone departure times are bucketed in. Nil means UTC.
	Location *time.Location

	// Timeout bounds the work done for one request. Zero means 30s.
	Timeout time.Duration
}

// Handler contains the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and health
//   - handlers_catalog.go: cities and buildings
//   - handlers_trip.go: calculate-route, recommend and plan-trip
//   - handlers_advisory.go: weather, traffic and chat
type Handler struct {
	cities    CityDirectory
	planner   RoutePlanner
	engine    Recommender
	advisor   Advisor
	location  *time.Location
	timeout   time.Duration
	startTime time.Time
}

// NewHandler creates the API handler.
//
// Example:
//
//	handler, err := api.NewHandler(cat, planner, engine, advisor, api.HandlerConfig{
//	    Location: cfg.Server.Location(),
//	    Timeout:  cfg.Server.Timeout,
//	})
//	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig))
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(cities CityDirectory, planner RoutePlanner, engine Recommender, advisor Advisor, cfg HandlerConfig) (*Handler, error) {
	if cities == nil || planner == nil || engine == nil || advisor == nil {
		return nil, errors.New("api: cities, planner, engine and advisor are required")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Handler{
		cities:    cities,
		planner:   planner,
		engine:    engine,
		advisor:   advisor,
		location:  cfg.Location,
		timeout:   cfg.Timeout,
		startTime: time.Now(),
	}, nil
}
