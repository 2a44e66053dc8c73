// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package route

import (
	"fmt"

	"github.com/tomtom215/tripweaver/internal/geo"
)

// MaxRoutePoints bounds the interpolation steps per route.
const MaxRoutePoints = 1000

// Config contains the tunables of the route planner.
type Config struct {
	// RoutePoints is the number of interpolation steps in RoutePoints;
	// the route carries RoutePoints+1 coordinates.
	RoutePoints int `json:"route_points"`
}

// DefaultConfig returns the planner defaults.
func DefaultConfig() *Config {
	return &Config{RoutePoints: geo.DefaultRoutePoints}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.RoutePoints < 1 || c.RoutePoints > MaxRoutePoints {
		return fmt.Errorf("route_points must be between 1 and %d, got %d", MaxRoutePoints, c.RoutePoints)
	}
	return nil
}
