// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package recommend

import (
	"errors"
	"fmt"
)

// Config contains the selection limits of the recommendation engine.
type Config struct {
	// MaxStops caps restaurants and attractions regardless of duration.
	MaxStops int `json:"max_stops"`

	// MaxCafes caps cafes.
	MaxCafes int `json:"max_cafes"`

	// FallbackStops replaces a duration category's non-positive maxStops.
	FallbackStops int `json:"fallback_stops"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxStops:      5,
		MaxCafes:      2,
		FallbackStops: 3,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxStops < 1 {
		errs = append(errs, fmt.Errorf("max_stops must be positive, got %d", c.MaxStops))
	}
	if c.MaxCafes < 0 {
		errs = append(errs, fmt.Errorf("max_cafes must not be negative, got %d", c.MaxCafes))
	}
	if c.FallbackStops < 1 {
		errs = append(errs, fmt.Errorf("fallback_stops must be positive, got %d", c.FallbackStops))
	}
	return errors.Join(errs...)
}
