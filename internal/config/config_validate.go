// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tripweaver/internal/logging"
	"github.com/tomtom215/tripweaver/internal/route"
)

const (
	minRateLimitReqs   = 1
	maxRateLimitReqs   = 100000
	minRateLimitWindow = time.Second
	maxRateLimitWindow = time.Hour
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateCatalog()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"HTTP_TIMEOUT", c.Server.Timeout},
		{"HTTP_READ_TIMEOUT", c.Server.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", c.Server.IdleTimeout},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", t.name, t.value)
		}
	}

	if c.Server.Timezone != "" {
		if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
			return fmt.Errorf("TIMEZONE %q is not a known zone: %w", c.Server.Timezone, err)
		}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS refuses a wildcard origin in production.
func (c *Config) validateCORS() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS must list explicit origins in production, wildcard '*' is not allowed")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitReqs || c.Security.RateLimitReqs > maxRateLimitReqs {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d, got %d",
			minRateLimitReqs, maxRateLimitReqs, c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %s and %s, got %s",
			minRateLimitWindow, maxRateLimitWindow, c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.Logging.Format {
	case logging.FormatJSON, logging.FormatConsole:
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logging.FormatJSON, logging.FormatConsole, c.Logging.Format)
	}
}

func (c *Config) validateCatalog() error {
	rc := route.Config{RoutePoints: c.Catalog.RoutePoints}
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("ROUTE_POINTS: %w", err)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}
