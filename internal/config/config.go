// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package config

import (
	"net"
	"strconv"
	"time"
	_ "time/tzdata" // zone database for TIMEZONE on minimal images
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Engine   EngineConfig   `koanf:"engine"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Timeout      time.Duration `koanf:"timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	Environment  string        `koanf:"environment"`

	// Timezone is the IANA zone departure times without an offset are
	// interpreted in, and zoned times are converted to.
	Timezone string `koanf:"timezone"`
}

// SecurityConfig holds the browser-facing protections of the API.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// CatalogConfig controls where reference data is read from.
type CatalogConfig struct {
	// Dir overrides the embedded catalog with JSON files from disk. Empty
	// means the embedded copy.
	Dir string `koanf:"dir"`

	// RoutePoints is the number of interpolated segments in a route
	// polyline; responses carry RoutePoints+1 points.
	RoutePoints int `koanf:"route_points"`
}

// EngineConfig controls the randomness behind delays, scores and
// advisories.
type EngineConfig struct {
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `koanf:"seed"`
}

// Address returns host:port for the HTTP listener.
func (s *ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Location resolves the configured timezone. Validate rejects unknown
// zones, so this only falls back to UTC on an unvalidated config.
func (s *ServerConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
