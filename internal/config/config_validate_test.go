// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package config

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port max", func(c *Config) { c.Server.Port = 65535 }, false},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"negative idle timeout", func(c *Config) { c.Server.IdleTimeout = -time.Second }, true},
		{"empty timezone", func(c *Config) { c.Server.Timezone = "" }, false},
		{"unknown timezone", func(c *Config) { c.Server.Timezone = "Nowhere/Land" }, true},
		{"explicit origins in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://trips.example.com"}
		}, false},
		{"wildcard in prod", func(c *Config) {
			c.Server.Environment = "prod"
			c.Security.CORSOrigins = []string{"https://a.example.com", " * "}
		}, true},
		{"rate limit too high", func(c *Config) { c.Security.RateLimitReqs = 100001 }, true},
		{"window too short", func(c *Config) { c.Security.RateLimitWindow = 500 * time.Millisecond }, true},
		{"window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, true},
		{"limits ignored when disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"level", func(c *Config) { c.Logging.Level = "WARN" }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "chatty" }, true},
		{"unknown format", func(c *Config) { c.Logging.Format = "text" }, true},
		{"route points max", func(c *Config) { c.Catalog.RoutePoints = 1000 }, false},
		{"route points over max", func(c *Config) { c.Catalog.RoutePoints = 1001 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvironmentModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env        string
		production bool
		dev        bool
	}{
		{"", false, true},
		{"development", false, true},
		{"DEV", false, true},
		{"staging", false, false},
		{"Production", true, false},
		{"prod", true, false},
	}
	for _, tt := range tests {
		c := &Config{Server: ServerConfig{Environment: tt.env}}
		if c.IsProduction() != tt.production || c.IsDevelopment() != tt.dev {
			t.Errorf("%q: IsProduction=%v IsDevelopment=%v", tt.env, c.IsProduction(), c.IsDevelopment())
		}
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		zone string
		want string
	}{
		{"", "UTC"},
		{"Europe/Paris", "Europe/Paris"},
		{"Not/AZone", "UTC"},
	}
	for _, tt := range tests {
		s := ServerConfig{Timezone: tt.zone}
		if got := s.Location().String(); got != tt.want {
			t.Errorf("Location(%q) = %s, want %s", tt.zone, got, tt.want)
		}
	}
}

func TestAddress(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "::1", Port: 5000}
	if got := s.Address(); got != "[::1]:5000" {
		t.Errorf("Address() = %s", got)
	}
}
