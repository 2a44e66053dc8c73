// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/tripweaver/internal/advisory"
	"github.com/tomtom215/tripweaver/internal/api"
	"github.com/tomtom215/tripweaver/internal/catalog"
	"github.com/tomtom215/tripweaver/internal/config"
	"github.com/tomtom215/tripweaver/internal/logging"
	"github.com/tomtom215/tripweaver/internal/metrics"
	"github.com/tomtom215/tripweaver/internal/noise"
	"github.com/tomtom215/tripweaver/internal/recommend"
	"github.com/tomtom215/tripweaver/internal/route"
)

// buildHandler loads the catalog and assembles the engines and the Chi router.
func buildHandler(cfg *config.Config) (http.Handler, error) {
	cat, err := catalog.LoadDir(cfg.Catalog.Dir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	counts := cat.Counts()
	metrics.SetCatalogCounts(counts)
	catalogLog := logging.WithComponent("catalog")
	catalogLog.Info().
		Str("dir", catalogSource(cfg.Catalog.Dir)).
		Interface("entries", counts).
		Msg("Catalog loaded")

	// One source shared by all engines; Rand is safe for concurrent use.
	source := noise.NewRand(cfg.Engine.Seed)
	logger := logging.Logger()

	planner, err := route.NewPlanner(cat, source, &route.Config{RoutePoints: cfg.Catalog.RoutePoints}, logger)
	if err != nil {
		return nil, fmt.Errorf("create route planner: %w", err)
	}

	engine, err := recommend.NewEngine(cat, source, recommend.DefaultConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	advisor, err := advisory.NewService(cat, source, time.Now, logger)
	if err != nil {
		return nil, fmt.Errorf("create advisory service: %w", err)
	}

	handler, err := api.NewHandler(cat, planner, engine, advisor, api.HandlerConfig{
		Location: cfg.Server.Location(),
		Timeout:  cfg.Server.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create handler: %w", err)
	}

	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	return api.NewRouter(handler, mw).SetupChi(), nil
}

// newHTTPServer applies the configured listener timeouts.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}

func catalogSource(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
