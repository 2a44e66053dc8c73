// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package middleware provides the HTTP middleware shared by every route.

  - RequestID: assigns X-Request-ID and X-Correlation-ID and places both in
    the request context for logging.Ctx
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request counters and latency histograms labelled by
    chi route pattern

The middleware use the http.HandlerFunc shape and are adapted for chi's
r.Use in the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are
configured in the api package.
*/
package middleware
