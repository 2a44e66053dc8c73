// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package api provides the HTTP REST API layer for Tripweaver.

Key Components:

  - Router: Chi route table and middleware stack
  - Handler: request handlers over the planner, recommendation engine
    and advisory service
  - Response formatting: every response is a models.APIResponse envelope
  - Error handling: domain errors mapped to status codes and error codes
  - Rate limiting: per-IP limits from go-chi/httprate
  - CORS: go-chi/cors, applied globally so preflights are answered

Endpoints under /api/v1:

	GET  /health
	GET  /cities
	GET  /cities/{id}/buildings
	POST /calculate-route
	POST /recommend
	POST /plan-trip
	GET  /weather/{cityId}
	GET  /traffic/{routeId}
	POST /chat

Outside the prefix: /health/live, /metrics and /swagger/*.

Response Format:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 1}
	}

Errors carry "status": "error" and an error object with code, message and
optional details. Codes:

	CITY_NOT_FOUND       404
	BUILDINGS_NOT_FOUND  404
	INVALID_REQUEST      400  malformed JSON, non-numeric duration
	VALIDATION_ERROR     400  failed field validation; details name the field
	METHOD_NOT_ALLOWED   405
	NOT_FOUND            404  unknown route
	RATE_LIMITED         429
	INTERNAL_ERROR       500  logged with the request id

Middleware order: request id, real IP, access log, panic recovery, CORS,
compression. The /api/v1 group adds rate limiting, security headers and
Prometheus metrics labeled by route pattern.

Handlers depend on the small interfaces in handlers.go, so tests can swap
in stubs for the catalog and engines.
*/
package api
