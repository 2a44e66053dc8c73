// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package main is the entry point for the Tripweaver server.

Tripweaver plans a route between two landmark buildings, ranks the
transport options for the distance and recommends restaurants, cafes and
attractions at the destination for a mood, a trip length and a departure
time.

# Startup

 1. Configuration: koanf v2 with defaults, an optional config.yaml and
    environment variables
 2. Logging: zerolog, json or console
 3. Catalog: embedded JSON, or CATALOG_DIR when set
 4. Engines: route planner, recommendation engine and advisory service
    sharing one seeded noise source (RANDOM_SEED)
 5. Router: Chi with request ids, access log, CORS, compression, rate
    limiting and Prometheus metrics
 6. Supervisor tree: suture v4 running the HTTP server

# Signals

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests for up to 10s.

# Example

	export PORT=8080
	export TIMEZONE=Europe/Paris
	export LOG_FORMAT=console
	./tripweaver

	curl -s localhost:8080/api/v1/calculate-route \
	  -d '{"departureBuildingId":"empire-state","destinationBuildingId":"times-square"}'
*/
package main
