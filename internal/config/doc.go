// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package config loads the server configuration.

Values are layered with koanf, later layers winning:

 1. Built-in defaults
 2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/tripweaver/config.yaml or /etc/tripweaver/config.yml
 3. Environment variables

# Environment Variables

	PORT, HTTP_PORT      server.port (default 5000)
	HTTP_HOST            server.host (default 0.0.0.0)
	HTTP_TIMEOUT         server.timeout, per-request handler budget (30s)
	HTTP_READ_TIMEOUT    server.read_timeout (10s)
	HTTP_WRITE_TIMEOUT   server.write_timeout (30s)
	HTTP_IDLE_TIMEOUT    server.idle_timeout (120s)
	ENVIRONMENT          server.environment (development)
	TIMEZONE             server.timezone for departure times (UTC)
	CORS_ORIGINS         security.cors_origins, comma separated (*)
	RATE_LIMIT_REQUESTS  security.rate_limit_reqs (100)
	RATE_LIMIT_WINDOW    security.rate_limit_window (1m)
	DISABLE_RATE_LIMIT   security.rate_limit_disabled (false)
	LOG_LEVEL            logging.level (info)
	LOG_FORMAT           logging.format, json or console (json)
	LOG_CALLER           logging.caller (false)
	CATALOG_DIR          catalog.dir, empty uses the embedded catalog
	ROUTE_POINTS         catalog.route_points (50)
	RANDOM_SEED          engine.seed, 0 seeds from the clock

# Example

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cfg.Server.Address())

A wildcard CORS origin is rejected when ENVIRONMENT is production.
*/
package config
