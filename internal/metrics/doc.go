// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package metrics provides the Prometheus metrics of the API.

All collectors register with the default registry through promauto and
are exposed at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, route pattern and status code
  - api_request_duration_seconds: request latency by method and route pattern
  - api_active_requests: in-flight requests
  - api_rate_limit_hits_total: requests rejected by the rate limiter

Domain Metrics:
  - tripweaver_routes_planned_total: planned routes by route_type
  - tripweaver_route_distance_km: distance distribution of planned routes
  - tripweaver_recommendations_total: recommendations by mood_profile and time_of_day
  - tripweaver_recommended_stops: attractions per recommendation
  - tripweaver_weather_snapshots_total: weather snapshots by condition
  - tripweaver_traffic_snapshots_total: traffic snapshots by status
  - tripweaver_chat_messages_total: chat replies by topic
  - tripweaver_operation_errors_total: failures by operation and error code
  - tripweaver_catalog_entries: catalog size by kind, set at startup

Endpoint labels use the chi route pattern (/api/v1/weather/{cityId}), never
the raw path, so label cardinality stays bounded.
*/
package metrics
