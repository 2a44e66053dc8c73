// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Route Planner Metrics
	RoutesPlanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripweaver_routes_planned_total",
			Help: "Total number of routes planned by distance tier",
		},
		[]string{"route_type"},
	)

	RouteDistanceKm = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripweaver_route_distance_km",
			Help:    "Great-circle distance of planned routes in kilometers",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	// Recommendation Engine Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripweaver_recommendations_total",
			Help: "Total number of recommendations by resolved mood profile and time of day",
		},
		[]string{"mood_profile", "time_of_day"},
	)

	RecommendedStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripweaver_recommended_stops",
			Help:    "Number of attractions in each recommendation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// Advisory Metrics
	WeatherSnapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripweaver_weather_snapshots_total",
			Help: "Total number of weather snapshots by condition",
		},
		[]string{"condition"},
	)

	TrafficSnapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripweaver_traffic_snapshots_total",
			Help: "Total number of traffic snapshots by status",
		},
		[]string{"status"},
	)

	ChatMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripweaver_chat_messages_total",
			Help: "Total number of chat messages by matched topic",
		},
		[]string{"topic"},
	)

	// DomainErrors counts failed operations by the error code returned to
	// the client.
	DomainErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripweaver_operation_errors_total",
			Help: "Total number of failed operations by error code",
		},
		[]string{"operation", "code"},
	)

	// CatalogEntries reports the size of the loaded reference catalog.
	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tripweaver_catalog_entries",
			Help: "Number of entries in the loaded catalog by kind",
		},
		[]string{"kind"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRoute records one planned route.
func RecordRoute(routeType string, distanceKm float64) {
	RoutesPlanned.WithLabelValues(routeType).Inc()
	RouteDistanceKm.Observe(distanceKm)
}

// RecordRecommendation records one served recommendation.
func RecordRecommendation(moodProfile, timeOfDay string, stops int) {
	RecommendationsServed.WithLabelValues(moodProfile, timeOfDay).Inc()
	RecommendedStops.Observe(float64(stops))
}

// RecordWeather records one weather snapshot.
func RecordWeather(condition string) {
	WeatherSnapshots.WithLabelValues(condition).Inc()
}

// RecordTraffic records one traffic snapshot.
func RecordTraffic(status string) {
	TrafficSnapshots.WithLabelValues(status).Inc()
}

// RecordChat records one answered chat message.
func RecordChat(topic string) {
	ChatMessages.WithLabelValues(topic).Inc()
}

// RecordDomainError records a failed operation.
func RecordDomainError(operation, code string) {
	DomainErrors.WithLabelValues(operation, code).Inc()
}

// SetCatalogCounts publishes catalog sizes keyed by kind.
func SetCatalogCounts(counts map[string]int) {
	for kind, n := range counts {
		CatalogEntries.WithLabelValues(kind).Set(float64(n))
	}
}
