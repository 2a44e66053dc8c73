// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/test-record", "201"))
	RecordAPIRequest("POST", "/api/v1/test-record", "201", 12*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/test-record", "201"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	// APIActiveRequests is shared with the middleware tests; compare deltas.
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 1 {
		t.Errorf("active requests delta = %v, want 1", got)
	}
	TrackActiveRequest(false)
}

func TestDomainCounters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record func()
		metric prometheus.Collector
	}{
		{"route", func() { RecordRoute("test-tier", 3.2) }, RoutesPlanned.WithLabelValues("test-tier")},
		{"recommendation", func() { RecordRecommendation("test-mood", "evening", 5) }, RecommendationsServed.WithLabelValues("test-mood", "evening")},
		{"weather", func() { RecordWeather("test-sunny") }, WeatherSnapshots.WithLabelValues("test-sunny")},
		{"traffic", func() { RecordTraffic("test-heavy") }, TrafficSnapshots.WithLabelValues("test-heavy")},
		{"chat", func() { RecordChat("test-food") }, ChatMessages.WithLabelValues("test-food")},
		{"domain error", func() { RecordDomainError("test-op", "CITY_NOT_FOUND") }, DomainErrors.WithLabelValues("test-op", "CITY_NOT_FOUND")},
		{"rate limit", func() { RecordRateLimitHit("/test-limited") }, APIRateLimitHits.WithLabelValues("/test-limited")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.record()
			tt.record()
			if got := testutil.ToFloat64(tt.metric); got != 2 {
				t.Errorf("counter = %v, want 2", got)
			}
		})
	}
}

func TestSetCatalogCounts(t *testing.T) {
	t.Parallel()

	SetCatalogCounts(map[string]int{"test-cities": 5, "test-places": 40})
	SetCatalogCounts(map[string]int{"test-cities": 6})

	if got := testutil.ToFloat64(CatalogEntries.WithLabelValues("test-cities")); got != 6 {
		t.Errorf("cities gauge = %v, want 6", got)
	}
	if got := testutil.ToFloat64(CatalogEntries.WithLabelValues("test-places")); got != 40 {
		t.Errorf("places gauge = %v, want 40", got)
	}
}

func TestMetricsLint(t *testing.T) {
	t.Parallel()

	collectors := []prometheus.Collector{RoutesPlanned, RecommendationsServed, ChatMessages, CatalogEntries}
	for i, c := range collectors {
		problems, err := testutil.CollectAndLint(c)
		if err != nil {
			t.Fatalf("CollectAndLint(collector %d) error = %v", i, err)
		}
		for _, p := range problems {
			t.Errorf("lint %s: %s", p.Metric, p.Text)
		}
	}
}
