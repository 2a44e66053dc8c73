// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package advisory

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripweaver/internal/catalog"
	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/noise"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, source noise.Source) *Service {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	s, err := NewService(cat, source, func() time.Time { return fixedNow }, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	return s
}

// emptyCatalog has no weather adaptations.
type emptyCatalog struct{}

func (emptyCatalog) Weather(string) (models.WeatherAdaptation, bool) {
	return models.WeatherAdaptation{}, false
}

func TestNewService_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, noise.NewSequence(), nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil catalog")
	}
	if _, err := NewService(emptyCatalog{}, nil, nil, zerolog.Nop()); err == nil {
		t.Error("expected error for nil source")
	}
	s, err := NewService(emptyCatalog{}, noise.NewSequence(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	if s.now == nil {
		t.Error("nil clock should default to time.Now")
	}
}

func TestWeather_DrawOrder(t *testing.T) {
	t.Parallel()

	source := noise.NewSequence(0.3, 0.5, 0.25, 0.9)
	s := newTestService(t, source)

	got, err := s.Weather("paris")
	if err != nil {
		t.Fatalf("Weather() error: %v", err)
	}

	want := models.WeatherSnapshot{
		CityID:      "paris",
		Condition:   models.WeatherRainy,
		Temperature: 25,
		Humidity:    50,
		WindSpeed:   23,
		Description: "A great day for museums, covered markets and cozy cafes.",
	}
	if got.CityID != want.CityID || got.Condition != want.Condition || got.Temperature != want.Temperature ||
		got.Humidity != want.Humidity || got.WindSpeed != want.WindSpeed || got.Description != want.Description {
		t.Errorf("Weather() =\n%+v\nwant\n%+v", got, want)
	}
	if len(got.Tips) != 3 || got.Tips[0] != "Pack an umbrella" {
		t.Errorf("Tips = %v", got.Tips)
	}
	if source.Drawn() != 4 {
		t.Errorf("drew %d values, want 4", source.Drawn())
	}
}

func TestWeather_Ranges(t *testing.T) {
	t.Parallel()

	s := newTestService(t, noise.NewRand(11))
	seen := map[string]bool{}
	for i := 0; i < 400; i++ {
		w, err := s.Weather("nyc")
		if err != nil {
			t.Fatalf("Weather() error: %v", err)
		}
		seen[w.Condition] = true
		if w.Temperature < 10 || w.Temperature > 39 {
			t.Fatalf("temperature %d out of range", w.Temperature)
		}
		if w.Humidity < 40 || w.Humidity > 79 {
			t.Fatalf("humidity %d out of range", w.Humidity)
		}
		if w.WindSpeed < 5 || w.WindSpeed > 24 {
			t.Fatalf("wind %d out of range", w.WindSpeed)
		}
		if w.Description == "" {
			t.Fatalf("empty description for %s", w.Condition)
		}
	}
	if len(seen) != len(conditions) {
		t.Errorf("saw conditions %v, want all %d", seen, len(conditions))
	}
}

func TestWeather_MissingAdaptation(t *testing.T) {
	t.Parallel()

	s, err := NewService(emptyCatalog{}, noise.NewSequence(0), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	if _, err := s.Weather("nyc"); err == nil {
		t.Error("expected error for missing adaptation")
	}
}

func TestTraffic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		draws      []float64
		wantLevel  string
		wantDelay  int
		wantRoutes int
		wantDrawn  int
	}{
		{name: "heavy", draws: []float64{0.95, 0.5}, wantLevel: models.CongestionHeavy, wantDelay: 20, wantRoutes: 2, wantDrawn: 2},
		{name: "heavy minimum delay", draws: []float64{0.71, 0}, wantLevel: models.CongestionHeavy, wantDelay: 10, wantRoutes: 2, wantDrawn: 2},
		{name: "moderate", draws: []float64{0.55}, wantLevel: models.CongestionModerate, wantDrawn: 1},
		{name: "boundary 0.7 is moderate", draws: []float64{0.7}, wantLevel: models.CongestionModerate, wantDrawn: 1},
		{name: "boundary 0.4 is light", draws: []float64{0.4}, wantLevel: models.CongestionLight, wantDrawn: 1},
		{name: "light", draws: []float64{0.1}, wantLevel: models.CongestionLight, wantDrawn: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := noise.NewSequence(tt.draws...)
			s := newTestService(t, source)
			got := s.Traffic("route-42")

			if got.RouteID != "route-42" {
				t.Errorf("RouteID = %q", got.RouteID)
			}
			if got.CongestionLevel != tt.wantLevel || got.Delay != tt.wantDelay || got.AlternateRoutes != tt.wantRoutes {
				t.Errorf("Traffic() = %s/%d/%d, want %s/%d/%d",
					got.CongestionLevel, got.Delay, got.AlternateRoutes, tt.wantLevel, tt.wantDelay, tt.wantRoutes)
			}
			if !got.LastUpdated.Equal(fixedNow) {
				t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, fixedNow)
			}
			if source.Drawn() != tt.wantDrawn {
				t.Errorf("drew %d values, want %d", source.Drawn(), tt.wantDrawn)
			}
		})
	}
}

func TestDraw_Clamps(t *testing.T) {
	t.Parallel()

	s := newTestService(t, noise.NewSequence(1.0, -0.5))
	if got := s.draw(4); got != 3 {
		t.Errorf("draw(4) with 1.0 = %d, want 3", got)
	}
	if got := s.draw(4); got != 0 {
		t.Errorf("draw(4) with -0.5 = %d, want 0", got)
	}
}
