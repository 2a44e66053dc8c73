// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package advisory produces the synthetic weather and traffic snapshots and
// the keyword-driven travel chat replies. None of it reflects live data:
// snapshots are drawn from the service's noise.Source.
package advisory

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/noise"
)

// Catalog is the subset of the reference data the service reads.
type Catalog interface {
	Weather(condition string) (models.WeatherAdaptation, bool)
}

// Service serves weather, traffic and chat advisories.
type Service struct {
	catalog Catalog
	source  noise.Source
	now     func() time.Time
	logger  zerolog.Logger
}

// NewService creates an advisory service. A nil clock uses time.Now.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cat Catalog, source noise.Source, clock func() time.Time, logger zerolog.Logger) (*Service, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if source == nil {
		return nil, fmt.Errorf("noise source is required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		catalog: cat,
		source:  source,
		now:     clock,
		logger:  logger.With().Str("component", "advisory").Logger(),
	}, nil
}

// conditions is indexed by the first weather draw.
var conditions = []string{
	models.WeatherSunny,
	models.WeatherRainy,
	models.WeatherCold,
	models.WeatherHot,
}

// Weather draws a snapshot for cityID. The city is echoed back but does not
// influence the draw.
func (s *Service) Weather(cityID string) (models.WeatherSnapshot, error) {
	condition := conditions[s.draw(len(conditions))]
	temperature := s.draw(30) + 10
	humidity := s.draw(40) + 40
	wind := s.draw(20) + 5

	advice, ok := s.catalog.Weather(condition)
	if !ok {
		return models.WeatherSnapshot{}, fmt.Errorf("weather adaptation %q not configured", condition)
	}

	snapshot := models.WeatherSnapshot{
		CityID:      cityID,
		Condition:   condition,
		Temperature: temperature,
		Humidity:    humidity,
		WindSpeed:   wind,
		Tips:        advice.Tips,
	}
	if len(advice.Recommendations) > 0 {
		snapshot.Description = advice.Recommendations[0]
	}
	if snapshot.Tips == nil {
		snapshot.Tips = []string{}
	}

	s.logger.Debug().
		Str("city_id", cityID).
		Str("condition", condition).
		Int("temperature", temperature).
		Msg("weather drawn")

	return snapshot, nil
}

// Traffic congestion thresholds on the first draw.
const (
	heavyAbove    = 0.7
	moderateAbove = 0.4
)

// Traffic draws a congestion snapshot for routeID.
func (s *Service) Traffic(routeID string) models.TrafficSnapshot {
	snapshot := models.TrafficSnapshot{
		RouteID:         routeID,
		CongestionLevel: models.CongestionLight,
		LastUpdated:     s.now().UTC(),
	}

	switch r := s.source.Float64(); {
	case r > heavyAbove:
		snapshot.CongestionLevel = models.CongestionHeavy
		snapshot.Delay = s.draw(20) + 10
		snapshot.AlternateRoutes = 2
	case r > moderateAbove:
		snapshot.CongestionLevel = models.CongestionModerate
	}

	s.logger.Debug().
		Str("route_id", routeID).
		Str("congestion", snapshot.CongestionLevel).
		Msg("traffic drawn")

	return snapshot
}

// draw returns floor(r*n) for one draw r. Values the source should never
// produce are clamped into [0, n).
func (s *Service) draw(n int) int {
	v := int(math.Floor(s.source.Float64() * float64(n)))
	return max(0, min(v, n-1))
}
