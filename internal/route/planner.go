// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package route

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripweaver/internal/geo"
	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/noise"
)

// Catalog is the subset of the reference data the planner reads.
type Catalog interface {
	Building(id string) (models.RouteEndpoint, bool)
	Tier(name string) (models.RouteTierConfig, bool)
	Transport(transportType string) (models.TransportProfile, bool)
}

// Travel delay jitter. A draw above delayChance adds up to maxDelayMinutes.
const (
	delayChance     = 0.7
	maxDelayMinutes = 30
)

// kgCO2PerTreeYear is the carbon one tree absorbs in a year.
const kgCO2PerTreeYear = 21.0

// tierThresholds is checked in order; the first distance strictly above a
// threshold selects its tier. Anything else is short.
var tierThresholds = []struct {
	aboveKm float64
	tier    string
}{
	{1000, models.TierIntercontinental},
	{300, models.TierLong},
	{50, models.TierMedium},
}

// Classify returns the route tier for a distance in kilometers.
// Boundary values belong to the lower tier.
func Classify(distanceKm float64) string {
	for _, t := range tierThresholds {
		if distanceKm > t.aboveKm {
			return t.tier
		}
	}
	return models.TierShort
}

// Planner computes routes between catalog buildings. It is safe for
// concurrent use when its noise source is.
type Planner struct {
	catalog Catalog
	source  noise.Source
	config  *Config
	logger  zerolog.Logger
}

// NewPlanner creates a route planner.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPlanner(cat Catalog, source noise.Source, cfg *Config, logger zerolog.Logger) (*Planner, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if source == nil {
		return nil, fmt.Errorf("noise source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Planner{
		catalog: cat,
		source:  source,
		config:  cfg,
		logger:  logger.With().Str("component", "route").Logger(),
	}, nil
}

// Plan resolves both buildings and ranks the transport options of the
// distance tier between them, fastest first.
func (p *Planner) Plan(ctx context.Context, departureID, destinationID string) (*models.RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dep, depOK := p.catalog.Building(departureID)
	dst, dstOK := p.catalog.Building(destinationID)
	if !depOK || !dstOK {
		return nil, models.ErrBuildingsNotFound
	}

	distance := geo.DistanceKm(dep.Coordinates, dst.Coordinates)
	tierName := Classify(distance)
	tier, ok := p.catalog.Tier(tierName)
	if !ok {
		return nil, fmt.Errorf("route tier %q not configured", tierName)
	}

	options := make([]models.TransportOption, 0, len(tier.Recommended))
	for _, transportType := range tier.Recommended {
		profile, ok := p.catalog.Transport(transportType)
		if !ok {
			return nil, fmt.Errorf("transport %q not configured", transportType)
		}
		options = append(options, p.option(profile, distance, tier))
	}

	slices.SortStableFunc(options, func(a, b models.TransportOption) int {
		return cmp.Compare(a.Duration, b.Duration)
	})

	result := &models.RouteResult{
		Departure:        dep,
		Destination:      dst,
		Distance:         round(distance, 1),
		TransportOptions: options,
		RoutePoints:      slices.Collect(geo.InterpolateRoute(dep.Coordinates, dst.Coordinates, p.config.RoutePoints)),
		RouteType:        tierName,
		Summary:          Summarize(options),
	}

	p.logger.Debug().
		Str("departure", departureID).
		Str("destination", destinationID).
		Float64("distance_km", result.Distance).
		Str("route_type", tierName).
		Int("options", len(options)).
		Msg("route planned")

	return result, nil
}

// option prices one transport type over distance. The delay draw happens
// here so each option consumes its draws in tier order.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (p *Planner) option(profile models.TransportProfile, distance float64, tier models.RouteTierConfig) models.TransportOption {
	travelMinutes := distance / profile.AvgSpeed * 60

	delay := 0
	if p.source.Float64() > delayChance {
		delay = int(math.Floor(p.source.Float64() * maxDelayMinutes))
	}

	return models.TransportOption{
		Type:            profile.Type,
		Icon:            profile.Icon,
		Color:           profile.Color,
		Distance:        round(distance, 1),
		Duration:        int(math.Round(travelMinutes + float64(delay))),
		Cost:            round(distance*profile.CostPerKm, 2),
		CarbonFootprint: round(distance*profile.CarbonFootprint, 2),
		Delay:           delay,
		Recommended:     tier.Highlights(profile.Type),
	}
}

// Summarize picks the fastest, cheapest and greenest options by value and
// averages their carbon. Ties go to the earlier option. It returns nil for
// an empty list.
func Summarize(options []models.TransportOption) *models.RouteSummary {
	if len(options) == 0 {
		return nil
	}

	fastest, cheapest, greenest := options[0], options[0], options[0]
	var carbon float64
	for _, o := range options {
		carbon += o.CarbonFootprint
		if o.Duration < fastest.Duration {
			fastest = o
		}
		if o.Cost < cheapest.Cost {
			cheapest = o
		}
		if o.CarbonFootprint < greenest.CarbonFootprint {
			greenest = o
		}
	}

	avg := round(carbon/float64(len(options)), 2)
	return &models.RouteSummary{
		Fastest:       fastest.Type,
		Cheapest:      cheapest.Type,
		Greenest:      greenest.Type,
		AverageCarbon: avg,
		TreesToOffset: int(math.Ceil(avg / kgCO2PerTreeYear)),
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
