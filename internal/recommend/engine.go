// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/noise"
)

// Score weights.
const (
	moodMatchBonus = 50.0
	ratingWeight   = 10.0
	jitterWeight   = 20.0
)

// Catalog is the subset of the reference data the engine reads.
type Catalog interface {
	Places(cityID string) (models.CityPlaces, bool)
	Mood(mood string) (models.MoodProfile, bool)
	TimeOfDay(bucket string) (models.TimeOfDayProfile, bool)
	Duration(category string) (models.DurationProfile, bool)
	Persona(index int) (models.Persona, bool)
}

// Request describes one recommendation query.
type Request struct {
	CityID        string
	Mood          string
	Duration      float64 // hours
	DepartureTime time.Time
}

// Engine scores and selects places. It is safe for concurrent use when its
// noise source is.
type Engine struct {
	catalog Catalog
	source  noise.Source
	config  *Config
	logger  zerolog.Logger
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat Catalog, source noise.Source, cfg *Config, logger zerolog.Logger) (*Engine, error) {
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

	return &Engine{
		catalog: cat,
		source:  source,
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend ranks the places of req.CityID. Unknown cities return
// models.ErrCityNotFound; a negative or non-finite duration returns
// models.ErrMalformedInput. Unknown moods silently use the fallback profile.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*models.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Duration < 0 || math.IsNaN(req.Duration) || math.IsInf(req.Duration, 0) {
		return nil, fmt.Errorf("%w: duration must be a non-negative number of hours, got %v",
			models.ErrMalformedInput, req.Duration)
	}

	places, ok := e.catalog.Places(req.CityID)
	if !ok {
		return nil, models.ErrCityNotFound
	}

	mood := NormalizeMood(req.Mood)
	profile, recognized := e.catalog.Mood(mood)

	bucket := TimeOfDay(req.DepartureTime.Hour())
	timeOfDay, ok := e.catalog.TimeOfDay(bucket)
	if !ok {
		return nil, fmt.Errorf("time of day %q not configured", bucket)
	}

	category := DurationCategory(req.Duration)
	duration, ok := e.catalog.Duration(category)
	if !ok {
		return nil, fmt.Errorf("duration %q not configured", category)
	}

	persona, ok := e.catalog.Persona(PersonaIndex(mood))
	if !ok {
		return nil, fmt.Errorf("persona %d not configured", PersonaIndex(mood))
	}

	// Draw order is part of the contract: restaurants, cafes, attractions.
	restaurants := e.rank(places.Restaurants, mood)
	cafes := e.rank(places.Cafes, mood)
	attractions := e.rank(places.Attractions, mood)

	stops := e.stopLimit(duration)
	recs := models.Recommendations{
		Restaurants: truncate(restaurants, stops),
		Cafes:       truncate(cafes, e.config.MaxCafes),
		Attractions: truncate(attractions, stops),
	}

	tips := profile.Tips
	if tips == nil {
		tips = []string{}
	}

	result := &models.RecommendationResult{
		Mood:                profile,
		TimeOfDay:           timeOfDay,
		Duration:            duration,
		Recommendations:     recs,
		Persona:             persona,
		PersonalizedMessage: message(persona, displayMood(mood, profile), category, bucket, recs.Total(), tips),
		Tips:                tips,
	}

	e.logger.Debug().
		Str("city_id", req.CityID).
		Str("mood", mood).
		Bool("mood_recognized", recognized).
		Str("time_of_day", bucket).
		Str("duration", category).
		Int("places", recs.Total()).
		Msg("recommendations ranked")

	return result, nil
}

// rank scores places in catalog order and sorts them best first.
func (e *Engine) rank(places []models.Place, mood string) []models.ScoredPlace {
	scored := make([]models.ScoredPlace, 0, len(places))
	for _, p := range places {
		scored = append(scored, models.ScoredPlace{Place: p, Score: e.score(p, mood)})
	}
	slices.SortStableFunc(scored, func(a, b models.ScoredPlace) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scored
}

//nolint:gocritic // hugeParam: place passed by value for immutability
func (e *Engine) score(place models.Place, mood string) float64 {
	var s float64
	if slices.Contains(place.Mood, mood) {
		s += moodMatchBonus
	}
	s += place.Rating * ratingWeight
	s += e.source.Float64() * jitterWeight
	return s
}

func (e *Engine) stopLimit(d models.DurationProfile) int {
	limit := d.MaxStops
	if limit <= 0 {
		limit = e.config.FallbackStops
	}
	return min(limit, e.config.MaxStops)
}

func truncate(places []models.ScoredPlace, n int) []models.ScoredPlace {
	if len(places) > n {
		return places[:n]
	}
	return places
}

// displayMood is the mood named in the message. An empty request names the
// profile that was used instead.
func displayMood(mood string, profile models.MoodProfile) string {
	if mood == "" {
		return profile.ID
	}
	return mood
}

func message(p models.Persona, mood, durationCategory, timeOfDay string, n int, tips []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Based on your %s mood and %s %s trip, I've curated %d amazing experiences that match your vibe.",
		p.Greeting, mood, durationCategory, timeOfDay, n)
	if len(tips) > 0 {
		b.WriteString(" ")
		b.WriteString(tips[0])
	}
	return b.String()
}
