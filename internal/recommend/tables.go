// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package recommend

import (
	"slices"
	"strings"

	"github.com/tomtom215/tripweaver/internal/models"
)

// timeOfDayRules is checked in order; an hour matching none is morning.
var timeOfDayRules = []struct {
	bucket  string
	matches func(hour int) bool
}{
	{models.TimeAfternoon, func(h int) bool { return h >= 12 && h < 17 }},
	{models.TimeEvening, func(h int) bool { return h >= 17 && h < 21 }},
	{models.TimeNight, func(h int) bool { return h >= 21 || h < 6 }},
}

// TimeOfDay buckets a departure hour (0-23).
func TimeOfDay(hour int) string {
	for _, r := range timeOfDayRules {
		if r.matches(hour) {
			return r.bucket
		}
	}
	return models.TimeMorning
}

// durationRules is checked in order; the first bound strictly exceeded wins.
var durationRules = []struct {
	aboveHours float64
	category   string
}{
	{12, models.DurationMultiDay},
	{8, models.DurationFullDay},
	{4, models.DurationHalfDay},
}

// DurationCategory buckets a trip length in hours.
func DurationCategory(hours float64) string {
	for _, r := range durationRules {
		if hours > r.aboveHours {
			return r.category
		}
	}
	return models.DurationShort
}

// personaRules maps requested moods to persona positions. Moods listed
// nowhere use persona 0.
var personaRules = []struct {
	moods []string
	index int
}{
	{[]string{"romantic", "relaxing"}, 1},
	{[]string{"adventurous"}, 2},
	{[]string{"cultural"}, 3},
}

// PersonaIndex returns the persona position for a normalized mood.
func PersonaIndex(mood string) int {
	for _, r := range personaRules {
		if slices.Contains(r.moods, mood) {
			return r.index
		}
	}
	return 0
}

// NormalizeMood trims and lowercases a requested mood.
func NormalizeMood(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}
