// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package catalog holds the read-only reference data used for planning:
// cities and their buildings, per-city places, transport profiles, route
// tiers, and the mood, time-of-day, duration, persona and weather tables.
//
// A Catalog is built once at startup with Load or LoadDir and shared by
// pointer. It exposes lookups only, so concurrent readers need no locking.
// Slices returned by lookups are shared with the catalog and must not be
// modified by callers.
package catalog

import (
	"slices"

	"github.com/tomtom215/tripweaver/internal/models"
)

// FallbackMood is the mood profile used for unrecognized moods.
const FallbackMood = "adventurous"

// Tiers lists the route tiers every catalog must define.
var Tiers = []string{
	models.TierShort,
	models.TierMedium,
	models.TierLong,
	models.TierIntercontinental,
}

// TimeBuckets lists the time-of-day profiles every catalog must define.
var TimeBuckets = []string{
	models.TimeMorning,
	models.TimeAfternoon,
	models.TimeEvening,
	models.TimeNight,
}

// DurationCategories lists the duration profiles every catalog must define.
var DurationCategories = []string{
	models.DurationShort,
	models.DurationHalfDay,
	models.DurationFullDay,
	models.DurationMultiDay,
}

// WeatherConditions lists the weather conditions, in draw order.
var WeatherConditions = []string{
	models.WeatherSunny,
	models.WeatherRainy,
	models.WeatherCold,
	models.WeatherHot,
}

// PersonaCount is the number of personas a catalog must define.
const PersonaCount = 4

// Catalog is the immutable in-memory reference data set.
type Catalog struct {
	cities    []models.City
	cityIndex map[string]int
	buildings map[string]models.RouteEndpoint
	places    map[string]models.CityPlaces
	transport map[string]models.TransportProfile
	tiers     map[string]models.RouteTierConfig
	moods     map[string]models.MoodProfile
	timeOfDay map[string]models.TimeOfDayProfile
	durations map[string]models.DurationProfile
	personas  []models.Persona
	weather   map[string]models.WeatherAdaptation
}

// Cities returns all cities in catalog order.
func (c *Catalog) Cities() []models.City {
	return slices.Clone(c.cities)
}

// City returns the city with the given id.
func (c *Catalog) City(id string) (models.City, bool) {
	i, ok := c.cityIndex[id]
	if !ok {
		return models.City{}, false
	}
	return c.cities[i], true
}

// Buildings returns the buildings of a city.
func (c *Catalog) Buildings(cityID string) ([]models.Building, bool) {
	city, ok := c.City(cityID)
	if !ok {
		return nil, false
	}
	return slices.Clone(city.Buildings), true
}

// Building resolves a building id across all cities.
func (c *Catalog) Building(id string) (models.RouteEndpoint, bool) {
	b, ok := c.buildings[id]
	return b, ok
}

// Places returns the place catalog of a city.
func (c *Catalog) Places(cityID string) (models.CityPlaces, bool) {
	p, ok := c.places[cityID]
	return p, ok
}

// Transport returns the profile of a transport type.
func (c *Catalog) Transport(transportType string) (models.TransportProfile, bool) {
	t, ok := c.transport[transportType]
	return t, ok
}

// Tier returns the configuration of a route tier.
func (c *Catalog) Tier(name string) (models.RouteTierConfig, bool) {
	t, ok := c.tiers[name]
	return t, ok
}

// Mood returns the profile for mood, falling back to FallbackMood.
// recognized is false when the fallback was used.
func (c *Catalog) Mood(mood string) (profile models.MoodProfile, recognized bool) {
	if p, ok := c.moods[mood]; ok {
		return p, true
	}
	return c.moods[FallbackMood], false
}

// TimeOfDay returns the profile of a time-of-day bucket.
func (c *Catalog) TimeOfDay(bucket string) (models.TimeOfDayProfile, bool) {
	p, ok := c.timeOfDay[bucket]
	return p, ok
}

// Duration returns the profile of a duration category.
func (c *Catalog) Duration(category string) (models.DurationProfile, bool) {
	p, ok := c.durations[category]
	return p, ok
}

// Persona returns the persona at index.
func (c *Catalog) Persona(index int) (models.Persona, bool) {
	if index < 0 || index >= len(c.personas) {
		return models.Persona{}, false
	}
	return c.personas[index], true
}

// Weather returns the adaptation advice for a weather condition.
func (c *Catalog) Weather(condition string) (models.WeatherAdaptation, bool) {
	w, ok := c.weather[condition]
	return w, ok
}

// Counts reports the number of entities per kind.
func (c *Catalog) Counts() map[string]int {
	places := 0
	for _, p := range c.places {
		places += len(p.Restaurants) + len(p.Cafes) + len(p.Attractions)
	}
	return map[string]int{
		"cities":     len(c.cities),
		"buildings":  len(c.buildings),
		"places":     places,
		"transport":  len(c.transport),
		"moods":      len(c.moods),
		"personas":   len(c.personas),
		"conditions": len(c.weather),
	}
}
