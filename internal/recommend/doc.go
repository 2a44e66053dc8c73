// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package recommend ranks a city's places for a traveler's mood, departure
// time and trip length, and phrases the result through a persona.
//
// # Scoring
//
// Every restaurant, cafe and attraction of the city is scored as
//
//	score = moodMatch + rating*10 + jitter
//
// where moodMatch is 50 when the place is tagged with the requested mood and
// jitter is a draw from the engine's noise.Source scaled to [0, 20). Places
// are drawn restaurants first, then cafes, then attractions, each in catalog
// order, so a fixed source reproduces a ranking exactly.
//
// # Selection
//
// Each category is sorted by descending score (ties keep catalog order) and
// truncated. Restaurants and attractions keep as many places as the duration
// category's upper stop bound, capped at five; cafes keep at most two.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, noise.NewRand(0), nil, logger)
//	result, err := engine.Recommend(ctx, recommend.Request{
//		CityID:        "paris",
//		Mood:          "romantic",
//		Duration:      6,
//		DepartureTime: departure,
//	})
package recommend
