// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package route plans a trip between two catalog buildings.
//
// # Tiers
//
// The great-circle distance selects a tier, which lists the transport types
// worth offering for that range:
//
//   - short: up to 50 km
//   - medium: up to 300 km
//   - long: up to 1000 km
//   - intercontinental: beyond 1000 km
//
// # Options
//
// Each offered type is priced from its catalog profile. Travel time gets a
// random delay on roughly 30% of options, drawn from the planner's
// noise.Source, and options are returned fastest first. Types the tier
// designates as fastest, cheapest or greenest are flagged as recommended.
//
// # Usage
//
//	planner, err := route.NewPlanner(cat, noise.NewRand(0), nil, logger)
//	result, err := planner.Plan(ctx, "empire-state", "times-square")
package route
