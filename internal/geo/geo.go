// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package geo implements the great-circle and display geometry used for routes.
package geo

import (
	"iter"
	"math"

	"github.com/tomtom215/tripweaver/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DefaultRoutePoints is the number of interpolation steps for route geometry.
const DefaultRoutePoints = 50

// DistanceKm returns the haversine distance between a and b in kilometers.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// InterpolateRoute yields n+1 points from a to b, interpolating latitude and
// longitude independently at ratio i/n. The sequence can be ranged over any
// number of times. n == 0 yields a alone and a negative n yields nothing.
//
// The result is a straight line in degree space meant for drawing, not a
// navigable path.
func InterpolateRoute(a, b models.Coordinates, n int) iter.Seq[models.Coordinates] {
	return func(yield func(models.Coordinates) bool) {
		if n < 0 {
			return
		}
		if n == 0 {
			yield(a)
			return
		}
		for i := 0; i <= n; i++ {
			ratio := float64(i) / float64(n)
			p := models.Coordinates{
				Lat: a.Lat + (b.Lat-a.Lat)*ratio,
				Lng: a.Lng + (b.Lng-a.Lng)*ratio,
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Valid reports whether c lies within latitude and longitude bounds.
func Valid(c models.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180 &&
		!math.IsNaN(c.Lat) && !math.IsNaN(c.Lng)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
