// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// CalculateRouteRequest is the body of POST /calculate-route and /plan-trip.
//
// Departure and Destination are the key names used by older clients; they
// are only consulted when the normalized ids are empty.
type CalculateRouteRequest struct {
	DepartureBuildingID   string `json:"departureBuildingId" validate:"required,max=64"`
	DestinationBuildingID string `json:"destinationBuildingId" validate:"required,max=64"`
	Departure             string `json:"departure,omitempty" validate:"-"`
	Destination           string `json:"destination,omitempty" validate:"-"`
	DepartureTime         string `json:"departureTime" validate:"omitempty,departure_time"`
	Duration              Hours  `json:"duration" validate:"gte=0,lte=720"`
	Mood                  string `json:"mood" validate:"omitempty,max=32"`
}

// Normalize folds the legacy endpoint keys into the normalized ones.
func (r *CalculateRouteRequest) Normalize() {
	if r.DepartureBuildingID == "" {
		r.DepartureBuildingID = r.Departure
	}
	if r.DestinationBuildingID == "" {
		r.DestinationBuildingID = r.Destination
	}
}

// PlanTripRequest is the body of POST /plan-trip. It carries the route
// keys plus the inputs of the destination recommendation, so departureTime
// is required.
type PlanTripRequest struct {
	DepartureBuildingID   string `json:"departureBuildingId" validate:"required,max=64"`
	DestinationBuildingID string `json:"destinationBuildingId" validate:"required,max=64"`
	Departure             string `json:"departure,omitempty" validate:"-"`
	Destination           string `json:"destination,omitempty" validate:"-"`
	DepartureTime         string `json:"departureTime" validate:"required,departure_time"`
	Duration              Hours  `json:"duration" validate:"gte=0,lte=720"`
	Mood                  string `json:"mood" validate:"omitempty,max=32"`
}

// Normalize folds the legacy endpoint keys into the normalized ones.
func (r *PlanTripRequest) Normalize() {
	if r.DepartureBuildingID == "" {
		r.DepartureBuildingID = r.Departure
	}
	if r.DestinationBuildingID == "" {
		r.DestinationBuildingID = r.Destination
	}
}

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	CityID        string `json:"cityId" validate:"required,max=64"`
	Mood          string `json:"mood" validate:"omitempty,max=32"`
	Duration      Hours  `json:"duration" validate:"gte=0,lte=720"`
	DepartureTime string `json:"departureTime" validate:"required,departure_time"`
}

// ChatRequest is the body of POST /chat. Context is accepted for client
// compatibility and not interpreted.
type ChatRequest struct {
	Message string      `json:"message" validate:"required,max=2000"`
	Context interface{} `json:"context,omitempty" validate:"-"`
}

// Hours is a trip duration in hours. It decodes from a JSON number or a
// numeric string; null decodes to zero.
type Hours float64

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*h = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: duration: %v", ErrMalformedInput, err)
		}
		raw = s
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: duration must be a number of hours, got %q", ErrMalformedInput, raw)
	}
	*h = Hours(v)
	return nil
}

// departureTimeLayouts are tried in order after RFC 3339.
var departureTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDepartureTime parses a departure timestamp. Values carrying a zone
// are converted to loc; zoneless values keep their wall-clock hour.
func ParseDepartureTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range departureTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: departureTime %q is not a recognized timestamp", ErrMalformedInput, s)
}
