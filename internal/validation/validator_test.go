// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/tripweaver/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_CalculateRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     models.CalculateRouteRequest
		wantField string
	}{
		{
			name:  "ids only",
			input: models.CalculateRouteRequest{DepartureBuildingID: "empire-state", DestinationBuildingID: "times-square"},
		},
		{
			name: "all fields",
			input: models.CalculateRouteRequest{
				DepartureBuildingID:   "empire-state",
				DestinationBuildingID: "times-square",
				DepartureTime:         "2024-01-01T19:00",
				Duration:              6,
				Mood:                  "romantic",
			},
		},
		{
			name:      "missing departure",
			input:     models.CalculateRouteRequest{DestinationBuildingID: "times-square"},
			wantField: "departureBuildingId",
		},
		{
			name: "bad departure time",
			input: models.CalculateRouteRequest{
				DepartureBuildingID:   "a",
				DestinationBuildingID: "b",
				DepartureTime:         "soon",
			},
			wantField: "departureTime",
		},
		{
			name: "negative duration",
			input: models.CalculateRouteRequest{
				DepartureBuildingID:   "a",
				DestinationBuildingID: "b",
				Duration:              -2,
			},
			wantField: "duration",
		},
		{
			name: "mood too long",
			input: models.CalculateRouteRequest{
				DepartureBuildingID:   "a",
				DestinationBuildingID: "b",
				Mood:                  strings.Repeat("x", 33),
			},
			wantField: "mood",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected validation error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("Field() = %q, want %q", got, tt.wantField)
			}
			if !errors.Is(err, models.ErrMalformedInput) {
				t.Error("validation errors should match ErrMalformedInput")
			}
		})
	}
}

func TestValidateStruct_Recommend(t *testing.T) {
	t.Parallel()

	valid := models.RecommendRequest{CityID: "nyc", Mood: "romantic", Duration: 6, DepartureTime: "2024-01-01T19:00:00Z"}
	if err := ValidateStruct(&valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateStruct(&models.RecommendRequest{})
	if err == nil {
		t.Fatal("expected errors for empty request")
	}
	fields := map[string]bool{}
	for _, e := range err.Errors() {
		fields[e.Field()] = true
	}
	if !fields["cityId"] || !fields["departureTime"] {
		t.Errorf("fields = %v, want cityId and departureTime", fields)
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		err := ValidateStruct(&models.ChatRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr := err.ToAPIError()
		if apiErr.Code != ErrorCode {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "message is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "message" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()

		err := ValidateStruct(&models.RecommendRequest{Duration: 1000})
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr := err.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 3 {
			t.Fatalf("Details = %v", apiErr.Details)
		}
		if !strings.Contains(apiErr.Message, "duration must be less than or equal to 720") {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
	})
}

func TestTranslateError_Messages(t *testing.T) {
	t.Parallel()

	type sample struct {
		Name  string `json:"name" validate:"min=3"`
		Count int    `json:"count" validate:"max=2"`
		Kind  string `json:"kind" validate:"oneof=a b"`
	}

	err := ValidateStruct(&sample{Name: "x", Count: 5, Kind: "c"})
	if err == nil {
		t.Fatal("expected error")
	}
	want := []string{
		"name must be at least 3 characters",
		"count must be at most 2",
		"kind must be one of: a b",
	}
	for i, e := range err.Errors() {
		if e.Error() != want[i] {
			t.Errorf("message %d = %q, want %q", i, e.Error(), want[i])
		}
	}
}
