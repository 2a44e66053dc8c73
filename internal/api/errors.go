// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import "github.com/tomtom215/tripweaver/internal/validation"

// Error codes returned in APIError.Code.
const (
	ErrCodeCityNotFound      = "CITY_NOT_FOUND"
	ErrCodeBuildingsNotFound = "BUILDINGS_NOT_FOUND"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeValidation        = validation.ErrorCode
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20
