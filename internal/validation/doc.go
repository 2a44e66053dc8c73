// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package validation validates decoded request bodies with
// go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in errors are the
// JSON names clients send, and failures convert to the API's
// VALIDATION_ERROR body.
//
// Custom tags:
//
//	departure_time  a timestamp accepted by models.ParseDepartureTime
//
// Example:
//
//	var req models.RecommendRequest
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
//	    return
//	}
package validation
