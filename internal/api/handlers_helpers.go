// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tripweaver/internal/logging"
	"github.com/tomtom215/tripweaver/internal/metrics"
	"github.com/tomtom215/tripweaver/internal/models"
	"github.com/tomtom215/tripweaver/internal/validation"
)

// sanitizeLogValue escapes control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with an ETag.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "no-store")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope timed from start.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a weak validator from the FNV-1a hash of data.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondDomainError maps an error from the planning core to a response.
func respondDomainError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	var (
		status  int
		code    string
		message string
	)
	switch {
	case errors.Is(err, models.ErrBuildingsNotFound):
		status, code, message = http.StatusNotFound, ErrCodeBuildingsNotFound, "Buildings not found"
	case errors.Is(err, models.ErrCityNotFound):
		status, code, message = http.StatusNotFound, ErrCodeCityNotFound, "City not found"
	case errors.Is(err, models.ErrMalformedInput):
		status, code, message = http.StatusBadRequest, ErrCodeInvalidRequest, err.Error()
	default:
		status, code, message = http.StatusInternalServerError, ErrCodeInternal, "Internal server error"
		logging.Ctx(r.Context()).Error().
			Str("operation", operation).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Request failed")
	}

	metrics.RecordDomainError(operation, code)
	respondError(w, status, code, message, nil)
}

// decodeAndValidate reads a JSON body into dst, applies normalize when
// given, and validates the result. It writes the 400 response itself and
// reports whether the handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, operation string, dst interface{}, normalize func()) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		metrics.RecordDomainError(operation, ErrCodeInvalidRequest)
		respondError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid request body", nil)
		return false
	}
	if normalize != nil {
		normalize()
	}
	if apiErr := validateRequest(dst); apiErr != nil {
		metrics.RecordDomainError(operation, apiErr.Code)
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}

// withTimeout bounds work done on behalf of r.
func (h *Handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
