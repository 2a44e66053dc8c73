// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package middleware

import (
	"net/http"

	"github.com/tomtom215/tripweaver/internal/logging"
)

const (
	RequestIDHeader     = "X-Request-ID"
	CorrelationIDHeader = "X-Correlation-ID"

	// maxIDLength bounds ids accepted from upstream proxies.
	maxIDLength = 128
)

// RequestID assigns every request an id, reusing a well-formed
// X-Request-ID from an upstream proxy, and echoes it in the response.
// The request and correlation ids are stored in the context for
// logging.Ctx.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validID(requestID) {
			requestID = logging.GenerateRequestID()
		}
		correlationID := r.Header.Get(CorrelationIDHeader)
		if !validID(correlationID) {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next(w, r.WithContext(ctx))
	}
}

// validID accepts printable ASCII without spaces.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
