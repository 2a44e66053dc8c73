// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tripweaver/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health
// @Description Returns "healthy" with the server time. The service has no external dependencies to probe.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is healthy"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, models.HealthStatus{
		Status:    "healthy",
		Timestamp: start.UTC(),
	}, start)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK while the process is alive.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, start)
}
