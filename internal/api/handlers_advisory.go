// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tripweaver/internal/metrics"
	"github.com/tomtom215/tripweaver/internal/models"
)

// Weather returns a synthetic weather snapshot for a city
//
// @Summary Get weather
// @Description Returns a randomly drawn condition with matching advice. The city id is echoed and does not change the draw.
// @Tags Advisory
// @Produce json
// @Param cityId path string true "City ID" example(paris)
// @Success 200 {object} models.APIResponse{data=models.WeatherSnapshot} "Weather snapshot"
// @Router /weather/{cityId} [get]
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snapshot, err := h.advisor.Weather(chi.URLParam(r, "cityId"))
	if err != nil {
		respondDomainError(w, r, "weather", err)
		return
	}
	metrics.RecordWeather(snapshot.Condition)
	respondSuccess(w, snapshot, start)
}

// Traffic returns a synthetic traffic snapshot for a route
//
// @Summary Get traffic
// @Description Returns a randomly drawn congestion level. Heavy traffic carries a 10 to 29 minute delay and two alternate routes.
// @Tags Advisory
// @Produce json
// @Param routeId path string true "Route ID"
// @Success 200 {object} models.APIResponse{data=models.TrafficSnapshot} "Traffic snapshot"
// @Router /traffic/{routeId} [get]
func (h *Handler) Traffic(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snapshot := h.advisor.Traffic(chi.URLParam(r, "routeId"))
	metrics.RecordTraffic(snapshot.CongestionLevel)
	respondSuccess(w, snapshot, start)
}

// Chat answers a travel question
//
// @Summary Travel chat
// @Description Matches the message against topic keywords and returns that topic's reply with four follow-up suggestions. The context field is accepted and ignored.
// @Tags Advisory
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.APIResponse{data=models.ChatResponse} "Reply"
// @Failure 400 {object} models.APIResponse "INVALID_REQUEST or VALIDATION_ERROR"
// @Router /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req models.ChatRequest
	if !decodeAndValidate(w, r, "chat", &req, nil) {
		return
	}

	reply := h.advisor.Chat(req.Message)
	metrics.RecordChat(reply.Topic)
	respondSuccess(w, reply, start)
}
