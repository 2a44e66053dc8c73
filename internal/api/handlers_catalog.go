// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tripweaver/internal/models"
)

// catalogCacheControl applies to responses built only from the static catalog.
const catalogCacheControl = "public, max-age=300"

// Cities lists every city with its buildings
//
// @Summary List cities
// @Description Returns every city in the catalog with its buildings, in catalog order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.City} "Cities"
// @Router /cities [get]
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, h.cities.Cities(), start)
}

// CityBuildings lists the buildings of one city
//
// @Summary List buildings of a city
// @Description Returns the buildings that can be used as route endpoints in a city.
// @Tags Catalog
// @Produce json
// @Param id path string true "City ID" example(nyc)
// @Success 200 {object} models.APIResponse{data=[]models.Building} "Buildings"
// @Failure 404 {object} models.APIResponse "CITY_NOT_FOUND"
// @Router /cities/{id}/buildings [get]
func (h *Handler) CityBuildings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	buildings, ok := h.cities.Buildings(chi.URLParam(r, "id"))
	if !ok {
		respondDomainError(w, r, "city_buildings", models.ErrCityNotFound)
		return
	}
	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, buildings, start)
}
