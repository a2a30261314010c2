// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package weather

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
)

// Handler exposes the clima endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the clima endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/clima", api.Handle(h.Clima))
}

// Clima returns the current weather for the caller's location
//
// @Summary Current weather
// @Description Geolocates the server egress IP (or the ip parameter) with ipapi and returns the current OpenWeatherMap conditions in Spanish, metric units.
// @Tags Clima
// @Produce json
// @Param ip query string false "IP address to geolocate instead of the egress IP"
// @Success 200 {object} weather.Clima
// @Failure 400 {object} api.ErrorEnvelope "Invalid IP"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/clima [get]
func (h *Handler) Clima(w http.ResponseWriter, r *http.Request) error {
	ip := api.QueryDefault(r, "ip", "")
	if ip != "" && net.ParseIP(ip) == nil {
		return api.BadRequest("IP inválida")
	}

	clima, err := h.svc.Current(r.Context(), ip)
	if err != nil {
		return err
	}
	return api.OK(w, clima)
}
