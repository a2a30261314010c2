// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package currency

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
)

// Error messages.
const (
	MsgRatesFailed      = "Error al obtener tasas"
	MsgConversionFailed = "Error en conversión"
	MsgAmountRequired   = "Monto requerido"
)

// Handler exposes the divisas endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the divisas endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/divisas", func(r chi.Router) {
		r.Get("/tasas/{base}", api.Handle(h.Tasas))
		r.Get("/convertir", api.Handle(h.Convertir))
		r.Get("/monedas", api.Handle(h.Monedas))
	})
}

// Tasas returns the latest exchange rates for a base currency
//
// @Summary Latest exchange rates
// @Tags Divisas
// @Produce json
// @Param base path string true "Base currency code" example(USD)
// @Success 200 {object} currency.Tasas
// @Failure 400 {object} api.ErrorEnvelope "Rates rejected by the provider"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/divisas/tasas/{base} [get]
func (h *Handler) Tasas(w http.ResponseWriter, r *http.Request) error {
	tasas, err := h.svc.Latest(r.Context(), api.PathParam(r, "base"))
	if err != nil {
		return asBadRequest(err, MsgRatesFailed)
	}
	return api.OK(w, tasas)
}

// Convertir converts an amount between two currencies
//
// @Summary Convert currency
// @Tags Divisas
// @Produce json
// @Param monto query number true "Amount, non-zero"
// @Param de query string false "Source currency" default(USD)
// @Param a query string false "Target currency" default(MXN)
// @Success 200 {object} currency.Conversion
// @Failure 400 {object} api.ErrorEnvelope "Missing amount or conversion rejected"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/divisas/convertir [get]
func (h *Handler) Convertir(w http.ResponseWriter, r *http.Request) error {
	monto, ok, err := api.QueryFloat(r, "monto")
	if err != nil || !ok || monto == 0 {
		return api.BadRequest(MsgAmountRequired)
	}

	conv, err := h.svc.Convert(r.Context(), monto,
		api.QueryDefault(r, "de", DefaultFrom),
		api.QueryDefault(r, "a", DefaultTo))
	if err != nil {
		return asBadRequest(err, MsgConversionFailed)
	}
	return api.OK(w, conv)
}

// Monedas returns the static currency table
//
// @Summary Supported currencies
// @Tags Divisas
// @Produce json
// @Success 200 {object} map[string]currency.Moneda
// @Router /api/divisas/monedas [get]
func (h *Handler) Monedas(w http.ResponseWriter, r *http.Request) error {
	return api.OK(w, Monedas)
}

func asBadRequest(err error, message string) error {
	var rej *ErrRejected
	if errors.As(err, &rej) {
		return api.BadRequest("%s", message)
	}
	return err
}
