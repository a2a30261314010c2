// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package books

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
)

// Error messages.
const (
	MsgQueryRequired = "Consulta requerida"
	MsgBookNotFound  = "Libro no encontrado"
)

// Handler exposes the libros endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the libros endpoints. The static routes are registered
// before /{id} so chi prefers them.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/libros", func(r chi.Router) {
		r.Get("/buscar", api.Handle(h.Buscar))
		r.Get("/categorias", api.Handle(h.Categorias))
		r.Get("/{id}", api.Handle(h.Detalle))
	})
}

// Buscar searches books
//
// @Summary Search books
// @Tags Libros
// @Produce json
// @Param q query string true "Search terms"
// @Param categoria query string false "Subject category"
// @Param max query int false "Maximum results (capped at 40)" default(20)
// @Success 200 {array} books.Libro
// @Failure 400 {object} api.ErrorEnvelope "Missing query"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/libros/buscar [get]
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) error {
	q, err := api.RequiredQuery(r, "q", MsgQueryRequired)
	if err != nil {
		return err
	}
	maxResults, err := api.QueryInt(r, DefaultMaxResults, "max")
	if err != nil {
		return err
	}

	libros, err := h.svc.Search(r.Context(), q, api.QueryDefault(r, "categoria", ""), maxResults)
	if err != nil {
		return err
	}
	return api.OK(w, libros)
}

// Detalle returns one book
//
// @Summary Book detail
// @Tags Libros
// @Produce json
// @Param id path string true "Google Books volume id"
// @Success 200 {object} books.LibroDetalle
// @Failure 404 {object} api.ErrorEnvelope "Book not found"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/libros/{id} [get]
func (h *Handler) Detalle(w http.ResponseWriter, r *http.Request) error {
	libro, err := h.svc.Detail(r.Context(), api.PathParam(r, "id"))
	if err != nil {
		return api.NotFoundIfUpstream404(err, MsgBookNotFound)
	}
	return api.OK(w, libro)
}

// Categorias returns the static category list
//
// @Summary Book categories
// @Tags Libros
// @Produce json
// @Success 200 {array} string
// @Router /api/libros/categorias [get]
func (h *Handler) Categorias(w http.ResponseWriter, r *http.Request) error {
	return api.OK(w, Categorias)
}
