// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package github

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
)

// Error messages.
const (
	MsgUserNotFound  = "Usuario no encontrado"
	MsgQueryRequired = "Consulta requerida"
)

// Handler exposes the GitHub endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the GitHub endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/github", func(r chi.Router) {
		r.Get("/usuario/{username}", api.Handle(h.Usuario))
		r.Get("/trending", api.Handle(h.Trending))
		r.Get("/buscar/repos", api.Handle(h.BuscarRepos))
	})
}

// Usuario returns a user's profile with repository statistics
//
// @Summary GitHub user statistics
// @Tags GitHub
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} github.Usuario
// @Failure 404 {object} api.ErrorEnvelope "User not found"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/github/usuario/{username} [get]
func (h *Handler) Usuario(w http.ResponseWriter, r *http.Request) error {
	user, err := h.svc.User(r.Context(), api.PathParam(r, "username"))
	if err != nil {
		return api.NotFoundIfUpstream404(err, MsgUserNotFound)
	}
	return api.OK(w, user)
}

// Trending returns the week's most starred new repositories
//
// @Summary Trending repositories
// @Tags GitHub
// @Produce json
// @Success 200 {array} github.RepoTrending
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/github/trending [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) error {
	repos, err := h.svc.Trending(r.Context())
	if err != nil {
		return err
	}
	return api.OK(w, repos)
}

// BuscarRepos searches repositories
//
// @Summary Search repositories
// @Tags GitHub
// @Produce json
// @Param q query string true "Search terms"
// @Param lenguaje query string false "Language filter"
// @Success 200 {array} github.RepoBusqueda
// @Failure 400 {object} api.ErrorEnvelope "Missing query"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/github/buscar/repos [get]
func (h *Handler) BuscarRepos(w http.ResponseWriter, r *http.Request) error {
	q, err := api.RequiredQuery(r, "q", MsgQueryRequired)
	if err != nil {
		return err
	}
	repos, err := h.svc.Search(r.Context(), q, api.QueryDefault(r, "lenguaje", ""))
	if err != nil {
		return err
	}
	return api.OK(w, repos)
}
