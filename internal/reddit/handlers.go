// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package reddit

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
)

// Error messages.
const (
	MsgQueryRequired     = "Consulta requerida"
	MsgSubredditNotFound = "Subreddit no encontrado"
	MsgInvalidFilter     = "Filtro inválido: use hot, new o top"
)

// Handler exposes the reddit endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the reddit endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/reddit", func(r chi.Router) {
		r.Get("/posts", api.Handle(h.Posts))
		r.Get("/buscar", api.Handle(h.Buscar))
		r.Get("/subreddits/populares", api.Handle(h.SubredditsPopulares))
	})
}

// Posts lists a subreddit
//
// @Summary Subreddit posts
// @Tags Reddit
// @Produce json
// @Param subreddit query string false "Subreddit name" default(python)
// @Param filtro query string false "hot, new or top" default(hot)
// @Param limit query int false "Number of posts (alias: limite)" default(10)
// @Success 200 {object} reddit.Listado
// @Failure 400 {object} api.ErrorEnvelope "Invalid filter or limit"
// @Failure 404 {object} api.ErrorEnvelope "Subreddit not found"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/reddit/posts [get]
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) error {
	limit, err := limitParam(r)
	if err != nil {
		return err
	}
	subreddit := api.QueryDefault(r, "subreddit", DefaultSubreddit)
	filter := api.QueryDefault(r, "filtro", DefaultFilter)

	listado, err := h.svc.Posts(r.Context(), subreddit, filter, limit)
	if errors.Is(err, ErrInvalidFilter) {
		return api.BadRequest(MsgInvalidFilter)
	}
	if err != nil {
		return api.NotFoundIfUpstream404(err, MsgSubredditNotFound)
	}
	return api.OK(w, listado)
}

// Buscar searches all of Reddit
//
// @Summary Search posts
// @Tags Reddit
// @Produce json
// @Param q query string true "Search terms"
// @Param limit query int false "Number of results (alias: limite)" default(10)
// @Success 200 {array} reddit.Resultado
// @Failure 400 {object} api.ErrorEnvelope "Missing query"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/reddit/buscar [get]
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) error {
	q, err := api.RequiredQuery(r, "q", MsgQueryRequired)
	if err != nil {
		return err
	}
	limit, err := limitParam(r)
	if err != nil {
		return err
	}

	resultados, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		return err
	}
	return api.OK(w, resultados)
}

// SubredditsPopulares returns the static list of popular subreddits
//
// @Summary Popular subreddits
// @Tags Reddit
// @Produce json
// @Success 200 {array} reddit.Subreddit
// @Router /api/reddit/subreddits/populares [get]
func (h *Handler) SubredditsPopulares(w http.ResponseWriter, r *http.Request) error {
	return api.OK(w, Populares)
}

func limitParam(r *http.Request) (int, error) {
	limit, err := api.QueryInt(r, DefaultLimit, "limit", "limite")
	if err != nil {
		return 0, err
	}
	return api.ClampInt(limit, 1, MaxLimit), nil
}
