// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package movies

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
)

// Error messages.
const (
	MsgQueryRequired = "Consulta requerida"
	MsgMovieNotFound = "Película no encontrada"
)

// TMDB serves at most 500 pages.
const maxPage = 500

// Handler exposes the peliculas endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the movie, TV and genre endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/peliculas", func(r chi.Router) {
		r.Get("/buscar", api.Handle(h.Buscar))
		r.Get("/populares", api.Handle(h.Populares))
		r.Get("/cartelera", api.Handle(h.Cartelera))
		r.Get("/{id}", api.Handle(h.Detalle))
	})
	r.Get("/api/series/buscar", api.Handle(h.BuscarSeries))
	r.Get("/api/generos/peliculas", api.Handle(h.Generos))
}

// Buscar searches movies
//
// @Summary Search movies
// @Tags Peliculas
// @Produce json
// @Param q query string true "Title search"
// @Param page query int false "Page" default(1)
// @Success 200 {object} movies.Busqueda
// @Failure 400 {object} api.ErrorEnvelope "Missing query"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/peliculas/buscar [get]
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) error {
	q, err := api.RequiredQuery(r, "q", MsgQueryRequired)
	if err != nil {
		return err
	}
	page, err := pageParam(r)
	if err != nil {
		return err
	}

	res, err := h.svc.Search(r.Context(), q, page)
	if err != nil {
		return err
	}
	return api.OK(w, res)
}

// Detalle returns a movie with cast, crew, trailers and related titles
//
// @Summary Movie detail
// @Tags Peliculas
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} movies.PeliculaDetalle
// @Failure 404 {object} api.ErrorEnvelope "Movie not found"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/peliculas/{id} [get]
func (h *Handler) Detalle(w http.ResponseWriter, r *http.Request) error {
	id, err := api.PathInt(r, "id", MsgMovieNotFound)
	if err != nil {
		return err
	}

	pelicula, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		return api.NotFoundIfUpstream404(err, MsgMovieNotFound)
	}
	return api.OK(w, pelicula)
}

// Populares returns popular movies
//
// @Summary Popular movies
// @Tags Peliculas
// @Produce json
// @Param page query int false "Page" default(1)
// @Success 200 {object} movies.Populares
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/peliculas/populares [get]
func (h *Handler) Populares(w http.ResponseWriter, r *http.Request) error {
	page, err := pageParam(r)
	if err != nil {
		return err
	}

	res, err := h.svc.Popular(r.Context(), page)
	if err != nil {
		return err
	}
	return api.OK(w, res)
}

// Cartelera returns movies now playing
//
// @Summary Now playing
// @Tags Peliculas
// @Produce json
// @Success 200 {array} movies.PeliculaBreve
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/peliculas/cartelera [get]
func (h *Handler) Cartelera(w http.ResponseWriter, r *http.Request) error {
	res, err := h.svc.NowPlaying(r.Context())
	if err != nil {
		return err
	}
	return api.OK(w, res)
}

// BuscarSeries searches TV shows
//
// @Summary Search TV shows
// @Tags Peliculas
// @Produce json
// @Param q query string true "Show name"
// @Success 200 {array} movies.Serie
// @Failure 400 {object} api.ErrorEnvelope "Missing query"
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/series/buscar [get]
func (h *Handler) BuscarSeries(w http.ResponseWriter, r *http.Request) error {
	q, err := api.RequiredQuery(r, "q", MsgQueryRequired)
	if err != nil {
		return err
	}

	series, err := h.svc.SearchTV(r.Context(), q)
	if err != nil {
		return err
	}
	return api.OK(w, series)
}

// Generos returns the movie genre list
//
// @Summary Movie genres
// @Tags Peliculas
// @Produce json
// @Success 200 {array} movies.Genero
// @Failure 500 {object} api.ErrorEnvelope "Upstream failure"
// @Router /api/generos/peliculas [get]
func (h *Handler) Generos(w http.ResponseWriter, r *http.Request) error {
	generos, err := h.svc.Genres(r.Context())
	if err != nil {
		return err
	}
	return api.OK(w, generos)
}

func pageParam(r *http.Request) (int, error) {
	page, err := api.QueryInt(r, 1, "page")
	if err != nil {
		return 0, err
	}
	return api.ClampInt(page, 1, maxPage), nil
}
