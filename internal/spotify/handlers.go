// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package spotify

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Error messages.
const (
	MsgQueryRequired  = "Consulta requerida"
	MsgAuthFailed     = "Error al autenticar con Spotify"
	MsgInvalidType    = "Tipo inválido: use track, artist, album o playlist"
	MsgArtistNotFound = "Artista no encontrado"
	MsgAlbumNotFound  = "Álbum no encontrado"
)

// Query defaults.
const (
	DefaultSearchType = "track"
	DefaultLimit      = 20
	DefaultGenres     = "pop,rock"
	maxSearchLimit    = 50
	maxRecommendLimit = 100
)

// Handler exposes the spotify endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the spotify endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/spotify", func(r chi.Router) {
		r.Get("/buscar", api.Handle(h.Buscar))
		r.Get("/artista/{id}", api.Handle(h.Artista))
		r.Get("/album/{id}", api.Handle(h.Album))
		r.Get("/recomendaciones", api.Handle(h.Recomendaciones))
		r.Get("/generos", api.Handle(h.Generos))
	})
}

// failure maps token errors to the authentication message and upstream
// 404s to notFound when given.
func failure(err error, notFound string) error {
	if errors.Is(err, upstream.ErrAuthentication) {
		return api.Internal(MsgAuthFailed, err)
	}
	if notFound != "" {
		return api.NotFoundIfUpstream404(err, notFound)
	}
	return err
}

// Buscar searches the catalog
//
// @Summary Search tracks, artists, albums or playlists
// @Tags Spotify
// @Produce json
// @Param q query string true "Search terms"
// @Param tipo query string false "track, artist, album or playlist" default(track)
// @Param limite query int false "Number of results (max 50)" default(20)
// @Success 200 {array} spotify.Cancion "Element type depends on tipo"
// @Failure 400 {object} api.ErrorEnvelope "Missing query or invalid type"
// @Failure 500 {object} api.ErrorEnvelope "Authentication or upstream failure"
// @Router /api/spotify/buscar [get]
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) error {
	q, err := api.RequiredQuery(r, "q", MsgQueryRequired)
	if err != nil {
		return err
	}
	limit, err := api.QueryInt(r, DefaultLimit, "limite", "limit")
	if err != nil {
		return err
	}

	res, err := h.svc.Search(r.Context(), q, api.QueryDefault(r, "tipo", DefaultSearchType), api.ClampInt(limit, 1, maxSearchLimit))
	if errors.Is(err, ErrInvalidType) {
		return api.BadRequest(MsgInvalidType)
	}
	if err != nil {
		return failure(err, "")
	}
	return api.OK(w, res)
}

// Artista returns an artist with top tracks, albums and related artists
//
// @Summary Artist detail
// @Tags Spotify
// @Produce json
// @Param id path string true "Spotify artist id"
// @Success 200 {object} spotify.ArtistaDetalle
// @Failure 404 {object} api.ErrorEnvelope "Artist not found"
// @Failure 500 {object} api.ErrorEnvelope "Authentication or upstream failure"
// @Router /api/spotify/artista/{id} [get]
func (h *Handler) Artista(w http.ResponseWriter, r *http.Request) error {
	artista, err := h.svc.Artist(r.Context(), api.PathParam(r, "id"))
	if err != nil {
		return failure(err, MsgArtistNotFound)
	}
	return api.OK(w, artista)
}

// Album returns an album with its tracks
//
// @Summary Album detail
// @Tags Spotify
// @Produce json
// @Param id path string true "Spotify album id"
// @Success 200 {object} spotify.AlbumDetalle
// @Failure 404 {object} api.ErrorEnvelope "Album not found"
// @Failure 500 {object} api.ErrorEnvelope "Authentication or upstream failure"
// @Router /api/spotify/album/{id} [get]
func (h *Handler) Album(w http.ResponseWriter, r *http.Request) error {
	album, err := h.svc.Album(r.Context(), api.PathParam(r, "id"))
	if err != nil {
		return failure(err, MsgAlbumNotFound)
	}
	return api.OK(w, album)
}

// Recomendaciones returns tracks seeded by genres
//
// @Summary Genre-seeded recommendations
// @Tags Spotify
// @Produce json
// @Param generos query string false "Comma-separated genre seeds" default(pop,rock)
// @Param limite query int false "Number of tracks (max 100)" default(20)
// @Success 200 {array} spotify.Recomendacion
// @Failure 500 {object} api.ErrorEnvelope "Authentication or upstream failure"
// @Router /api/spotify/recomendaciones [get]
func (h *Handler) Recomendaciones(w http.ResponseWriter, r *http.Request) error {
	limit, err := api.QueryInt(r, DefaultLimit, "limite", "limit")
	if err != nil {
		return err
	}

	recs, err := h.svc.Recommendations(r.Context(), api.QueryDefault(r, "generos", DefaultGenres), api.ClampInt(limit, 1, maxRecommendLimit))
	if err != nil {
		return failure(err, "")
	}
	return api.OK(w, recs)
}

// Generos returns the available genre seeds
//
// @Summary Genre seeds
// @Tags Spotify
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} api.ErrorEnvelope "Authentication or upstream failure"
// @Router /api/spotify/generos [get]
func (h *Handler) Generos(w http.ResponseWriter, r *http.Request) error {
	generos, err := h.svc.Genres(r.Context())
	if err != nil {
		return failure(err, "")
	}
	return api.OK(w, generos)
}
