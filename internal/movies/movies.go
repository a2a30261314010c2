// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package movies implements the peliculas backend over TMDB v3.
package movies

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tomtom215/pasarela/internal/cache"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/mapper"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Result sizes for the detail view and the now-playing list.
const (
	CastSize           = 10
	WritersSize        = 3
	RelatedSize        = 6
	NowPlayingSize     = 10
	defaultCastOrder   = 999
	appendToResponse   = "credits,videos,similar,recommendations"
	youTubeWatchPrefix = "https://www.youtube.com/watch?v="
)

// Service calls TMDB.
type Service struct {
	client       *upstream.Client
	region       string
	imageBase    string
	backdropBase string
	genres       *cache.Cache[[]Genero]
}

// NewService creates the service. api_key and language are sent on every
// call.
func NewService(cfg config.MoviesConfig, up config.UpstreamConfig) *Service {
	c := upstream.Defaults("tmdb", cfg.BaseURL, up)
	c.Query = url.Values{"api_key": {cfg.APIKey}, "language": {cfg.Language}}
	return &Service{
		client:       upstream.New(c),
		region:       cfg.Region,
		imageBase:    cfg.ImageBaseURL,
		backdropBase: cfg.BackdropBaseURL,
		genres:       cache.New[[]Genero]("tmdb_genres", cfg.GenreCacheTTL),
	}
}

// Search runs a movie title search.
func (s *Service) Search(ctx context.Context, query string, page int) (*Busqueda, error) {
	params := url.Values{
		"query":         {query},
		"page":          {strconv.Itoa(page)},
		"include_adult": {"false"},
	}
	var p moviePage
	if err := s.client.Get(ctx, "/search/movie", params, &p); err != nil {
		return nil, err
	}
	return &Busqueda{
		Peliculas:       mapper.Map(p.Results, s.toPelicula),
		Pagina:          p.Page,
		TotalPaginas:    p.TotalPages,
		TotalResultados: p.TotalResults,
	}, nil
}

// Popular returns one page of popular movies.
func (s *Service) Popular(ctx context.Context, page int) (*Populares, error) {
	var p moviePage
	if err := s.client.Get(ctx, "/movie/popular", url.Values{"page": {strconv.Itoa(page)}}, &p); err != nil {
		return nil, err
	}
	return &Populares{
		Peliculas: mapper.Map(p.Results, func(m movieResult) PeliculaPopular {
			return PeliculaPopular{
				ID:           m.ID,
				Titulo:       m.Title,
				Poster:       mapper.ImageURL(s.imageBase, m.PosterPath),
				Calificacion: m.VoteAverage,
				FechaEstreno: m.ReleaseDate,
			}
		}),
		Pagina:       p.Page,
		TotalPaginas: p.TotalPages,
	}, nil
}

// NowPlaying returns the first titles currently in theatres in the
// configured region.
func (s *Service) NowPlaying(ctx context.Context) ([]PeliculaBreve, error) {
	var p moviePage
	if err := s.client.Get(ctx, "/movie/now_playing", url.Values{"region": {s.region}}, &p); err != nil {
		return nil, err
	}
	return mapper.Map(mapper.First(p.Results, NowPlayingSize), s.toBreve), nil
}

// Detail fetches a movie with credits, videos, similar and recommended
// titles in one call and splits the combined document apart.
func (s *Service) Detail(ctx context.Context, id int64) (*PeliculaDetalle, error) {
	var m movieDetail
	path := "/movie/" + strconv.FormatInt(id, 10)
	if err := s.client.Get(ctx, path, url.Values{"append_to_response": {appendToResponse}}, &m); err != nil {
		return nil, err
	}
	return s.toDetalle(&m), nil
}

// SearchTV runs a TV show search.
func (s *Service) SearchTV(ctx context.Context, query string) ([]Serie, error) {
	var p tvPage
	if err := s.client.Get(ctx, "/search/tv", url.Values{"query": {query}}, &p); err != nil {
		return nil, err
	}
	return mapper.Map(p.Results, func(t tvResult) Serie {
		return Serie{
			ID:           t.ID,
			Nombre:       t.Name,
			Descripcion:  t.Overview,
			Poster:       mapper.ImageURL(s.imageBase, t.PosterPath),
			PrimeraFecha: t.FirstAirDate,
			Calificacion: t.VoteAverage,
		}
	}), nil
}

// Genres returns the movie genre list, cached for the configured TTL.
func (s *Service) Genres(ctx context.Context) ([]Genero, error) {
	return s.genres.GetOrLoad(ctx, "movie", func(ctx context.Context) ([]Genero, error) {
		var g genreList
		if err := s.client.Get(ctx, "/genre/movie/list", nil, &g); err != nil {
			return nil, err
		}
		return mapper.Slice(g.Genres), nil
	})
}

func (s *Service) toPelicula(m movieResult) Pelicula {
	return Pelicula{
		ID:             m.ID,
		Titulo:         m.Title,
		TituloOriginal: m.OriginalTitle,
		Descripcion:    m.Overview,
		Poster:         mapper.ImageURL(s.imageBase, m.PosterPath),
		Backdrop:       mapper.ImageURL(s.backdropBase, m.BackdropPath),
		FechaEstreno:   m.ReleaseDate,
		Popularidad:    m.Popularity,
		Calificacion:   m.VoteAverage,
		Votos:          m.VoteCount,
	}
}

func (s *Service) toBreve(m movieResult) PeliculaBreve {
	return PeliculaBreve{
		ID:           m.ID,
		Titulo:       m.Title,
		Poster:       mapper.ImageURL(s.imageBase, m.PosterPath),
		Calificacion: m.VoteAverage,
	}
}

func (s *Service) toDetalle(m *movieDetail) *PeliculaDetalle {
	byRating := func(r movieResult) float64 { return r.VoteAverage }
	names := func(n named) string { return n.Name }

	d := &PeliculaDetalle{
		ID:             m.ID,
		Titulo:         m.Title,
		TituloOriginal: m.OriginalTitle,
		Descripcion:    m.Overview,
		Tagline:        m.Tagline,
		Poster:         mapper.ImageURL(s.imageBase, m.PosterPath),
		Backdrop:       mapper.ImageURL(s.backdropBase, m.BackdropPath),
		FechaEstreno:   m.ReleaseDate,
		Duracion:       m.Runtime,
		Presupuesto:    m.Budget,
		Ingresos:       m.Revenue,
		Calificacion:   m.VoteAverage,
		Votos:          m.VoteCount,
		Popularidad:    m.Popularity,
		Generos:        mapper.Map(m.Genres, names),
		Productoras:    mapper.Map(m.ProductionCompanies, names),
		Paises:         mapper.Map(m.ProductionCountries, names),
		Homepage:       m.Homepage,
		IMDbID:         m.IMDbID,
		Reparto:        s.cast(m.Credits.Cast),
		Trailers:       trailers(m.Videos.Results),
	}
	d.Similares = mapper.Map(mapper.TopK(m.Similar.Results, RelatedSize, byRating), s.toBreve)
	d.Recomendaciones = mapper.Map(mapper.TopK(m.Recommendations.Results, RelatedSize, byRating), s.toBreve)
	d.Idiomas = make([]string, 0, len(m.SpokenLanguages))
	for _, l := range m.SpokenLanguages {
		d.Idiomas = append(d.Idiomas, l.EnglishName)
	}

	d.Guionistas = []string{}
	for _, c := range m.Credits.Crew {
		switch c.Job {
		case "Director":
			if d.Director == nil {
				name := c.Name
				d.Director = &name
			}
		case "Writer", "Screenplay":
			if len(d.Guionistas) < WritersSize {
				d.Guionistas = append(d.Guionistas, c.Name)
			}
		}
	}
	return d
}

// cast ranks by billing order, members without one sorting last.
func (s *Service) cast(members []castMember) []Actor {
	actors := mapper.Map(members, func(c castMember) Actor {
		order := defaultCastOrder
		if c.Order != nil {
			order = *c.Order
		}
		return Actor{
			Nombre:    c.Name,
			Personaje: c.Character,
			Foto:      mapper.ImageURL(s.imageBase, c.ProfilePath),
			Orden:     order,
		}
	})
	return mapper.TopK(actors, CastSize, func(a Actor) float64 { return -float64(a.Orden) })
}

func trailers(videos []video) []Trailer {
	kept := mapper.Filter(videos, func(v video) bool {
		return v.Site == "YouTube" && (v.Type == "Trailer" || v.Type == "Teaser")
	})
	return mapper.Map(kept, func(v video) Trailer {
		return Trailer{Nombre: v.Name, Tipo: v.Type, Sitio: v.Site, Key: v.Key, URL: youTubeWatchPrefix + v.Key}
	})
}
