// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package spotify implements the spotify backend over the Spotify Web API
// using an app-only client credentials token.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tomtom215/pasarela/internal/cache"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/mapper"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Result sizes.
const (
	TopTracksSize   = 10
	RelatedSize     = 6
	ArtistAlbumsMax = 10
)

// ErrInvalidType is returned for a search tipo Spotify does not support.
var ErrInvalidType = errors.New("invalid search type")

// SearchTypes are the accepted values of tipo.
var SearchTypes = []string{"track", "artist", "album", "playlist"}

// Service calls the Spotify Web API.
type Service struct {
	client *upstream.Client
	tokens *upstream.ClientCredentials
	market string
	genres *cache.Cache[[]string]
}

// NewService creates the service. The token endpoint gets its own client so
// its breaker and metrics are tracked apart from the API.
func NewService(cfg config.SpotifyConfig, up config.UpstreamConfig) *Service {
	auth := upstream.New(upstream.Defaults("spotify_accounts", "", up))
	tokens := upstream.NewClientCredentials(auth, cfg.TokenURL, cfg.ClientID, cfg.ClientSecret)

	c := upstream.Defaults("spotify", cfg.APIURL, up)
	c.Auth = tokens

	return &Service{
		client: upstream.New(c),
		tokens: tokens,
		market: cfg.Market,
		genres: cache.New[[]string]("spotify_genres", cfg.GenreCacheTTL),
	}
}

// get drops the cached token when Spotify rejects it so the next call
// fetches a fresh one.
func (s *Service) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	err := s.client.Get(ctx, path, query, out)
	if ue, ok := upstream.AsUpstreamError(err); ok && ue.StatusCode == http.StatusUnauthorized {
		s.tokens.Invalidate()
	}
	return err
}

func (s *Service) marketQuery() url.Values {
	return url.Values{"market": {s.market}}
}

// Search runs a catalog search. The result slice element type depends on
// kind: Cancion, Artista, Album or Playlist.
func (s *Service) Search(ctx context.Context, query, kind string, limit int) (interface{}, error) {
	if !validType(kind) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, kind)
	}

	params := s.marketQuery()
	params.Set("q", query)
	params.Set("type", kind)
	params.Set("limit", strconv.Itoa(limit))

	var res searchResponse
	if err := s.get(ctx, "/search", params, &res); err != nil {
		return nil, err
	}

	switch kind {
	case "artist":
		return mapper.Map(nonNil(res.Artists.Items), toArtista), nil
	case "album":
		return mapper.Map(nonNil(res.Albums.Items), toAlbum), nil
	case "playlist":
		return mapper.Map(nonNil(res.Playlists.Items), toPlaylist), nil
	default:
		return mapper.Map(nonNil(res.Tracks.Items), toCancion), nil
	}
}

// Artist fetches an artist together with top tracks, albums and related
// artists. The four calls are independent and run concurrently.
func (s *Service) Artist(ctx context.Context, id string) (*ArtistaDetalle, error) {
	base := "/artists/" + url.PathEscape(id)

	var (
		a       artist
		top     topTracksResponse
		albums  page[simpleAlbum]
		related relatedResponse
	)
	albumsQuery := s.marketQuery()
	albumsQuery.Set("limit", strconv.Itoa(ArtistAlbumsMax))

	plan := upstream.NewPlan(
		upstream.Step{Name: "artist", Run: func(ctx context.Context) error {
			return s.get(ctx, base, nil, &a)
		}},
		upstream.Step{Name: "top-tracks", Run: func(ctx context.Context) error {
			return s.get(ctx, base+"/top-tracks", s.marketQuery(), &top)
		}},
		upstream.Step{Name: "albums", Run: func(ctx context.Context) error {
			return s.get(ctx, base+"/albums", albumsQuery, &albums)
		}},
		upstream.Step{Name: "related", Run: func(ctx context.Context) error {
			return s.get(ctx, base+"/related-artists", nil, &related)
		}},
	)
	if err := plan.Run(ctx); err != nil {
		return nil, err
	}

	art := toArtista(&a)
	return &ArtistaDetalle{
		ID:          art.ID,
		Nombre:      art.Nombre,
		Generos:     art.Generos,
		Popularidad: art.Popularidad,
		Seguidores:  art.Seguidores,
		Imagen:      art.Imagen,
		SpotifyURL:  art.SpotifyURL,
		TopCanciones: mapper.Map(mapper.First(top.Tracks, TopTracksSize), func(t track) TopCancion {
			return TopCancion{
				ID:         t.ID,
				Nombre:     t.Name,
				Album:      t.Album.Name,
				Preview:    t.PreviewURL,
				Imagen:     mapper.FirstImage(t.Album.Images),
				Duracion:   mapper.FormatDuration(t.DurationMs),
				SpotifyURL: t.ExternalURLs.Spotify,
			}
		}),
		Albums: mapper.Map(albums.Items, func(al simpleAlbum) AlbumArtista {
			return AlbumArtista{
				ID:          al.ID,
				Nombre:      al.Name,
				Fecha:       al.ReleaseDate,
				Imagen:      mapper.FirstImage(al.Images),
				TotalTracks: al.TotalTracks,
				Tipo:        al.AlbumType,
			}
		}),
		ArtistasRelacionados: mapper.Map(mapper.First(related.Artists, RelatedSize), func(r artist) ArtistaRelacionado {
			return ArtistaRelacionado{
				ID:          r.ID,
				Nombre:      r.Name,
				Imagen:      mapper.FirstImage(r.Images),
				Popularidad: r.Popularity,
			}
		}),
	}, nil
}

// Album fetches an album with its track list.
func (s *Service) Album(ctx context.Context, id string) (*AlbumDetalle, error) {
	var al fullAlbum
	if err := s.get(ctx, "/albums/"+url.PathEscape(id), s.marketQuery(), &al); err != nil {
		return nil, err
	}
	return &AlbumDetalle{
		ID:               al.ID,
		Nombre:           al.Name,
		Artistas:         artistNames(al.Artists),
		FechaLanzamiento: al.ReleaseDate,
		TotalTracks:      al.TotalTracks,
		Imagen:           mapper.FirstImage(al.Images),
		Generos:          mapper.Strings(al.Genres),
		Sello:            al.Label,
		Popularidad:      al.Popularity,
		SpotifyURL:       al.ExternalURLs.Spotify,
		Tracks: mapper.Map(al.Tracks.Items, func(t track) TrackDisco {
			return TrackDisco{
				Numero:     t.TrackNumber,
				Nombre:     t.Name,
				Duracion:   mapper.FormatDuration(t.DurationMs),
				Preview:    t.PreviewURL,
				SpotifyURL: t.ExternalURLs.Spotify,
			}
		}),
	}, nil
}

// Recommendations returns tracks seeded by a comma-separated genre list.
func (s *Service) Recommendations(ctx context.Context, genres string, limit int) ([]Recomendacion, error) {
	params := s.marketQuery()
	params.Set("seed_genres", genres)
	params.Set("limit", strconv.Itoa(limit))

	var res recommendationsResponse
	if err := s.get(ctx, "/recommendations", params, &res); err != nil {
		return nil, err
	}
	return mapper.Map(res.Tracks, func(t track) Recomendacion {
		return Recomendacion{
			ID:         t.ID,
			Nombre:     t.Name,
			Artistas:   artistNames(t.Artists),
			Album:      t.Album.Name,
			Imagen:     mapper.FirstImage(t.Album.Images),
			PreviewURL: t.PreviewURL,
			SpotifyURL: t.ExternalURLs.Spotify,
		}
	}), nil
}

// Genres returns the available recommendation genre seeds, cached for the
// configured TTL.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	return s.genres.GetOrLoad(ctx, "seeds", func(ctx context.Context) ([]string, error) {
		var res genreSeedsResponse
		if err := s.get(ctx, "/recommendations/available-genre-seeds", nil, &res); err != nil {
			return nil, err
		}
		return mapper.Strings(res.Genres), nil
	})
}

func validType(kind string) bool {
	for _, t := range SearchTypes {
		if t == kind {
			return true
		}
	}
	return false
}

func nonNil[T any](items []*T) []*T {
	return mapper.Filter(items, func(it *T) bool { return it != nil })
}

func artistNames(artists []simpleArtist) []string {
	return mapper.Map(artists, func(a simpleArtist) string { return a.Name })
}

func toCancion(t *track) Cancion {
	c := Cancion{
		ID:          t.ID,
		Nombre:      t.Name,
		Artistas:    artistNames(t.Artists),
		Album:       t.Album.Name,
		Imagen:      mapper.FirstImage(t.Album.Images),
		DuracionMs:  t.DurationMs,
		Duracion:    mapper.FormatDuration(t.DurationMs),
		PreviewURL:  t.PreviewURL,
		SpotifyURL:  t.ExternalURLs.Spotify,
		Popularidad: t.Popularity,
		Explicito:   t.Explicit,
	}
	if len(t.Artists) > 0 {
		c.ArtistaPrincipal = t.Artists[0].Name
	}
	return c
}

func toArtista(a *artist) Artista {
	return Artista{
		ID:          a.ID,
		Nombre:      a.Name,
		Generos:     mapper.Strings(a.Genres),
		Popularidad: a.Popularity,
		Imagen:      mapper.FirstImage(a.Images),
		Seguidores:  a.Followers.Total,
		SpotifyURL:  a.ExternalURLs.Spotify,
	}
}

func toAlbum(a *simpleAlbum) Album {
	return Album{
		ID:               a.ID,
		Nombre:           a.Name,
		Artistas:         artistNames(a.Artists),
		FechaLanzamiento: a.ReleaseDate,
		TotalTracks:      a.TotalTracks,
		Imagen:           mapper.FirstImage(a.Images),
		SpotifyURL:       a.ExternalURLs.Spotify,
		Tipo:             a.AlbumType,
	}
}

func toPlaylist(p *playlist) Playlist {
	return Playlist{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Owner:       p.Owner.DisplayName,
		TotalTracks: p.Tracks.Total,
		Imagen:      mapper.FirstImage(p.Images),
		SpotifyURL:  p.ExternalURLs.Spotify,
		Publica:     p.Public,
	}
}
