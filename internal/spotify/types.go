// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package spotify

import "github.com/tomtom215/pasarela/internal/mapper"

// Cancion is a track search result.
type Cancion struct {
	ID               string   `json:"id"`
	Nombre           string   `json:"nombre"`
	Artistas         []string `json:"artistas"`
	ArtistaPrincipal string   `json:"artista_principal"`
	Album            string   `json:"album"`
	Imagen           *string  `json:"imagen"`
	DuracionMs       int      `json:"duracion_ms"`
	Duracion         string   `json:"duracion"`
	PreviewURL       *string  `json:"preview_url"`
	SpotifyURL       string   `json:"spotify_url"`
	Popularidad      int      `json:"popularidad"`
	Explicito        bool     `json:"explicito"`
}

// Artista is an artist search result.
type Artista struct {
	ID          string   `json:"id"`
	Nombre      string   `json:"nombre"`
	Generos     []string `json:"generos"`
	Popularidad int      `json:"popularidad"`
	Imagen      *string  `json:"imagen"`
	Seguidores  int      `json:"seguidores"`
	SpotifyURL  string   `json:"spotify_url"`
}

// Album is an album search result.
type Album struct {
	ID               string   `json:"id"`
	Nombre           string   `json:"nombre"`
	Artistas         []string `json:"artistas"`
	FechaLanzamiento string   `json:"fecha_lanzamiento"`
	TotalTracks      int      `json:"total_tracks"`
	Imagen           *string  `json:"imagen"`
	SpotifyURL       string   `json:"spotify_url"`
	Tipo             string   `json:"tipo"`
}

// Playlist is a playlist search result.
type Playlist struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Owner       string  `json:"owner"`
	TotalTracks int     `json:"total_tracks"`
	Imagen      *string `json:"imagen"`
	SpotifyURL  string  `json:"spotify_url"`
	Publica     *bool   `json:"publica"`
}

// ArtistaDetalle is the response of GET /api/spotify/artista/{id}.
type ArtistaDetalle struct {
	ID                   string               `json:"id"`
	Nombre               string               `json:"nombre"`
	Generos              []string             `json:"generos"`
	Popularidad          int                  `json:"popularidad"`
	Seguidores           int                  `json:"seguidores"`
	Imagen               *string              `json:"imagen"`
	SpotifyURL           string               `json:"spotify_url"`
	TopCanciones         []TopCancion         `json:"top_canciones"`
	Albums               []AlbumArtista       `json:"albums"`
	ArtistasRelacionados []ArtistaRelacionado `json:"artistas_relacionados"`
}

// TopCancion is one of an artist's top tracks.
type TopCancion struct {
	ID         string  `json:"id"`
	Nombre     string  `json:"nombre"`
	Album      string  `json:"album"`
	Preview    *string `json:"preview"`
	Imagen     *string `json:"imagen"`
	Duracion   string  `json:"duracion"`
	SpotifyURL string  `json:"spotify_url"`
}

// AlbumArtista is one album in an artist's discography.
type AlbumArtista struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Fecha       string  `json:"fecha"`
	Imagen      *string `json:"imagen"`
	TotalTracks int     `json:"total_tracks"`
	Tipo        string  `json:"tipo"`
}

// ArtistaRelacionado is a related artist.
type ArtistaRelacionado struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Imagen      *string `json:"imagen"`
	Popularidad int     `json:"popularidad"`
}

// AlbumDetalle is the response of GET /api/spotify/album/{id}.
type AlbumDetalle struct {
	ID               string       `json:"id"`
	Nombre           string       `json:"nombre"`
	Artistas         []string     `json:"artistas"`
	FechaLanzamiento string       `json:"fecha_lanzamiento"`
	TotalTracks      int          `json:"total_tracks"`
	Imagen           *string      `json:"imagen"`
	Generos          []string     `json:"generos"`
	Sello            string       `json:"sello"`
	Popularidad      int          `json:"popularidad"`
	SpotifyURL       string       `json:"spotify_url"`
	Tracks           []TrackDisco `json:"tracks"`
}

// TrackDisco is one track of an album.
type TrackDisco struct {
	Numero     int     `json:"numero"`
	Nombre     string  `json:"nombre"`
	Duracion   string  `json:"duracion"`
	Preview    *string `json:"preview"`
	SpotifyURL string  `json:"spotify_url"`
}

// Recomendacion is one recommended track.
type Recomendacion struct {
	ID         string   `json:"id"`
	Nombre     string   `json:"nombre"`
	Artistas   []string `json:"artistas"`
	Album      string   `json:"album"`
	Imagen     *string  `json:"imagen"`
	PreviewURL *string  `json:"preview_url"`
	SpotifyURL string   `json:"spotify_url"`
}

// Upstream documents.

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type simpleArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type artist struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Genres       []string       `json:"genres"`
	Popularity   int            `json:"popularity"`
	Images       []mapper.Image `json:"images"`
	ExternalURLs externalURLs   `json:"external_urls"`
	Followers    struct {
		Total int `json:"total"`
	} `json:"followers"`
}

type simpleAlbum struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	AlbumType    string         `json:"album_type"`
	ReleaseDate  string         `json:"release_date"`
	TotalTracks  int            `json:"total_tracks"`
	Images       []mapper.Image `json:"images"`
	Artists      []simpleArtist `json:"artists"`
	ExternalURLs externalURLs   `json:"external_urls"`
}

type track struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	TrackNumber  int            `json:"track_number"`
	DurationMs   int            `json:"duration_ms"`
	PreviewURL   *string        `json:"preview_url"`
	Popularity   int            `json:"popularity"`
	Explicit     bool           `json:"explicit"`
	Artists      []simpleArtist `json:"artists"`
	Album        simpleAlbum    `json:"album"`
	ExternalURLs externalURLs   `json:"external_urls"`
}

type playlist struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Public       *bool          `json:"public"`
	Images       []mapper.Image `json:"images"`
	ExternalURLs externalURLs   `json:"external_urls"`
	Owner        struct {
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Tracks struct {
		Total int `json:"total"`
	} `json:"tracks"`
}

type page[T any] struct {
	Items []T `json:"items"`
}

// searchResponse holds whichever collection matches the requested type.
// Spotify may return null entries inside items.
type searchResponse struct {
	Tracks    page[*track]       `json:"tracks"`
	Artists   page[*artist]      `json:"artists"`
	Albums    page[*simpleAlbum] `json:"albums"`
	Playlists page[*playlist]    `json:"playlists"`
}

type fullAlbum struct {
	simpleAlbum
	Genres     []string    `json:"genres"`
	Label      string      `json:"label"`
	Popularity int         `json:"popularity"`
	Tracks     page[track] `json:"tracks"`
}

type topTracksResponse struct {
	Tracks []track `json:"tracks"`
}

type relatedResponse struct {
	Artists []artist `json:"artists"`
}

type recommendationsResponse struct {
	Tracks []track `json:"tracks"`
}

type genreSeedsResponse struct {
	Genres []string `json:"genres"`
}
