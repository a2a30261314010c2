// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package movies

// Pelicula is one result of GET /api/peliculas/buscar.
type Pelicula struct {
	ID             int64   `json:"id"`
	Titulo         string  `json:"titulo"`
	TituloOriginal string  `json:"titulo_original"`
	Descripcion    string  `json:"descripcion"`
	Poster         *string `json:"poster"`
	Backdrop       *string `json:"backdrop"`
	FechaEstreno   string  `json:"fecha_estreno"`
	Popularidad    float64 `json:"popularidad"`
	Calificacion   float64 `json:"calificacion"`
	Votos          int     `json:"votos"`
}

// Busqueda is the paginated search response.
type Busqueda struct {
	Peliculas       []Pelicula `json:"peliculas"`
	Pagina          int        `json:"pagina"`
	TotalPaginas    int        `json:"total_paginas"`
	TotalResultados int        `json:"total_resultados"`
}

// PeliculaPopular is one entry of GET /api/peliculas/populares.
type PeliculaPopular struct {
	ID           int64   `json:"id"`
	Titulo       string  `json:"titulo"`
	Poster       *string `json:"poster"`
	Calificacion float64 `json:"calificacion"`
	FechaEstreno string  `json:"fecha_estreno"`
}

// Populares is the paginated popular-movies response.
type Populares struct {
	Peliculas    []PeliculaPopular `json:"peliculas"`
	Pagina       int               `json:"pagina"`
	TotalPaginas int               `json:"total_paginas"`
}

// PeliculaBreve is the compact record used for now-playing, similar and
// recommended titles.
type PeliculaBreve struct {
	ID           int64   `json:"id"`
	Titulo       string  `json:"titulo"`
	Poster       *string `json:"poster"`
	Calificacion float64 `json:"calificacion"`
}

// Actor is one cast member.
type Actor struct {
	Nombre    string  `json:"nombre"`
	Personaje string  `json:"personaje"`
	Foto      *string `json:"foto"`
	Orden     int     `json:"orden"`
}

// Trailer is a YouTube trailer or teaser.
type Trailer struct {
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
	Sitio  string `json:"sitio"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

// PeliculaDetalle is the response of GET /api/peliculas/{id}, assembled from
// a single append_to_response call.
type PeliculaDetalle struct {
	ID              int64           `json:"id"`
	Titulo          string          `json:"titulo"`
	TituloOriginal  string          `json:"titulo_original"`
	Descripcion     string          `json:"descripcion"`
	Tagline         string          `json:"tagline"`
	Poster          *string         `json:"poster"`
	Backdrop        *string         `json:"backdrop"`
	FechaEstreno    string          `json:"fecha_estreno"`
	Duracion        int             `json:"duracion"`
	Presupuesto     int64           `json:"presupuesto"`
	Ingresos        int64           `json:"ingresos"`
	Calificacion    float64         `json:"calificacion"`
	Votos           int             `json:"votos"`
	Popularidad     float64         `json:"popularidad"`
	Generos         []string        `json:"generos"`
	Productoras     []string        `json:"productoras"`
	Paises          []string        `json:"paises"`
	Idiomas         []string        `json:"idiomas"`
	Director        *string         `json:"director"`
	Guionistas      []string        `json:"guionistas"`
	Reparto         []Actor         `json:"reparto"`
	Trailers        []Trailer       `json:"trailers"`
	Similares       []PeliculaBreve `json:"similares"`
	Recomendaciones []PeliculaBreve `json:"recomendaciones"`
	Homepage        string          `json:"homepage"`
	IMDbID          string          `json:"imdb_id"`
}

// Serie is one result of GET /api/series/buscar.
type Serie struct {
	ID           int64   `json:"id"`
	Nombre       string  `json:"nombre"`
	Descripcion  string  `json:"descripcion"`
	Poster       *string `json:"poster"`
	PrimeraFecha string  `json:"primera_fecha"`
	Calificacion float64 `json:"calificacion"`
}

// Genero is a TMDB movie genre, passed through as-is.
type Genero struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Upstream documents.

type movieResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
}

type moviePage struct {
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
	Results      []movieResult `json:"results"`
}

type tvResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

type tvPage struct {
	Results []tvResult `json:"results"`
}

type named struct {
	Name string `json:"name"`
}

type castMember struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       *int    `json:"order"`
}

type crewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type video struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site"`
	Key  string `json:"key"`
}

type movieDetail struct {
	movieResult
	Tagline             string  `json:"tagline"`
	Runtime             int     `json:"runtime"`
	Budget              int64   `json:"budget"`
	Revenue             int64   `json:"revenue"`
	Homepage            string  `json:"homepage"`
	IMDbID              string  `json:"imdb_id"`
	Genres              []named `json:"genres"`
	ProductionCompanies []named `json:"production_companies"`
	ProductionCountries []named `json:"production_countries"`
	SpokenLanguages     []struct {
		EnglishName string `json:"english_name"`
	} `json:"spoken_languages"`
	Credits struct {
		Cast []castMember `json:"cast"`
		Crew []crewMember `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []video `json:"results"`
	} `json:"videos"`
	Similar         moviePage `json:"similar"`
	Recommendations moviePage `json:"recommendations"`
}

type genreList struct {
	Genres []Genero `json:"genres"`
}
