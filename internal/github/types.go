// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package github

// Usuario is the response of GET /api/github/usuario/{username}: the
// profile plus statistics derived from the user's public repositories.
type Usuario struct {
	Nombre       string  `json:"nombre"`
	Username     string  `json:"username"`
	Bio          *string `json:"bio"`
	Avatar       string  `json:"avatar"`
	Repositorios int     `json:"repositorios"`
	Seguidores   int     `json:"seguidores"`
	Siguiendo    int     `json:"siguiendo"`
	Ubicacion    *string `json:"ubicacion"`
	Empresa      *string `json:"empresa"`
	Blog         *string `json:"blog"`
	Twitter      *string `json:"twitter"`
	Creado       string  `json:"creado"`

	TotalStars      int             `json:"total_stars"`
	TotalForks      int             `json:"total_forks"`
	Lenguajes       map[string]int  `json:"lenguajes"`
	TopLenguajes    []TopLenguaje   `json:"top_lenguajes"`
	ReposDestacados []RepoDestacado `json:"repos_destacados"`
}

// TopLenguaje is a language and the number of repositories using it.
type TopLenguaje struct {
	Lenguaje string `json:"lenguaje"`
	Repos    int    `json:"repos"`
}

// RepoDestacado is one of the user's most starred repositories.
type RepoDestacado struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	Lenguaje    *string `json:"lenguaje"`
	URL         string  `json:"url"`
	Actualizado string  `json:"actualizado"`
}

// RepoTrending is one entry of GET /api/github/trending.
type RepoTrending struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	Lenguaje    *string `json:"lenguaje"`
	URL         string  `json:"url"`
	Propietario string  `json:"propietario"`
	Avatar      string  `json:"avatar"`
}

// RepoBusqueda is one entry of GET /api/github/buscar/repos.
type RepoBusqueda struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Stars       int     `json:"stars"`
	Lenguaje    *string `json:"lenguaje"`
	URL         string  `json:"url"`
}

type ghUser struct {
	Login           string  `json:"login"`
	Name            *string `json:"name"`
	Bio             *string `json:"bio"`
	AvatarURL       string  `json:"avatar_url"`
	PublicRepos     int     `json:"public_repos"`
	Followers       int     `json:"followers"`
	Following       int     `json:"following"`
	Location        *string `json:"location"`
	Company         *string `json:"company"`
	Blog            *string `json:"blog"`
	TwitterUsername *string `json:"twitter_username"`
	CreatedAt       string  `json:"created_at"`
}

type ghRepo struct {
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Language        *string `json:"language"`
	HTMLURL         string  `json:"html_url"`
	UpdatedAt       string  `json:"updated_at"`
	Owner           struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

type ghSearch struct {
	TotalCount int      `json:"total_count"`
	Items      []ghRepo `json:"items"`
}
