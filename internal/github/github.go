// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package github implements the GitHub backend: user profile statistics,
// trending repositories of the last week and repository search.
package github

import (
	"context"
	"net/url"
	"time"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/mapper"
	"github.com/tomtom215/pasarela/internal/upstream"
)

const (
	topLanguages  = 3
	featuredRepos = 5
	trendingSize  = 10
	searchSize    = 15
	trendingDays  = 7
)

// Service calls the GitHub REST API.
type Service struct {
	client *upstream.Client
	now    func() time.Time
}

// NewService creates the service. The token is optional.
func NewService(cfg config.GitHubConfig, up config.UpstreamConfig) *Service {
	c := upstream.Defaults("github", cfg.BaseURL, up)
	c.Headers = map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}
	if cfg.Token != "" {
		c.Headers["Authorization"] = "Bearer " + cfg.Token
	}
	return &Service{client: upstream.New(c), now: time.Now}
}

// User fetches the profile and the public repositories concurrently and
// derives the language and star statistics.
func (s *Service) User(ctx context.Context, username string) (*Usuario, error) {
	var user ghUser
	var repos []ghRepo

	escaped := url.PathEscape(username)
	plan := upstream.NewPlan(
		upstream.Step{
			Name: "user",
			Run: func(ctx context.Context) error {
				return s.client.Get(ctx, "/users/"+escaped, nil, &user)
			},
		},
		upstream.Step{
			Name: "repos",
			Run: func(ctx context.Context) error {
				return s.client.Get(ctx, "/users/"+escaped+"/repos", url.Values{
					"per_page": {"100"},
					"sort":     {"updated"},
				}, &repos)
			},
		},
	)
	if err := plan.Run(ctx); err != nil {
		return nil, err
	}

	return toUsuario(&user, repos), nil
}

func toUsuario(u *ghUser, repos []ghRepo) *Usuario {
	languages := mapper.Map(repos, func(r ghRepo) string { return mapper.String(r.Language) })

	top := mapper.Map(mapper.TopNByCount(languages, topLanguages), func(c mapper.Count) TopLenguaje {
		return TopLenguaje{Lenguaje: c.Key, Repos: c.Count}
	})

	featured := mapper.Map(
		mapper.TopK(repos, featuredRepos, func(r ghRepo) float64 { return float64(r.StargazersCount) }),
		func(r ghRepo) RepoDestacado {
			return RepoDestacado{
				Nombre:      r.Name,
				Descripcion: r.Description,
				Stars:       r.StargazersCount,
				Forks:       r.ForksCount,
				Lenguaje:    r.Language,
				URL:         r.HTMLURL,
				Actualizado: mapper.DatePrefix(r.UpdatedAt),
			}
		})

	return &Usuario{
		Nombre:       mapper.StringOr(u.Name, u.Login),
		Username:     u.Login,
		Bio:          u.Bio,
		Avatar:       u.AvatarURL,
		Repositorios: u.PublicRepos,
		Seguidores:   u.Followers,
		Siguiendo:    u.Following,
		Ubicacion:    u.Location,
		Empresa:      u.Company,
		Blog:         u.Blog,
		Twitter:      u.TwitterUsername,
		Creado:       mapper.DatePrefix(u.CreatedAt),

		TotalStars:      mapper.Sum(repos, func(r ghRepo) int { return r.StargazersCount }),
		TotalForks:      mapper.Sum(repos, func(r ghRepo) int { return r.ForksCount }),
		Lenguajes:       mapper.CountMap(languages),
		TopLenguajes:    top,
		ReposDestacados: featured,
	}
}

// Trending returns the most starred repositories created in the last week.
func (s *Service) Trending(ctx context.Context) ([]RepoTrending, error) {
	since := s.now().AddDate(0, 0, -trendingDays).Format("2006-01-02")

	var result ghSearch
	err := s.client.Get(ctx, "/search/repositories", url.Values{
		"q":        {"created:>" + since},
		"sort":     {"stars"},
		"order":    {"desc"},
		"per_page": {"10"},
	}, &result)
	if err != nil {
		return nil, err
	}

	return mapper.Map(mapper.First(result.Items, trendingSize), func(r ghRepo) RepoTrending {
		return RepoTrending{
			Nombre:      r.FullName,
			Descripcion: r.Description,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Lenguaje:    r.Language,
			URL:         r.HTMLURL,
			Propietario: r.Owner.Login,
			Avatar:      r.Owner.AvatarURL,
		}
	}), nil
}

// Search finds repositories matching query, optionally restricted to a
// language.
func (s *Service) Search(ctx context.Context, query, language string) ([]RepoBusqueda, error) {
	if language != "" {
		query += " language:" + language
	}

	var result ghSearch
	err := s.client.Get(ctx, "/search/repositories", url.Values{
		"q":        {query},
		"sort":     {"stars"},
		"order":    {"desc"},
		"per_page": {"15"},
	}, &result)
	if err != nil {
		return nil, err
	}

	return mapper.Map(mapper.First(result.Items, searchSize), func(r ghRepo) RepoBusqueda {
		return RepoBusqueda{
			Nombre:      r.FullName,
			Descripcion: r.Description,
			Stars:       r.StargazersCount,
			Lenguaje:    r.Language,
			URL:         r.HTMLURL,
		}
	}), nil
}
