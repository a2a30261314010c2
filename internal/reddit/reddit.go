// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package reddit implements the reddit backend over Reddit's public JSON
// listings. Reddit throttles anonymous clients, so outbound calls carry a
// descriptive User-Agent and go through a per-minute rate limiter.
package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/mapper"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Defaults and bounds for listing requests.
const (
	DefaultSubreddit = "python"
	DefaultFilter    = "hot"
	DefaultLimit     = 10
	MaxLimit         = 100

	permalinkBase = "https://reddit.com"
	dateLayout    = "2006-01-02 15:04"
)

// ErrInvalidFilter is returned for a filtro outside hot, new and top.
var ErrInvalidFilter = errors.New("invalid listing filter")

var filters = map[string]bool{"hot": true, "new": true, "top": true}

// Service reads Reddit listings.
type Service struct {
	client *upstream.Client
}

// NewService creates the service.
func NewService(cfg config.RedditConfig, up config.UpstreamConfig) *Service {
	c := upstream.Defaults("reddit", cfg.BaseURL, up)
	c.UserAgent = cfg.UserAgent
	c.RequestsPerMinute = cfg.RequestsPerMinute
	return &Service{client: upstream.New(c)}
}

// Posts lists a subreddit sorted by filter.
func (s *Service) Posts(ctx context.Context, subreddit, filter string, limit int) (*Listado, error) {
	if !filters[filter] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	path := "/r/" + url.PathEscape(subreddit) + "/" + filter + ".json"
	var l listing
	if err := s.client.Get(ctx, path, limitQuery(limit), &l); err != nil {
		return nil, err
	}
	return &Listado{Subreddit: subreddit, Posts: mapper.Map(l.links(), toPost)}, nil
}

// Search runs a site-wide search.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Resultado, error) {
	params := limitQuery(limit)
	params.Set("q", query)

	var l listing
	if err := s.client.Get(ctx, "/search.json", params, &l); err != nil {
		return nil, err
	}
	return mapper.Map(l.links(), func(p link) Resultado {
		return Resultado{
			Titulo:      p.Title,
			Subreddit:   p.Subreddit,
			Autor:       p.Author,
			Puntos:      p.Score,
			Comentarios: p.NumComments,
			URL:         permalinkBase + p.Permalink,
			Fecha:       formatCreated(p.CreatedUTC),
		}
	}), nil
}

func limitQuery(limit int) url.Values {
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

func toPost(p link) Post {
	return Post{
		Titulo:      p.Title,
		Autor:       p.Author,
		Puntos:      p.Score,
		Comentarios: p.NumComments,
		URL:         permalinkBase + p.Permalink,
		URLCompleta: p.URL,
		Fecha:       formatCreated(p.CreatedUTC),
		Thumbnail:   thumbnail(p.Thumbnail),
		Selftext:    mapper.Truncate(p.Selftext, mapper.ExcerptBudget),
	}
}

// formatCreated renders created_utc in UTC so output does not depend on
// the host timezone.
func formatCreated(sec float64) string {
	return time.Unix(int64(sec), 0).UTC().Format(dateLayout)
}

// thumbnail drops Reddit's placeholder values.
func thumbnail(t *string) *string {
	if t == nil {
		return nil
	}
	switch *t {
	case "", "self", "default":
		return nil
	}
	return t
}
