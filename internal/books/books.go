// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package books implements the libros backend over Google Books v1.
package books

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/mapper"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Search limits.
const (
	DefaultMaxResults = 20
	MaxMaxResults     = 40
)

// Service calls Google Books.
type Service struct {
	client       *upstream.Client
	langRestrict string
}

// NewService creates the service. The API key is optional.
func NewService(cfg config.BooksConfig, up config.UpstreamConfig) *Service {
	c := upstream.Defaults("googlebooks", cfg.BaseURL, up)
	if cfg.APIKey != "" {
		c.Query = url.Values{"key": {cfg.APIKey}}
	}
	return &Service{client: upstream.New(c), langRestrict: cfg.LangRestrict}
}

// Search finds books matching query, optionally within a subject category.
// maxResults is clamped to [1, 40].
func (s *Service) Search(ctx context.Context, query, category string, maxResults int) ([]Libro, error) {
	if category != "" {
		query += "+subject:" + category
	}

	params := url.Values{
		"q":          {query},
		"maxResults": {strconv.Itoa(clampMax(maxResults))},
		"printType":  {"books"},
	}
	if s.langRestrict != "" {
		params.Set("langRestrict", s.langRestrict)
	}

	var list volumeList
	if err := s.client.Get(ctx, "/volumes", params, &list); err != nil {
		return nil, err
	}
	return mapper.Map(list.Items, toLibro), nil
}

// Detail returns one volume by id.
func (s *Service) Detail(ctx context.Context, id string) (*LibroDetalle, error) {
	var v volume
	if err := s.client.Get(ctx, "/volumes/"+url.PathEscape(id), nil, &v); err != nil {
		return nil, err
	}
	return toDetalle(&v), nil
}

func clampMax(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxMaxResults {
		return MaxMaxResults
	}
	return n
}

func toLibro(v volume) Libro {
	info := v.VolumeInfo
	l := Libro{
		ID:               v.ID,
		Titulo:           mapper.StringOr(info.Title, "Sin título"),
		Autores:          mapper.Strings(info.Authors),
		Descripcion:      mapper.Truncate(mapper.String(info.Description), mapper.SummaryBudget),
		Editorial:        mapper.String(info.Publisher),
		FechaPublicacion: mapper.String(info.PublishedDate),
		Categorias:       mapper.Strings(info.Categories),
		PreviewLink:      mapper.String(info.PreviewLink),
		Disponible:       v.SaleInfo.Saleability == saleabilityForSale,
	}
	if info.PageCount != nil {
		l.Paginas = *info.PageCount
	}
	if info.ImageLinks != nil {
		l.Imagen = mapper.String(info.ImageLinks.Thumbnail)
	}
	if info.AverageRating != nil {
		l.Rating = *info.AverageRating
	}
	if lp := v.SaleInfo.ListPrice; lp != nil {
		if lp.Amount != nil {
			l.Precio = *lp.Amount
		}
		l.Moneda = mapper.String(lp.CurrencyCode)
	}
	return l
}

func toDetalle(v *volume) *LibroDetalle {
	info := v.VolumeInfo
	d := &LibroDetalle{
		ID:               v.ID,
		Titulo:           info.Title,
		Subtitulo:        info.Subtitle,
		Autores:          mapper.Strings(info.Authors),
		Descripcion:      info.Description,
		Editorial:        info.Publisher,
		FechaPublicacion: info.PublishedDate,
		Paginas:          info.PageCount,
		Categorias:       mapper.Strings(info.Categories),
		Idioma:           info.Language,
		PreviewLink:      info.PreviewLink,
		Rating:           info.AverageRating,
		RatingsCount:     info.RatingsCount,
		Comprable:        v.SaleInfo.Saleability == saleabilityForSale,
		LinkCompra:       v.SaleInfo.BuyLink,
	}
	if links := info.ImageLinks; links != nil {
		if links.Large != nil && *links.Large != "" {
			d.ImagenGrande = links.Large
		} else {
			d.ImagenGrande = links.Thumbnail
		}
	}
	if lp := v.SaleInfo.ListPrice; lp != nil {
		d.Precio = lp.Amount
		d.Moneda = lp.CurrencyCode
	}
	return d
}
