// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package weather implements the clima backend: the caller (or a given IP)
// is geolocated with ipapi and the current weather for those coordinates is
// read from OpenWeatherMap.
package weather

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// DefaultCity is reported when ipapi cannot name the city.
const DefaultCity = "Ciudad desconocida"

// Clima is the response of GET /api/clima.
type Clima struct {
	Ciudad      string  `json:"ciudad"`
	Pais        string  `json:"pais"`
	Temperatura float64 `json:"temperatura"`
	Descripcion string  `json:"descripcion"`
	Humedad     int     `json:"humedad"`
	Viento      float64 `json:"viento"`
	Icono       string  `json:"icono"`
}

type geoResponse struct {
	City        *string `json:"city"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`

	// ipapi reports lookup failures with 200 and these fields.
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

type weatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Service performs the two dependent upstream calls.
type Service struct {
	geo   *upstream.Client
	owm   *upstream.Client
	units string
	lang  string
}

// NewService creates the service from configuration.
func NewService(cfg config.WeatherConfig, up config.UpstreamConfig) *Service {
	owmCfg := upstream.Defaults("openweathermap", cfg.WeatherURL, up)
	owmCfg.Query = url.Values{"appid": {cfg.APIKey}}

	return &Service{
		geo:   upstream.New(upstream.Defaults("ipapi", cfg.GeoURL, up)),
		owm:   upstream.New(owmCfg),
		units: cfg.Units,
		lang:  cfg.Lang,
	}
}

// Current geolocates ip (the server's egress address when empty) and returns
// the current weather there. A failed geolocation aborts the weather call.
func (s *Service) Current(ctx context.Context, ip string) (*Clima, error) {
	var geo geoResponse
	var wx weatherResponse

	geoPath := "/json/"
	if ip != "" {
		geoPath = "/" + url.PathEscape(ip) + "/json/"
	}

	plan := upstream.NewPlan(
		upstream.Step{
			Name: "geo",
			Run: func(ctx context.Context) error {
				if err := s.geo.Get(ctx, geoPath, nil, &geo); err != nil {
					return err
				}
				if geo.Error {
					return &upstream.UpstreamError{Upstream: "ipapi", Err: errors.New(geo.Reason)}
				}
				return nil
			},
		},
		upstream.Step{
			Name:      "weather",
			DependsOn: []string{"geo"},
			Run: func(ctx context.Context) error {
				return s.owm.Get(ctx, "/weather", url.Values{
					"lat":   {strconv.FormatFloat(geo.Latitude, 'f', -1, 64)},
					"lon":   {strconv.FormatFloat(geo.Longitude, 'f', -1, 64)},
					"units": {s.units},
					"lang":  {s.lang},
				}, &wx)
			},
		},
	)
	if err := plan.Run(ctx); err != nil {
		return nil, err
	}

	return toClima(&geo, &wx), nil
}

func toClima(geo *geoResponse, wx *weatherResponse) *Clima {
	c := &Clima{
		Ciudad:      DefaultCity,
		Pais:        geo.CountryName,
		Temperatura: wx.Main.Temp,
		Humedad:     wx.Main.Humidity,
		Viento:      wx.Wind.Speed,
	}
	if geo.City != nil && *geo.City != "" {
		c.Ciudad = *geo.City
	}
	if len(wx.Weather) > 0 {
		c.Descripcion = wx.Weather[0].Description
		c.Icono = wx.Weather[0].Icon
	}
	return c
}
