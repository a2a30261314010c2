// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package currency implements the divisas backend on top of ExchangeRate-API
// v6: latest rates for a base currency, pair conversion and a static table of
// common currencies.
package currency

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Defaults for /api/divisas/convertir.
const (
	DefaultFrom = "USD"
	DefaultTo   = "MXN"
)

// Tasas is the response of GET /api/divisas/tasas/{base}.
type Tasas struct {
	MonedaBase          string             `json:"moneda_base"`
	Tasas               map[string]float64 `json:"tasas"`
	UltimaActualizacion string             `json:"ultima_actualizacion"`
}

// Conversion is the response of GET /api/divisas/convertir.
type Conversion struct {
	MontoOriginal       float64 `json:"monto_original"`
	MonedaOrigen        string  `json:"moneda_origen"`
	MonedaDestino       string  `json:"moneda_destino"`
	MontoConvertido     float64 `json:"monto_convertido"`
	TasaConversion      float64 `json:"tasa_conversion"`
	UltimaActualizacion string  `json:"ultima_actualizacion"`
}

// Moneda describes one entry of the static currency table.
type Moneda struct {
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
	Bandera string `json:"bandera"`
}

// Monedas is the static table served by GET /api/divisas/monedas.
var Monedas = map[string]Moneda{
	"USD": {Nombre: "Dólar Estadounidense", Simbolo: "$", Bandera: "🇺🇸"},
	"EUR": {Nombre: "Euro", Simbolo: "€", Bandera: "🇪🇺"},
	"GBP": {Nombre: "Libra Esterlina", Simbolo: "£", Bandera: "🇬🇧"},
	"JPY": {Nombre: "Yen Japonés", Simbolo: "¥", Bandera: "🇯🇵"},
	"MXN": {Nombre: "Peso Mexicano", Simbolo: "$", Bandera: "🇲🇽"},
	"CAD": {Nombre: "Dólar Canadiense", Simbolo: "$", Bandera: "🇨🇦"},
	"AUD": {Nombre: "Dólar Australiano", Simbolo: "$", Bandera: "🇦🇺"},
	"CHF": {Nombre: "Franco Suizo", Simbolo: "Fr", Bandera: "🇨🇭"},
	"CNY": {Nombre: "Yuan Chino", Simbolo: "¥", Bandera: "🇨🇳"},
	"BRL": {Nombre: "Real Brasileño", Simbolo: "R$", Bandera: "🇧🇷"},
	"ARS": {Nombre: "Peso Argentino", Simbolo: "$", Bandera: "🇦🇷"},
	"COP": {Nombre: "Peso Colombiano", Simbolo: "$", Bandera: "🇨🇴"},
	"CLP": {Nombre: "Peso Chileno", Simbolo: "$", Bandera: "🇨🇱"},
}

// resultSuccess is the "result" value of a successful ExchangeRate-API call.
const resultSuccess = "success"

type latestResponse struct {
	Result            string             `json:"result"`
	ErrorType         string             `json:"error-type"`
	BaseCode          string             `json:"base_code"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
}

type pairResponse struct {
	Result            string  `json:"result"`
	ErrorType         string  `json:"error-type"`
	BaseCode          string  `json:"base_code"`
	TargetCode        string  `json:"target_code"`
	TimeLastUpdateUTC string  `json:"time_last_update_utc"`
	ConversionRate    float64 `json:"conversion_rate"`
	ConversionResult  float64 `json:"conversion_result"`
}

// ErrRejected is returned when ExchangeRate-API refuses a request, either
// with result != "success" or a 4xx status (unknown code, bad key).
type ErrRejected struct {
	ErrorType string
}

func (e *ErrRejected) Error() string {
	if e.ErrorType == "" {
		return "exchangerate: solicitud rechazada"
	}
	return "exchangerate: " + e.ErrorType
}

// Service calls ExchangeRate-API.
type Service struct {
	client *upstream.Client
	apiKey string
}

// NewService creates the service from configuration.
func NewService(cfg config.CurrencyConfig, up config.UpstreamConfig) *Service {
	return &Service{
		client: upstream.New(upstream.Defaults("exchangerate", cfg.BaseURL, up)),
		apiKey: cfg.APIKey,
	}
}

// Latest returns the latest rates for base (case-insensitive).
func (s *Service) Latest(ctx context.Context, base string) (*Tasas, error) {
	var resp latestResponse
	path := "/" + url.PathEscape(s.apiKey) + "/latest/" + url.PathEscape(strings.ToUpper(base))
	if err := s.client.Get(ctx, path, nil, &resp); err != nil {
		return nil, rejected(err)
	}
	if resp.Result != resultSuccess {
		return nil, &ErrRejected{ErrorType: resp.ErrorType}
	}

	rates := resp.ConversionRates
	if rates == nil {
		rates = map[string]float64{}
	}
	return &Tasas{
		MonedaBase:          resp.BaseCode,
		Tasas:               rates,
		UltimaActualizacion: resp.TimeLastUpdateUTC,
	}, nil
}

// Convert converts amount from one currency to another (case-insensitive).
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	var resp pairResponse
	path := "/" + url.PathEscape(s.apiKey) + "/pair/" + url.PathEscape(from) + "/" + url.PathEscape(to) + "/" +
		strconv.FormatFloat(amount, 'f', -1, 64)
	if err := s.client.Get(ctx, path, nil, &resp); err != nil {
		return nil, rejected(err)
	}
	if resp.Result != resultSuccess {
		return nil, &ErrRejected{ErrorType: resp.ErrorType}
	}

	return &Conversion{
		MontoOriginal:       amount,
		MonedaOrigen:        from,
		MonedaDestino:       to,
		MontoConvertido:     resp.ConversionResult,
		TasaConversion:      resp.ConversionRate,
		UltimaActualizacion: resp.TimeLastUpdateUTC,
	}, nil
}

// rejected turns a 4xx upstream answer into ErrRejected. ExchangeRate-API
// answers unsupported codes and malformed requests with 4xx plus an
// "error-type" body; those are input problems rather than outages.
func rejected(err error) error {
	ue, ok := upstream.AsUpstreamError(err)
	if !ok || !ue.IsClientError() {
		return err
	}
	var body struct {
		ErrorType string `json:"error-type"`
	}
	_ = json.Unmarshal([]byte(ue.Body), &body)
	return &ErrRejected{ErrorType: body.ErrorType}
}
