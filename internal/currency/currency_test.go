// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package currency

import (
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/testinfra"
)

func newTestHandler(t *testing.T, fake *testinfra.FakeUpstream) http.Handler {
	t.Helper()
	svc := NewService(config.CurrencyConfig{BaseURL: fake.URL(), APIKey: "k"},
		config.UpstreamConfig{Timeout: 2 * time.Second})
	return api.NewRouter(api.RouterConfig{App: "divisas", RateLimitDisabled: true}, NewHandler(svc))
}

func TestTasas(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/k/latest/USD", http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"time_last_update_utc": "Fri, 27 Mar 2020 00:00:00 +0000",
		"conversion_rates": {"USD": 1, "MXN": 17.1, "EUR": 0.92}
	}`)
	fake.JSON("/k/latest/XXX", http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`)
	fake.JSON("/k/latest/ZZZ", http.StatusNotFound, `{"result":"error","error-type":"unsupported-code"}`)
	fake.JSON("/k/latest/EUR", http.StatusBadGateway, `{}`)

	handler := newTestHandler(t, fake)

	rec := testinfra.Serve(handler, http.MethodGet, "/api/divisas/tasas/usd", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "moneda_base", "tasas", "ultima_actualizacion")
	rates := body["tasas"].(map[string]interface{})
	if body["moneda_base"] != "USD" || rates["MXN"] != 17.1 {
		t.Errorf("body = %v", body)
	}

	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/divisas/tasas/XXX", ""), http.StatusBadRequest, MsgRatesFailed)
	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/divisas/tasas/ZZZ", ""), http.StatusBadRequest, MsgRatesFailed)

	rec = testinfra.Serve(handler, http.MethodGet, "/api/divisas/tasas/EUR", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("upstream 502 status = %d, want 500", rec.Code)
	}
}

func TestConvertir(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/k/pair/USD/MXN/100", http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"target_code": "MXN",
		"conversion_rate": 17.1,
		"conversion_result": 1710,
		"time_last_update_utc": "Fri, 27 Mar 2020 00:00:00 +0000"
	}`)
	fake.JSON("/k/pair/EUR/JPY/2.5", http.StatusOK, `{"result":"success","conversion_rate":160,"conversion_result":400}`)
	fake.JSON("/k/pair/USD/XXX/1", http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`)

	handler := newTestHandler(t, fake)

	rec := testinfra.Serve(handler, http.MethodGet, "/api/divisas/convertir?monto=100", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "monto_original", "moneda_origen", "moneda_destino",
		"monto_convertido", "tasa_conversion", "ultima_actualizacion")
	if body["monto_original"] != float64(100) || body["moneda_origen"] != "USD" || body["moneda_destino"] != "MXN" {
		t.Errorf("defaults not applied: %v", body)
	}
	if body["monto_convertido"] != float64(1710) || body["tasa_conversion"] != 17.1 {
		t.Errorf("body = %v", body)
	}

	rec = testinfra.Serve(handler, http.MethodGet, "/api/divisas/convertir?monto=2.5&de=eur&a=jpy", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("lower-case codes: status = %d", rec.Code)
	}
	if body := testinfra.DecodeObject(t, rec.Body.Bytes()); body["moneda_origen"] != "EUR" || body["moneda_destino"] != "JPY" {
		t.Errorf("codes not upper-cased: %v", body)
	}

	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/divisas/convertir?monto=1&a=XXX", ""),
		http.StatusBadRequest, MsgConversionFailed)
}

func TestConvertir_AmountRequired(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	handler := newTestHandler(t, fake)

	for _, target := range []string{
		"/api/divisas/convertir",
		"/api/divisas/convertir?monto=",
		"/api/divisas/convertir?monto=0",
		"/api/divisas/convertir?monto=abc",
	} {
		testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, target, ""), http.StatusBadRequest, MsgAmountRequired)
	}
	if fake.Total() != 0 {
		t.Errorf("validation failures reached the upstream %d times", fake.Total())
	}
}

func TestMonedas(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, testinfra.NewFakeUpstream(t))
	rec := testinfra.Serve(handler, http.MethodGet, "/api/divisas/monedas", "")
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	if len(body) != 13 {
		t.Fatalf("monedas = %d entries, want 13", len(body))
	}
	testinfra.AssertKeys(t, body["MXN"], "nombre", "simbolo", "bandera")

	names := map[string]string{
		"USD": "Dólar Estadounidense",
		"GBP": "Libra Esterlina",
		"MXN": "Peso Mexicano",
		"BRL": "Real Brasileño",
		"EUR": "Euro",
	}
	for code, want := range names {
		entry, ok := body[code].(map[string]interface{})
		if !ok {
			t.Errorf("%s missing from monedas", code)
			continue
		}
		if entry["nombre"] != want {
			t.Errorf("%s nombre = %v, want %q", code, entry["nombre"], want)
		}
	}
}
