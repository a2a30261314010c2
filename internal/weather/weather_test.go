// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package weather

import (
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/testinfra"
)

const owmBody = `{
	"main": {"temp": 22.5, "humidity": 40, "pressure": 1012},
	"weather": [{"description": "cielo claro", "icon": "01d"}],
	"wind": {"speed": 3.6},
	"name": "Guadalajara"
}`

func newTestHandler(t *testing.T, geo, owm *testinfra.FakeUpstream) http.Handler {
	t.Helper()
	svc := NewService(config.WeatherConfig{
		GeoURL:     geo.URL(),
		WeatherURL: owm.URL(),
		APIKey:     "owm-key",
		Units:      "metric",
		Lang:       "es",
	}, config.UpstreamConfig{Timeout: 2 * time.Second})
	return api.NewRouter(api.RouterConfig{App: "clima", RateLimitDisabled: true}, NewHandler(svc))
}

func TestClima_Success(t *testing.T) {
	t.Parallel()

	geo := testinfra.NewFakeUpstream(t)
	owm := testinfra.NewFakeUpstream(t)
	geo.JSON("/json/", http.StatusOK, `{"city":"Guadalajara","country_name":"Mexico","latitude":20.67,"longitude":-103.35}`)
	owm.JSON("/weather", http.StatusOK, owmBody)

	rec := testinfra.Serve(newTestHandler(t, geo, owm), http.MethodGet, "/api/clima", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "ciudad", "pais", "temperatura", "descripcion", "humedad", "viento", "icono")
	if body["ciudad"] != "Guadalajara" || body["pais"] != "Mexico" || body["temperatura"] != 22.5 {
		t.Errorf("body = %v", body)
	}
	if body["descripcion"] != "cielo claro" || body["icono"] != "01d" || body["humedad"] != float64(40) || body["viento"] != 3.6 {
		t.Errorf("body = %v", body)
	}

	q := owm.LastQuery("/weather")
	if q.Get("lat") != "20.67" || q.Get("lon") != "-103.35" {
		t.Errorf("coordinates not forwarded: %v", q)
	}
	if q.Get("appid") != "owm-key" || q.Get("units") != "metric" || q.Get("lang") != "es" {
		t.Errorf("weather query = %v", q)
	}
}

func TestClima_DefaultCity(t *testing.T) {
	t.Parallel()

	geo := testinfra.NewFakeUpstream(t)
	owm := testinfra.NewFakeUpstream(t)
	geo.JSON("/json/", http.StatusOK, `{"city":null,"country_name":"Mexico","latitude":1,"longitude":2}`)
	owm.JSON("/weather", http.StatusOK, `{"main":{"temp":10,"humidity":5},"weather":[],"wind":{"speed":0}}`)

	rec := testinfra.Serve(newTestHandler(t, geo, owm), http.MethodGet, "/api/clima", "")
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	if body["ciudad"] != DefaultCity {
		t.Errorf("ciudad = %v, want %q", body["ciudad"], DefaultCity)
	}
	if body["descripcion"] != "" || body["icono"] != "" {
		t.Errorf("missing weather entry should give empty strings: %v", body)
	}
}

func TestClima_ExplicitIP(t *testing.T) {
	t.Parallel()

	geo := testinfra.NewFakeUpstream(t)
	owm := testinfra.NewFakeUpstream(t)
	geo.JSON("/8.8.8.8/json/", http.StatusOK, `{"city":"Mountain View","country_name":"United States","latitude":37.4,"longitude":-122.1}`)
	owm.JSON("/weather", http.StatusOK, owmBody)

	handler := newTestHandler(t, geo, owm)
	rec := testinfra.Serve(handler, http.MethodGet, "/api/clima?ip=8.8.8.8", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if geo.Hits("/8.8.8.8/json/") != 1 {
		t.Error("explicit IP not used for geolocation")
	}

	rec = testinfra.Serve(handler, http.MethodGet, "/api/clima?ip=no-es-ip", "")
	testinfra.AssertError(t, rec, http.StatusBadRequest, "IP inválida")
}

func TestClima_GeoFailureAbortsWeather(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		geo  func(f *testinfra.FakeUpstream)
	}{
		{"server error", func(f *testinfra.FakeUpstream) { f.JSON("/json/", http.StatusInternalServerError, `{}`) }},
		{"lookup error", func(f *testinfra.FakeUpstream) {
			f.JSON("/json/", http.StatusOK, `{"error":true,"reason":"RateLimited"}`)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			geo := testinfra.NewFakeUpstream(t)
			owm := testinfra.NewFakeUpstream(t)
			tt.geo(geo)
			owm.JSON("/weather", http.StatusOK, owmBody)

			rec := testinfra.Serve(newTestHandler(t, geo, owm), http.MethodGet, "/api/clima", "")
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}
			testinfra.AssertKeys(t, testinfra.DecodeObject(t, rec.Body.Bytes()), "error")
			if owm.Total() != 0 {
				t.Errorf("weather called %d times after geolocation failed", owm.Total())
			}
		})
	}
}
