// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package books

import (
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/testinfra"
)

func newTestHandler(t *testing.T, fake *testinfra.FakeUpstream) http.Handler {
	t.Helper()
	svc := NewService(config.BooksConfig{BaseURL: fake.URL(), LangRestrict: "es"},
		config.UpstreamConfig{Timeout: 2 * time.Second})
	return api.NewRouter(api.RouterConfig{App: "libros", RateLimitDisabled: true}, NewHandler(svc))
}

var searchFields = []string{
	"id", "titulo", "autores", "descripcion", "editorial", "fecha_publicacion", "paginas",
	"categorias", "imagen", "preview_link", "rating", "precio", "moneda", "disponible",
}

func TestBuscar(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("á", 350)
	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/volumes", http.StatusOK, `{"totalItems":2,"items":[
		{"id":"abc","volumeInfo":{"title":"Cien años de soledad","authors":["Gabriel García Márquez"],
			"description":"`+long+`","publisher":"Sudamericana","publishedDate":"1967","pageCount":471,
			"categories":["Fiction"],"imageLinks":{"thumbnail":"http://img/abc"},"previewLink":"http://prev/abc",
			"averageRating":4.5},
		 "saleInfo":{"saleability":"FOR_SALE","listPrice":{"amount":199.0,"currencyCode":"MXN"}}},
		{"id":"bare","volumeInfo":{},"saleInfo":{"saleability":"NOT_FOR_SALE"}}
	]}`)

	handler := newTestHandler(t, fake)
	rec := testinfra.Serve(handler, http.MethodGet, "/api/libros/buscar?q=soledad&categoria=Fiction&max=100", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	items := testinfra.DecodeArray(t, rec.Body.Bytes())
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}
	for _, it := range items {
		testinfra.AssertKeys(t, it, searchFields...)
	}

	full := items[0].(map[string]interface{})
	desc := full["descripcion"].(string)
	if utf8.RuneCountInString(desc) != 303 || !strings.HasSuffix(desc, "...") {
		t.Errorf("descripcion not truncated to 300 code points: %d", utf8.RuneCountInString(desc))
	}
	if full["precio"] != 199.0 || full["moneda"] != "MXN" || full["disponible"] != true || full["rating"] != 4.5 {
		t.Errorf("sale info = %v", full)
	}

	bare := items[1].(map[string]interface{})
	if bare["titulo"] != "Sin título" || bare["rating"] != float64(0) || bare["paginas"] != float64(0) || bare["imagen"] != "" {
		t.Errorf("defaults not applied: %v", bare)
	}
	if a, ok := bare["autores"].([]interface{}); !ok || len(a) != 0 {
		t.Errorf("autores should be [], got %v", bare["autores"])
	}

	q := fake.LastQuery("/volumes")
	if q.Get("q") != "soledad+subject:Fiction" || q.Get("maxResults") != "40" || q.Get("printType") != "books" || q.Get("langRestrict") != "es" {
		t.Errorf("query = %v", q)
	}
}

func TestBuscar_NoItems(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/volumes", http.StatusOK, `{"totalItems":0}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/libros/buscar?q=zzzz", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %s, want []", rec.Body.String())
	}
	if fake.LastQuery("/volumes").Get("maxResults") != "20" {
		t.Error("default maxResults should be 20")
	}
}

func TestBuscar_QueryRequired(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/libros/buscar", "")
	testinfra.AssertError(t, rec, http.StatusBadRequest, MsgQueryRequired)
	if fake.Total() != 0 {
		t.Error("validation failure reached upstream")
	}
}

func TestDetalle(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/volumes/abc", http.StatusOK, `{"id":"abc","volumeInfo":{"title":"Rayuela",
		"imageLinks":{"thumbnail":"http://img/small"},"language":"es"},
		"saleInfo":{"saleability":"FOR_SALE","buyLink":"http://buy/abc"}}`)
	fake.JSON("/volumes/big", http.StatusOK, `{"id":"big","volumeInfo":{"imageLinks":{"thumbnail":"http://img/s","large":"http://img/l"}}}`)

	handler := newTestHandler(t, fake)
	rec := testinfra.Serve(handler, http.MethodGet, "/api/libros/abc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "id", "titulo", "subtitulo", "autores", "descripcion", "editorial",
		"fecha_publicacion", "paginas", "categorias", "imagen_grande", "idioma", "preview_link",
		"rating", "ratings_count", "precio", "moneda", "comprable", "link_compra")
	if body["rating"] != nil {
		t.Errorf("absent rating must be null in detail, got %v", body["rating"])
	}
	if body["imagen_grande"] != "http://img/small" {
		t.Errorf("imagen_grande should fall back to the thumbnail: %v", body["imagen_grande"])
	}
	if body["comprable"] != true || body["link_compra"] != "http://buy/abc" {
		t.Errorf("sale fields = %v", body)
	}

	body = testinfra.DecodeObject(t, testinfra.Serve(handler, http.MethodGet, "/api/libros/big", "").Body.Bytes())
	if body["imagen_grande"] != "http://img/l" {
		t.Errorf("imagen_grande should prefer the large image: %v", body["imagen_grande"])
	}

	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/libros/missing", ""), http.StatusNotFound, MsgBookNotFound)
}

func TestCategorias(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/libros/categorias", "")
	cats := testinfra.DecodeArray(t, rec.Body.Bytes())
	if len(cats) != 16 {
		t.Errorf("categorias = %d, want 16", len(cats))
	}
	if fake.Total() != 0 {
		t.Error("static list must not call upstream")
	}
}
