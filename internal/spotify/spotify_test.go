// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package spotify

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/testinfra"
)

const tokenBody = `{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`

func newTestHandler(t *testing.T, fake *testinfra.FakeUpstream) http.Handler {
	t.Helper()
	svc := NewService(config.SpotifyConfig{
		APIURL:        fake.URL() + "/v1",
		TokenURL:      fake.URL() + "/api/token",
		ClientID:      "id",
		ClientSecret:  "secret",
		Market:        "MX",
		GenreCacheTTL: time.Hour,
	}, config.UpstreamConfig{Timeout: 2 * time.Second})
	return api.NewRouter(api.RouterConfig{App: "spotify", RateLimitDisabled: true}, NewHandler(svc))
}

// newFake serves a token endpoint that accepts the test credentials.
func newFake(t *testing.T) *testinfra.FakeUpstream {
	t.Helper()
	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/api/token", http.StatusOK, tokenBody)
	return fake
}

func assertBearer(t *testing.T, fake *testinfra.FakeUpstream) {
	t.Helper()
	for _, c := range fake.Captures() {
		if c.Path == "/api/token" {
			if !strings.HasPrefix(c.Header.Get("Authorization"), "Basic ") {
				t.Errorf("token request auth = %q", c.Header.Get("Authorization"))
			}
			continue
		}
		if got := c.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("%s sent Authorization %q", c.Path, got)
		}
	}
}

const trackJSON = `{"id":"t1","name":"Oye Como Va","duration_ms":255000,"preview_url":null,"popularity":70,
	"explicit":false,"track_number":3,"artists":[{"id":"a1","name":"Santana"},{"id":"a2","name":"Tito Puente"}],
	"album":{"id":"al1","name":"Abraxas","images":[{"url":"https://i/abraxas","width":640,"height":640}]},
	"external_urls":{"spotify":"https://open.spotify.com/track/t1"}}`

func TestBuscar_Types(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tipo string
		body string
		keys []string
	}{
		{
			tipo: "track",
			body: `{"tracks":{"items":[` + trackJSON + `,null]}}`,
			keys: []string{"id", "nombre", "artistas", "artista_principal", "album", "imagen", "duracion_ms",
				"duracion", "preview_url", "spotify_url", "popularidad", "explicito"},
		},
		{
			tipo: "artist",
			body: `{"artists":{"items":[{"id":"a1","name":"Santana","genres":["rock latino"],"popularity":72,
				"images":[],"followers":{"total":5000},"external_urls":{"spotify":"s"}}]}}`,
			keys: []string{"id", "nombre", "generos", "popularidad", "imagen", "seguidores", "spotify_url"},
		},
		{
			tipo: "album",
			body: `{"albums":{"items":[{"id":"al1","name":"Abraxas","album_type":"album","release_date":"1970-09-23",
				"total_tracks":9,"images":[],"artists":[{"name":"Santana"}],"external_urls":{"spotify":"s"}}]}}`,
			keys: []string{"id", "nombre", "artistas", "fecha_lanzamiento", "total_tracks", "imagen", "spotify_url", "tipo"},
		},
		{
			tipo: "playlist",
			body: `{"playlists":{"items":[null,{"id":"p1","name":"Éxitos","description":"","public":true,
				"images":[{"url":"https://i/p1"}],"owner":{"display_name":"spotify"},"tracks":{"total":50},
				"external_urls":{"spotify":"s"}}]}}`,
			keys: []string{"id", "nombre", "descripcion", "owner", "total_tracks", "imagen", "spotify_url", "publica"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tipo, func(t *testing.T) {
			t.Parallel()

			fake := newFake(t)
			fake.JSON("/v1/search", http.StatusOK, tt.body)

			rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/buscar?q=santana&tipo="+tt.tipo+"&limite=5", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			items := testinfra.DecodeArray(t, rec.Body.Bytes())
			if len(items) != 1 {
				t.Fatalf("items = %d, want 1 (null entries skipped)", len(items))
			}
			testinfra.AssertKeys(t, items[0], tt.keys...)

			q := fake.LastQuery("/v1/search")
			if q.Get("type") != tt.tipo || q.Get("limit") != "5" || q.Get("market") != "MX" || q.Get("q") != "santana" {
				t.Errorf("query = %v", q)
			}
			assertBearer(t, fake)
		})
	}
}

func TestBuscar_TrackMapping(t *testing.T) {
	t.Parallel()

	fake := newFake(t)
	fake.JSON("/v1/search", http.StatusOK, `{"tracks":{"items":[`+trackJSON+`]}}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/buscar?q=oye", "")
	track := testinfra.DecodeArray(t, rec.Body.Bytes())[0].(map[string]interface{})
	if track["duracion"] != "4:15" || track["duracion_ms"] != float64(255000) {
		t.Errorf("duracion = %v", track["duracion"])
	}
	if track["artista_principal"] != "Santana" || track["imagen"] != "https://i/abraxas" {
		t.Errorf("track = %v", track)
	}
	if track["preview_url"] != nil {
		t.Errorf("preview_url = %v, want null", track["preview_url"])
	}
	if fake.LastQuery("/v1/search").Get("limit") != "20" {
		t.Error("default limit should be 20")
	}
}

func TestBuscar_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target  string
		message string
	}{
		{"/api/spotify/buscar?tipo=track", MsgQueryRequired},
		{"/api/spotify/buscar?q=x&tipo=podcast", MsgInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			fake := newFake(t)
			testinfra.AssertError(t, testinfra.Serve(newTestHandler(t, fake), http.MethodGet, tt.target, ""),
				http.StatusBadRequest, tt.message)
			if fake.Total() != 0 {
				t.Errorf("validation failure made %d upstream calls", fake.Total())
			}
		})
	}
}

func TestAuthFailure(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/api/token", http.StatusBadRequest, `{"error":"invalid_client"}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/buscar?q=x", "")
	testinfra.AssertError(t, rec, http.StatusInternalServerError, MsgAuthFailed)
	if fake.Hits("/v1/search") != 0 {
		t.Error("search should not run without a token")
	}
}

func TestTokenReusedAcrossRequests(t *testing.T) {
	t.Parallel()

	fake := newFake(t)
	fake.JSON("/v1/recommendations", http.StatusOK, `{"tracks":[`+trackJSON+`]}`)
	handler := newTestHandler(t, fake)

	for i := 0; i < 3; i++ {
		rec := testinfra.Serve(handler, http.MethodGet, "/api/spotify/recomendaciones", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		items := testinfra.DecodeArray(t, rec.Body.Bytes())
		testinfra.AssertKeys(t, items[0], "id", "nombre", "artistas", "album", "imagen", "preview_url", "spotify_url")
	}
	if n := fake.Hits("/api/token"); n != 1 {
		t.Errorf("token fetched %d times, want 1", n)
	}
	q := fake.LastQuery("/v1/recommendations")
	if q.Get("seed_genres") != "pop,rock" || q.Get("limit") != "20" || q.Get("market") != "MX" {
		t.Errorf("query = %v", q)
	}
}

func TestTokenInvalidatedOnUnauthorized(t *testing.T) {
	t.Parallel()

	fake := newFake(t)
	fake.JSON("/v1/albums/x", http.StatusUnauthorized, `{"error":{"status":401,"message":"The access token expired"}}`)
	handler := newTestHandler(t, fake)

	for i := 0; i < 2; i++ {
		rec := testinfra.Serve(handler, http.MethodGet, "/api/spotify/album/x", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
	}
	if n := fake.Hits("/api/token"); n != 2 {
		t.Errorf("token fetched %d times, want a refresh after the 401", n)
	}
}

func TestArtista(t *testing.T) {
	t.Parallel()

	var tracks, related []string
	for i := 0; i < 12; i++ {
		tracks = append(tracks, trackJSON)
		related = append(related, `{"id":"r","name":"Rel","popularity":50,"images":[]}`)
	}

	fake := newFake(t)
	fake.JSON("/v1/artists/a1", http.StatusOK, `{"id":"a1","name":"Santana","genres":[],"popularity":72,
		"images":[{"url":"https://i/santana"}],"followers":{"total":5000},"external_urls":{"spotify":"s"}}`)
	fake.JSON("/v1/artists/a1/top-tracks", http.StatusOK, `{"tracks":[`+strings.Join(tracks, ",")+`]}`)
	fake.JSON("/v1/artists/a1/albums", http.StatusOK, `{"items":[{"id":"al1","name":"Abraxas","album_type":"album",
		"release_date":"1970","total_tracks":9,"images":[]}]}`)
	fake.JSON("/v1/artists/a1/related-artists", http.StatusOK, `{"artists":[`+strings.Join(related, ",")+`]}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/artista/a1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "id", "nombre", "generos", "popularidad", "seguidores", "imagen",
		"spotify_url", "top_canciones", "albums", "artistas_relacionados")

	top := body["top_canciones"].([]interface{})
	if len(top) != TopTracksSize {
		t.Errorf("top_canciones = %d, want %d", len(top), TopTracksSize)
	}
	testinfra.AssertKeys(t, top[0], "id", "nombre", "album", "preview", "imagen", "duracion", "spotify_url")

	albums := body["albums"].([]interface{})
	testinfra.AssertKeys(t, albums[0], "id", "nombre", "fecha", "imagen", "total_tracks", "tipo")

	rel := body["artistas_relacionados"].([]interface{})
	if len(rel) != RelatedSize {
		t.Errorf("artistas_relacionados = %d, want %d", len(rel), RelatedSize)
	}
	testinfra.AssertKeys(t, rel[0], "id", "nombre", "imagen", "popularidad")

	for _, path := range []string{"/v1/artists/a1", "/v1/artists/a1/top-tracks", "/v1/artists/a1/albums", "/v1/artists/a1/related-artists"} {
		if fake.Hits(path) != 1 {
			t.Errorf("%s called %d times", path, fake.Hits(path))
		}
	}
	if fake.LastQuery("/v1/artists/a1/albums").Get("limit") != "10" {
		t.Error("albums limit should be 10")
	}
	if fake.Hits("/api/token") != 1 {
		t.Errorf("concurrent steps should share one token fetch, got %d", fake.Hits("/api/token"))
	}
	assertBearer(t, fake)
}

func TestArtista_NotFound(t *testing.T) {
	t.Parallel()

	fake := newFake(t)
	fake.JSON("/v1/artists/zz/top-tracks", http.StatusOK, `{"tracks":[]}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/artista/zz", "")
	testinfra.AssertError(t, rec, http.StatusNotFound, MsgArtistNotFound)
}

func TestAlbum(t *testing.T) {
	t.Parallel()

	fake := newFake(t)
	fake.JSON("/v1/albums/al1", http.StatusOK, `{"id":"al1","name":"Abraxas","album_type":"album",
		"release_date":"1970-09-23","total_tracks":2,"images":[],"artists":[{"name":"Santana"}],
		"genres":[],"label":"Columbia","popularity":66,"external_urls":{"spotify":"s"},
		"tracks":{"items":[
			{"track_number":1,"name":"Singing Winds","duration_ms":59000,"preview_url":null,"external_urls":{"spotify":"s1"}},
			{"track_number":2,"name":"Black Magic Woman","duration_ms":3600000,"preview_url":"https://p/2","external_urls":{"spotify":"s2"}}
		]}}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/album/al1", "")
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "id", "nombre", "artistas", "fecha_lanzamiento", "total_tracks", "imagen",
		"generos", "sello", "popularidad", "spotify_url", "tracks")
	if body["imagen"] != nil {
		t.Errorf("imagen = %v, want null", body["imagen"])
	}

	tracks := body["tracks"].([]interface{})
	testinfra.AssertKeys(t, tracks[0], "numero", "nombre", "duracion", "preview", "spotify_url")
	if tracks[0].(map[string]interface{})["duracion"] != "0:59" || tracks[1].(map[string]interface{})["duracion"] != "60:00" {
		t.Errorf("durations = %v", tracks)
	}
	if fake.LastQuery("/v1/albums/al1").Get("market") != "MX" {
		t.Error("market not sent")
	}

	testinfra.AssertError(t, testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/spotify/album/missing", ""),
		http.StatusNotFound, MsgAlbumNotFound)
}

func TestGeneros_Cached(t *testing.T) {
	t.Parallel()

	fake := newFake(t)
	fake.JSON("/v1/recommendations/available-genre-seeds", http.StatusOK, `{"genres":["acoustic","pop","rock"]}`)
	handler := newTestHandler(t, fake)

	for i := 0; i < 3; i++ {
		items := testinfra.DecodeArray(t, testinfra.Serve(handler, http.MethodGet, "/api/spotify/generos", "").Body.Bytes())
		if len(items) != 3 {
			t.Fatalf("generos = %v", items)
		}
	}
	if n := fake.Hits("/v1/recommendations/available-genre-seeds"); n != 1 {
		t.Errorf("genre seeds fetched %d times, want 1", n)
	}
}
