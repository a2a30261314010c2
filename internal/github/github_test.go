// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package github

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/testinfra"
)

const userBody = `{
	"login": "octocat",
	"name": null,
	"bio": "Mascota",
	"avatar_url": "https://avatars.example/octocat",
	"public_repos": 4,
	"followers": 10,
	"following": 2,
	"location": "San Francisco",
	"company": null,
	"blog": "",
	"twitter_username": null,
	"created_at": "2011-01-25T18:44:36Z"
}`

const reposBody = `[
	{"name":"a","stargazers_count":10,"forks_count":1,"language":"Go","html_url":"u/a","updated_at":"2024-05-01T10:00:00Z"},
	{"name":"b","language":"Rust","html_url":"u/b","updated_at":"2024-05-02T10:00:00Z"},
	{"name":"c","stargazers_count":7,"forks_count":3,"language":"Go","html_url":"u/c","updated_at":"2024-05-03T10:00:00Z"},
	{"name":"d","language":null,"html_url":"u/d","updated_at":"2024-05-04T10:00:00Z"},
	{"name":"e","stargazers_count":0,"forks_count":0,"language":"TS","html_url":"u/e","updated_at":"2024-05-05T10:00:00Z"},
	{"name":"f","stargazers_count":0,"forks_count":0,"language":"Rust","html_url":"u/f","updated_at":"2024-05-06T10:00:00Z"},
	{"name":"g","stargazers_count":0,"forks_count":0,"language":"Go","html_url":"u/g","updated_at":"2024-05-07T10:00:00Z"}
]`

func newTestService(t *testing.T, fake *testinfra.FakeUpstream, token string) *Service {
	t.Helper()
	return NewService(config.GitHubConfig{BaseURL: fake.URL(), Token: token},
		config.UpstreamConfig{Timeout: 2 * time.Second})
}

func newTestHandler(svc *Service) http.Handler {
	return api.NewRouter(api.RouterConfig{App: "github", RateLimitDisabled: true}, NewHandler(svc))
}

func TestUsuario(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/users/octocat", http.StatusOK, userBody)
	fake.JSON("/users/octocat/repos", http.StatusOK, reposBody)

	rec := testinfra.Serve(newTestHandler(newTestService(t, fake, "ghp_test")), http.MethodGet, "/api/github/usuario/octocat", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body,
		"nombre", "username", "bio", "avatar", "repositorios", "seguidores", "siguiendo",
		"ubicacion", "empresa", "blog", "twitter", "creado",
		"total_stars", "total_forks", "lenguajes", "top_lenguajes", "repos_destacados")

	if body["nombre"] != "octocat" {
		t.Errorf("nombre should fall back to the login, got %v", body["nombre"])
	}
	if body["creado"] != "2011-01-25" {
		t.Errorf("creado = %v", body["creado"])
	}
	if body["empresa"] != nil {
		t.Errorf("empresa = %v, want null", body["empresa"])
	}
	// Repos b and d carry no counts; they add 0.
	if body["total_stars"] != float64(17) || body["total_forks"] != float64(4) {
		t.Errorf("totals = %v / %v", body["total_stars"], body["total_forks"])
	}

	langs := body["lenguajes"].(map[string]interface{})
	if len(langs) != 3 || langs["Go"] != float64(3) || langs["Rust"] != float64(2) || langs["TS"] != float64(1) {
		t.Errorf("lenguajes = %v", langs)
	}

	top := body["top_lenguajes"].([]interface{})
	want := []struct {
		lang  string
		repos float64
	}{{"Go", 3}, {"Rust", 2}, {"TS", 1}}
	if len(top) != len(want) {
		t.Fatalf("top_lenguajes = %v", top)
	}
	for i, w := range want {
		entry := top[i].(map[string]interface{})
		testinfra.AssertKeys(t, entry, "lenguaje", "repos")
		if entry["lenguaje"] != w.lang || entry["repos"] != w.repos {
			t.Errorf("top_lenguajes[%d] = %v, want %v", i, entry, w)
		}
	}

	featured := body["repos_destacados"].([]interface{})
	if len(featured) != 5 {
		t.Fatalf("repos_destacados has %d entries, want 5", len(featured))
	}
	first := featured[0].(map[string]interface{})
	testinfra.AssertKeys(t, first, "nombre", "descripcion", "stars", "forks", "lenguaje", "url", "actualizado")
	if first["nombre"] != "a" || featured[1].(map[string]interface{})["nombre"] != "c" {
		t.Errorf("featured not ranked by stars: %v", featured[:2])
	}
	if first["actualizado"] != "2024-05-01" {
		t.Errorf("actualizado = %v", first["actualizado"])
	}

	for _, c := range fake.Captures() {
		if c.Header.Get("Authorization") != "Bearer ghp_test" {
			t.Errorf("%s sent without token", c.Path)
		}
	}
	if q := fake.LastQuery("/users/octocat/repos"); q.Get("per_page") != "100" {
		t.Errorf("repos per_page = %q", q.Get("per_page"))
	}
}

func TestUsuario_NotFound(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	rec := testinfra.Serve(newTestHandler(newTestService(t, fake, "")), http.MethodGet, "/api/github/usuario/nadie", "")
	testinfra.AssertError(t, rec, http.StatusNotFound, MsgUserNotFound)
}

func TestTrending(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/search/repositories", http.StatusOK, `{"total_count":1,"items":[
		{"full_name":"octo/nuevo","description":null,"stargazers_count":500,"forks_count":20,"language":"Go",
		 "html_url":"https://github.com/octo/nuevo","owner":{"login":"octo","avatar_url":"https://avatars.example/octo"}}
	]}`)

	svc := newTestService(t, fake, "")
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	rec := testinfra.Serve(newTestHandler(svc), http.MethodGet, "/api/github/trending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	items := testinfra.DecodeArray(t, rec.Body.Bytes())
	if len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	testinfra.AssertKeys(t, items[0], "nombre", "descripcion", "stars", "forks", "lenguaje", "url", "propietario", "avatar")
	if items[0].(map[string]interface{})["nombre"] != "octo/nuevo" {
		t.Errorf("nombre should be the full name: %v", items[0])
	}

	q := fake.LastQuery("/search/repositories")
	if q.Get("q") != "created:>2024-06-08" || q.Get("sort") != "stars" || q.Get("order") != "desc" || q.Get("per_page") != "10" {
		t.Errorf("trending query = %v", q)
	}
}

func TestBuscarRepos(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/search/repositories", http.StatusOK, `{"total_count":0,"items":[]}`)
	handler := newTestHandler(newTestService(t, fake, ""))

	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/github/buscar/repos", ""), http.StatusBadRequest, MsgQueryRequired)
	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/github/buscar/repos?q=%20", ""), http.StatusBadRequest, MsgQueryRequired)
	if fake.Total() != 0 {
		t.Fatalf("validation failure reached upstream")
	}

	rec := testinfra.Serve(handler, http.MethodGet, "/api/github/buscar/repos?q=router&lenguaje=go", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("empty result should encode as [], got %s", rec.Body.String())
	}
	q := fake.LastQuery("/search/repositories")
	if q.Get("q") != "router language:go" || q.Get("per_page") != "15" {
		t.Errorf("search query = %v", q)
	}
	if q.Get("sort") != "stars" || q.Get("order") != "desc" {
		t.Errorf("search should rank by stars descending, got sort=%q order=%q", q.Get("sort"), q.Get("order"))
	}
}
