// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package reddit

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

const userAgent = "pasarela-test/1.0"

func newTestHandler(t *testing.T, fake *testinfra.FakeUpstream) http.Handler {
	t.Helper()
	svc := NewService(config.RedditConfig{BaseURL: fake.URL(), UserAgent: userAgent},
		config.UpstreamConfig{Timeout: 2 * time.Second})
	return api.NewRouter(api.RouterConfig{App: "reddit", RateLimitDisabled: true}, NewHandler(svc))
}

func TestPosts(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("ñ", 250)
	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/r/golang/top.json", http.StatusOK, `{"data":{"children":[
		{"data":{"title":"Go 1.23","author":"gopher","score":512,"num_comments":48,
			"permalink":"/r/golang/comments/abc/go_123/","url":"https://go.dev/blog",
			"created_utc":1700000000.0,"thumbnail":"https://thumbs/abc.jpg","selftext":"`+long+`"}},
		{"data":{"title":"Pregunta","author":"nuevo","score":1,"num_comments":0,
			"permalink":"/r/golang/comments/def/pregunta/","url":"https://reddit.com/r/golang/comments/def",
			"created_utc":1700000060,"thumbnail":"self","selftext":"corto"}},
		{"data":{"title":"Enlace","author":"x","score":0,"num_comments":0,"permalink":"/p/","created_utc":0}}
	]}}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/reddit/posts?subreddit=golang&filtro=top&limite=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	testinfra.AssertKeys(t, body, "subreddit", "posts")
	if body["subreddit"] != "golang" {
		t.Errorf("subreddit = %v", body["subreddit"])
	}

	posts := body["posts"].([]interface{})
	if len(posts) != 3 {
		t.Fatalf("posts = %d", len(posts))
	}
	for _, p := range posts {
		testinfra.AssertKeys(t, p, "titulo", "autor", "puntos", "comentarios", "url", "url_completa",
			"fecha", "thumbnail", "selftext")
	}

	first := posts[0].(map[string]interface{})
	if first["url"] != "https://reddit.com/r/golang/comments/abc/go_123/" {
		t.Errorf("url = %v", first["url"])
	}
	if first["fecha"] != "2023-11-14 22:13" {
		t.Errorf("fecha = %v, want UTC minute precision", first["fecha"])
	}
	if first["thumbnail"] != "https://thumbs/abc.jpg" {
		t.Errorf("thumbnail = %v", first["thumbnail"])
	}
	excerpt := first["selftext"].(string)
	if utf8.RuneCountInString(excerpt) != 203 || !strings.HasSuffix(excerpt, "...") {
		t.Errorf("selftext should be 200 code points plus marker, got %d", utf8.RuneCountInString(excerpt))
	}

	second := posts[1].(map[string]interface{})
	if second["thumbnail"] != nil || second["selftext"] != "corto" {
		t.Errorf("second post = %v", second)
	}
	third := posts[2].(map[string]interface{})
	if third["thumbnail"] != nil || third["selftext"] != "" || third["url_completa"] != "" {
		t.Errorf("absent fields should default: %v", third)
	}

	c := fake.Captures()[0]
	if c.Query.Get("limit") != "5" {
		t.Errorf("limite alias not honoured: %v", c.Query)
	}
	if c.Header.Get("User-Agent") != userAgent {
		t.Errorf("User-Agent = %q", c.Header.Get("User-Agent"))
	}
}

func TestPosts_Defaults(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/r/python/hot.json", http.StatusOK, `{"data":{"children":[]}}`)

	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/reddit/posts", "")
	body := testinfra.DecodeObject(t, rec.Body.Bytes())
	if body["subreddit"] != "python" {
		t.Errorf("subreddit = %v", body["subreddit"])
	}
	if posts, ok := body["posts"].([]interface{}); !ok || len(posts) != 0 {
		t.Errorf("posts = %v, want []", body["posts"])
	}
	if fake.LastQuery("/r/python/hot.json").Get("limit") != "10" {
		t.Error("default limit should be 10")
	}
}

func TestPosts_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		status   int
		message  string
		upstream int
	}{
		{"invalid filter", "/api/reddit/posts?filtro=controversial", http.StatusBadRequest, MsgInvalidFilter, 0},
		{"invalid limit", "/api/reddit/posts?limit=muchos", http.StatusBadRequest, "Parámetro limit inválido", 0},
		{"unknown subreddit", "/api/reddit/posts?subreddit=noexiste", http.StatusNotFound, MsgSubredditNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := testinfra.NewFakeUpstream(t)
			rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, tt.target, "")
			testinfra.AssertError(t, rec, tt.status, tt.message)
			if fake.Total() != tt.upstream {
				t.Errorf("upstream calls = %d, want %d", fake.Total(), tt.upstream)
			}
		})
	}
}

func TestBuscar(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	fake.JSON("/search.json", http.StatusOK, `{"data":{"children":[
		{"data":{"title":"Tacos","subreddit":"mexico","author":"a","score":3,"num_comments":1,
			"permalink":"/r/mexico/comments/t/","created_utc":1700000000,"selftext":"ignored"}}
	]}}`)
	handler := newTestHandler(t, fake)

	rec := testinfra.Serve(handler, http.MethodGet, "/api/reddit/buscar?q=tacos&limit=500", "")
	items := testinfra.DecodeArray(t, rec.Body.Bytes())
	if len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	testinfra.AssertKeys(t, items[0], "titulo", "subreddit", "autor", "puntos", "comentarios", "url", "fecha")

	q := fake.LastQuery("/search.json")
	if q.Get("q") != "tacos" || q.Get("limit") != "100" {
		t.Errorf("query = %v", q)
	}

	testinfra.AssertError(t, testinfra.Serve(handler, http.MethodGet, "/api/reddit/buscar", ""),
		http.StatusBadRequest, MsgQueryRequired)
	if fake.Total() != 1 {
		t.Error("missing query reached upstream")
	}
}

func TestSubredditsPopulares(t *testing.T) {
	t.Parallel()

	fake := testinfra.NewFakeUpstream(t)
	rec := testinfra.Serve(newTestHandler(t, fake), http.MethodGet, "/api/reddit/subreddits/populares", "")
	items := testinfra.DecodeArray(t, rec.Body.Bytes())
	if len(items) != 10 {
		t.Fatalf("populares = %d, want 10", len(items))
	}
	testinfra.AssertKeys(t, items[0], "nombre", "descripcion")
	if fake.Total() != 0 {
		t.Error("static list should not call upstream")
	}
}

func TestThumbnail(t *testing.T) {
	t.Parallel()

	s := func(v string) *string { return &v }
	tests := []struct {
		in   *string
		want string
	}{
		{nil, ""},
		{s(""), ""},
		{s("self"), ""},
		{s("default"), ""},
		{s("https://t/x.jpg"), "https://t/x.jpg"},
	}
	for _, tt := range tests {
		got := thumbnail(tt.in)
		if (got == nil) != (tt.want == "") || (got != nil && *got != tt.want) {
			t.Errorf("thumbnail(%v) = %v, want %q", tt.in, got, tt.want)
		}
	}
}
