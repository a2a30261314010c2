// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package testinfra

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// Capture represents a captured upstream request.
type Capture struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// FakeUpstream is a mock third-party API. Unregistered paths answer 404.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	captures []Capture
}

// NewFakeUpstream starts a fake upstream that is closed when the test ends.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{
		routes:   make(map[string]http.HandlerFunc),
		captures: make([]Capture, 0),
	}

	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		f.mu.Lock()
		f.captures = append(f.captures, Capture{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		h, ok := f.routes[r.URL.Path]
		f.mu.Unlock()

		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		h(w, r)
	}))
	t.Cleanup(f.Server.Close)

	return f
}

// URL returns the server URL.
func (f *FakeUpstream) URL() string {
	return f.Server.URL
}

// Handle registers h for an exact path.
func (f *FakeUpstream) Handle(path string, h http.HandlerFunc) {
	f.mu.Lock()
	f.routes[path] = h
	f.mu.Unlock()
}

// JSON registers a canned JSON response for an exact path.
func (f *FakeUpstream) JSON(path string, status int, body string) {
	f.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Captures returns all captured requests.
func (f *FakeUpstream) Captures() []Capture {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]Capture, len(f.captures))
	copy(result, f.captures)
	return result
}

// Hits counts requests to path.
func (f *FakeUpstream) Hits(path string) int {
	n := 0
	for _, c := range f.Captures() {
		if c.Path == path {
			n++
		}
	}
	return n
}

// Total counts every captured request.
func (f *FakeUpstream) Total() int {
	return len(f.Captures())
}

// LastQuery returns the query of the latest request to path, or nil.
func (f *FakeUpstream) LastQuery(path string) url.Values {
	captures := f.Captures()
	for i := len(captures) - 1; i >= 0; i-- {
		if captures[i].Path == path {
			return captures[i].Query
		}
	}
	return nil
}

// Serve runs handler against a request built from method, target and body
// and returns the recorder.
func Serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeObject decodes a JSON object body.
func DecodeObject(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("body is not a JSON object: %v\n%s", err, body)
	}
	return m
}

// DecodeArray decodes a JSON array body.
func DecodeArray(t *testing.T, body []byte) []interface{} {
	t.Helper()
	var a []interface{}
	if err := json.Unmarshal(body, &a); err != nil {
		t.Fatalf("body is not a JSON array: %v\n%s", err, body)
	}
	return a
}

// AssertKeys fails unless obj has exactly the given keys.
func AssertKeys(t *testing.T, obj interface{}, keys ...string) {
	t.Helper()
	m, ok := obj.(map[string]interface{})
	if !ok {
		t.Fatalf("expected JSON object, got %T", obj)
	}
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
	for k := range m {
		if !want[k] {
			t.Errorf("unexpected key %q", k)
		}
	}
}

// AssertError fails unless rec holds the error envelope with status and
// message.
func AssertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	m := DecodeObject(t, rec.Body.Bytes())
	AssertKeys(t, m, "error")
	if m["error"] != message {
		t.Errorf("error = %q, want %q", m["error"], message)
	}
}
