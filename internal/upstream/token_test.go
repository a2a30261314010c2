// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package upstream

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTokenServer(t *testing.T, calls *atomic.Int32, delay time.Duration) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		want := "Basic " + base64.StdEncoding.EncodeToString([]byte("id:secret"))
		if r.Header.Get("Authorization") != want {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		time.Sleep(delay)
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":3600}`, n)
	}))
}

func TestClientCredentials_CachesToken(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTokenServer(t, &calls, 0)
	defer server.Close()

	source := NewClientCredentials(New(Config{Name: "spotify-auth"}), server.URL, "id", "secret")

	for i := 0; i < 3; i++ {
		token, err := source.Token(context.Background())
		if err != nil {
			t.Fatalf("Token() error = %v", err)
		}
		if token != "token-1" {
			t.Errorf("token = %q, want token-1", token)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("token endpoint called %d times, want 1", calls.Load())
	}
}

func TestClientCredentials_RefreshesAfterExpiry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTokenServer(t, &calls, 0)
	defer server.Close()

	now := time.Now()
	source := NewClientCredentials(New(Config{Name: "spotify-auth"}), server.URL, "id", "secret")
	source.now = func() time.Time { return now }

	if _, err := source.Token(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Still inside 3600s - 60s.
	now = now.Add(3539 * time.Second)
	if token, _ := source.Token(context.Background()); token != "token-1" {
		t.Errorf("token = %q before expiry", token)
	}

	now = now.Add(2 * time.Second)
	token, err := source.Token(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if token != "token-2" {
		t.Errorf("token = %q, want token-2 after expiry", token)
	}
}

func TestClientCredentials_ConcurrentCallersShareRefresh(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTokenServer(t, &calls, 50*time.Millisecond)
	defer server.Close()

	source := NewClientCredentials(New(Config{Name: "spotify-auth"}), server.URL, "id", "secret")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := source.Token(context.Background()); err != nil {
				t.Errorf("Token() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("token endpoint called %d times, want 1", calls.Load())
	}
}

func TestClientCredentials_BadCredentials(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := newTokenServer(t, &calls, 0)
	defer server.Close()

	source := NewClientCredentials(New(Config{Name: "spotify-auth"}), server.URL, "id", "wrong")
	_, err := source.Token(context.Background())
	if !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}
