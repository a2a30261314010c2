// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/supervisor"
	"github.com/tomtom215/pasarela/internal/testinfra"
)

func testConfig(githubURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			ShutdownTimeout: time.Second,
			Environment:     "development",
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
		Upstream: config.UpstreamConfig{Timeout: 2 * time.Second},
		GitHub: config.GitHubConfig{
			Enabled: true,
			Port:    15003,
			BaseURL: githubURL,
		},
		Products: config.ProductsConfig{
			Enabled: true,
			Port:    15008,
			Driver:  "duckdb",
			Seed:    true,
		},
		Chat: config.ChatConfig{
			Enabled:      true,
			Port:         15009,
			Store:        "badger",
			HistoryLimit: 50,
			Events: config.EventsConfig{
				Driver: "gochannel",
				Topic:  "chat.test",
			},
		},
	}
}

func TestNewBackends(t *testing.T) {
	fake := testinfra.NewFakeUpstream(t)
	b, err := newBackends(context.Background(), testConfig(fake.URL()))
	if err != nil {
		t.Fatalf("newBackends() error = %v", err)
	}
	defer b.Close()

	for _, app := range []string{"github", "productos", "chat"} {
		h := b.Handler(app)
		if h == nil {
			t.Fatalf("no handler for %s", app)
		}
		rec := testinfra.Serve(h, http.MethodGet, "/health", "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s /health = %d, body = %s", app, rec.Code, rec.Body.String())
		}
	}
	if b.Handler("clima") != nil {
		t.Error("disabled backend should have no handler")
	}

	rec := testinfra.Serve(b.Handler("productos"), http.MethodGet, "/api/productos", "")
	if got := len(testinfra.DecodeArray(t, rec.Body.Bytes())); got != 5 {
		t.Errorf("seeded products = %d, want 5", got)
	}

	// Routes belong to their own listener only.
	rec = testinfra.Serve(b.Handler("github"), http.MethodGet, "/api/productos", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("github listener served /api/productos: %d", rec.Code)
	}
}

func TestNewBackends_ChatHealthAfterHubStops(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.GitHub.Enabled = false
	cfg.Products.Enabled = false

	b, err := newBackends(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newBackends() error = %v", err)
	}
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = b.hub.RunWithContext(ctx)
		close(done)
	}()
	cancel()
	<-done

	rec := testinfra.Serve(b.Handler("chat"), http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("/health after hub stop = %d, want 503", rec.Code)
	}
}

func TestNewBackends_InvalidChatStore(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Chat.BadgerPath = "/dev/null/chat"

	if _, err := newBackends(context.Background(), cfg); err == nil {
		t.Fatal("expected an error opening badger under /dev/null")
	}
}

func TestRegister(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	b, err := newBackends(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatal(err)
	}
	b.Register(tree)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	// The chat listener comes up under supervision.
	deadline := time.Now().Add(3 * time.Second)
	var resp *http.Response
	for time.Now().Before(deadline) {
		resp, err = http.Get("http://127.0.0.1:15009/health")
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("chat listener not reachable: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health = %d", resp.StatusCode)
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}
}
