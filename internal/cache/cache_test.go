// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	c := New[[]string]("test_getset", time.Minute)
	if _, ok := c.Get("generos"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set("generos", []string{"pop", "rock"})
	got, ok := c.Get("generos")
	if !ok || len(got) != 2 {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	c.Delete("generos")
	if _, ok := c.Get("generos"); ok {
		t.Error("deleted key should miss")
	}
}

func TestCache_Expiration(t *testing.T) {
	t.Parallel()

	now := time.Now()
	c := New[int]("test_expiry", time.Minute)
	c.now = func() time.Time { return now }

	c.Set("k", 1)
	now = now.Add(59 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry should still be valid")
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, Len = %d", c.Len())
	}
}

func TestCache_ZeroTTLDisables(t *testing.T) {
	t.Parallel()

	c := New[int]("test_disabled", 0)
	c.Set("k", 1)
	if _, ok := c.Get("k"); ok {
		t.Error("zero TTL cache must not store")
	}

	var loads atomic.Int32
	for i := 0; i < 3; i++ {
		_, _ = c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
			loads.Add(1)
			return 1, nil
		})
	}
	if loads.Load() != 3 {
		t.Errorf("loads = %d, want 3", loads.Load())
	}
}

func TestCache_GetOrLoad(t *testing.T) {
	t.Parallel()

	c := New[string]("test_load", time.Minute)
	var loads atomic.Int32
	release := make(chan struct{})

	load := func(context.Context) (string, error) {
		loads.Add(1)
		<-release
		return "valor", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), "k", load)
			if err != nil || v != "valor" {
				t.Errorf("GetOrLoad = %q, %v", v, err)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if loads.Load() != 1 {
		t.Errorf("loads = %d, want 1", loads.Load())
	}

	// Served from cache now.
	if _, err := c.GetOrLoad(context.Background(), "k", load); err != nil {
		t.Fatal(err)
	}
	if loads.Load() != 1 {
		t.Errorf("cached value reloaded, loads = %d", loads.Load())
	}
}

func TestCache_FailedLoadNotCached(t *testing.T) {
	t.Parallel()

	c := New[int]("test_fail", time.Minute)
	boom := errors.New("upstream down")

	if _, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	v, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("retry after failure = %d, %v", v, err)
	}
}

func TestCache_GetOrLoadSurvivesCallerCancel(t *testing.T) {
	t.Parallel()

	c := New[string]("test_cancel", time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var loads atomic.Int32

	load := func(ctx context.Context) (string, error) {
		if loads.Add(1) == 1 {
			close(started)
		}
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "generos", nil
	}

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(first, "k", load)
		firstErr <- err
	}()
	<-started

	second := make(chan string, 1)
	go func() {
		v, err := c.GetOrLoad(context.Background(), "k", load)
		if err != nil {
			t.Errorf("waiter failed after the first caller cancelled: %v", err)
		}
		second <- v
	}()

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled caller err = %v, want context.Canceled", err)
	}

	// Give the second caller time to join the in-flight load.
	time.Sleep(20 * time.Millisecond)
	close(release)

	if v := <-second; v != "generos" {
		t.Errorf("waiter value = %q, want generos", v)
	}
	if loads.Load() != 1 {
		t.Errorf("loads = %d, want 1", loads.Load())
	}
	if v, ok := c.Get("k"); !ok || v != "generos" {
		t.Errorf("load result not cached: %q, %v", v, ok)
	}
}
