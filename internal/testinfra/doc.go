// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package testinfra provides test infrastructure shared by package tests.
//
// # Fake Upstreams
//
// FakeUpstream is an httptest server standing in for a third-party API. It
// serves canned JSON per path and records every request, so tests can assert
// both the reshaped response and the outbound call that produced it:
//
//	fake := testinfra.NewFakeUpstream(t)
//	fake.JSON("/users/octocat", http.StatusOK, `{"login":"octocat"}`)
//	svc := github.NewService(fake.URL(), ...)
//	...
//	if fake.Hits("/users/octocat") != 1 { ... }
//
// # Containers
//
// Files behind the integration build tag use testcontainers-go to start real
// dependencies (PostgreSQL for the product store):
//
//	go test -tags integration ./internal/products/...
//
// Docker must be available; tests skip otherwise.
package testinfra
