// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package api

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency of an app (database, store, broker).
type HealthCheck func(ctx context.Context) error

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Estado      string            `json:"estado"`
	App         string            `json:"app"`
	Componentes map[string]string `json:"componentes,omitempty"`
	Timestamp   string            `json:"timestamp"`
}

// healthHandler reports "ok", or "degradado" with 503 when any check fails.
func healthHandler(app string, checks map[string]HealthCheck) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Estado:    "ok",
			App:       app,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if len(names) > 0 {
			resp.Componentes = make(map[string]string, len(names))
		}

		for _, name := range names {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			err := checks[name](ctx)
			cancel()
			if err != nil {
				resp.Estado = "degradado"
				resp.Componentes[name] = err.Error()
				continue
			}
			resp.Componentes[name] = "ok"
		}

		status := http.StatusOK
		if resp.Estado != "ok" {
			status = http.StatusServiceUnavailable
		}
		WriteJSON(w, status, resp)
	}
}
