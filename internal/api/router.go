// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/pasarela/internal/middleware"
)

// Routable is implemented by each backend to mount its endpoints.
type Routable interface {
	Routes(r chi.Router)
}

// RouterConfig configures the router built for one listener.
type RouterConfig struct {
	// App names the backend ("clima", "productos") for logs and metrics.
	App string

	CORSOrigins       []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool

	SwaggerEnabled bool

	// HealthChecks are probed by GET /health.
	HealthChecks map[string]HealthCheck
}

// NewRouter builds the Chi router for one listener, mounting every app's
// routes behind the shared middleware stack.
func NewRouter(cfg RouterConfig, apps ...Routable) http.Handler {
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.App = cfg.App
	mwCfg.CORSAllowedOrigins = cfg.CORSOrigins
	if cfg.RateLimitRequests > 0 {
		mwCfg.RateLimitRequests = cfg.RateLimitRequests
	}
	if cfg.RateLimitWindow > 0 {
		mwCfg.RateLimitWindow = cfg.RateLimitWindow
	}
	mwCfg.RateLimitDisabled = cfg.RateLimitDisabled
	mw := NewChiMiddleware(mwCfg)

	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(cfg.App))
	r.Use(Recoverer)
	r.Use(mw.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics(cfg.App))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteErrorMessage(w, http.StatusNotFound, MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteErrorMessage(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/health", healthHandler(cfg.App, cfg.HealthChecks))
	r.Handle("/metrics", promhttp.Handler())

	if cfg.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	// ========================
	// App Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))

		for _, app := range apps {
			app.Routes(r)
		}
	})

	return r
}
