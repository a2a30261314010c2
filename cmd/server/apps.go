// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/books"
	"github.com/tomtom215/pasarela/internal/chat"
	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/currency"
	"github.com/tomtom215/pasarela/internal/events"
	"github.com/tomtom215/pasarela/internal/github"
	"github.com/tomtom215/pasarela/internal/logging"
	"github.com/tomtom215/pasarela/internal/movies"
	"github.com/tomtom215/pasarela/internal/products"
	"github.com/tomtom215/pasarela/internal/reddit"
	"github.com/tomtom215/pasarela/internal/spotify"
	"github.com/tomtom215/pasarela/internal/supervisor"
	"github.com/tomtom215/pasarela/internal/supervisor/services"
	"github.com/tomtom215/pasarela/internal/weather"
	ws "github.com/tomtom215/pasarela/internal/websocket"
)

// errHubStopped is reported by the chat health check once the hub exits.
var errHubStopped = errors.New("hub detenido")

// backends holds every component built from the configuration. Handlers
// are keyed by app name, matching config.Listener.App.
type backends struct {
	cfg      *config.Config
	handlers map[string]http.Handler

	products *products.Store
	chat     chat.Store
	bus      *events.Bus
	broker   *events.EmbeddedServer
	hub      *ws.Hub
}

// newBackends builds the handler of every enabled backend. On error,
// whatever was opened is closed.
func newBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	b := &backends{cfg: cfg, handlers: make(map[string]http.Handler)}
	if err := b.open(ctx); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

func (b *backends) open(ctx context.Context) error {
	cfg := b.cfg

	up := cfg.Upstream
	if cfg.Weather.Enabled {
		b.mount("clima", nil, weather.NewHandler(weather.NewService(cfg.Weather, up)))
	}
	if cfg.Currency.Enabled {
		b.mount("divisas", nil, currency.NewHandler(currency.NewService(cfg.Currency, up)))
	}
	if cfg.GitHub.Enabled {
		b.mount("github", nil, github.NewHandler(github.NewService(cfg.GitHub, up)))
	}
	if cfg.Books.Enabled {
		b.mount("libros", nil, books.NewHandler(books.NewService(cfg.Books, up)))
	}
	if cfg.Movies.Enabled {
		b.mount("peliculas", nil, movies.NewHandler(movies.NewService(cfg.Movies, up)))
	}
	if cfg.Reddit.Enabled {
		b.mount("reddit", nil, reddit.NewHandler(reddit.NewService(cfg.Reddit, up)))
	}
	if cfg.Spotify.Enabled {
		b.mount("spotify", nil, spotify.NewHandler(spotify.NewService(cfg.Spotify, up)))
	}

	if cfg.Products.Enabled {
		store, err := products.Open(ctx, cfg.Products)
		if err != nil {
			return fmt.Errorf("products store: %w", err)
		}
		b.products = store
		logging.Info().Str("driver", cfg.Products.Driver).Msg("Products store ready")

		b.mount("productos", map[string]api.HealthCheck{"base_de_datos": b.products.Ping},
			products.NewHandler(b.products))
	}

	if cfg.Chat.Enabled {
		return b.openChat()
	}
	return nil
}

func (b *backends) openChat() error {
	cc := b.cfg.Chat

	var err error
	switch cc.Store {
	case "firebase":
		b.chat = chat.NewFirebaseStore(cc.FirebaseURL, cc.FirebaseAuth, b.cfg.Upstream)
	default:
		store, err := chat.OpenBadger(cc.BadgerPath)
		if err != nil {
			return fmt.Errorf("chat store: %w", err)
		}
		b.chat = store
	}

	url := ""
	if cc.Events.Driver == events.DriverNATS && cc.Events.EmbeddedNATS {
		b.broker, err = events.StartEmbedded(cc.Events.EmbeddedHost, cc.Events.EmbeddedPort)
		if err != nil {
			return fmt.Errorf("embedded NATS: %w", err)
		}
		url = b.broker.ClientURL()
		logging.Info().Str("url", url).Msg("Embedded NATS server started")
	}

	b.bus, err = events.Open(cc.Events, url, logging.NewWatermillAdapter())
	if err != nil {
		return fmt.Errorf("chat events: %w", err)
	}
	logging.Info().
		Str("store", cc.Store).
		Str("events", b.bus.Driver()).
		Str("topic", b.bus.Topic()).
		Msg("Chat ready")

	b.hub = ws.NewHub()
	svc := chat.NewService(b.chat, b.bus, cc)

	checks := map[string]api.HealthCheck{
		"almacen":     svc.Ping,
		"tiempo_real": b.hubAlive,
	}
	b.mount("chat", checks, chat.NewHandler(svc, ws.NewHandler(b.hub, b.cfg.Security.CORSOrigins)))
	return nil
}

func (b *backends) hubAlive(context.Context) error {
	select {
	case <-b.hub.Done():
		return errHubStopped
	default:
		return nil
	}
}

func (b *backends) mount(app string, checks map[string]api.HealthCheck, routes api.Routable) {
	sec := b.cfg.Security
	b.handlers[app] = api.NewRouter(api.RouterConfig{
		App:               app,
		CORSOrigins:       sec.CORSOrigins,
		RateLimitRequests: sec.RateLimitReqs,
		RateLimitWindow:   sec.RateLimitWindow,
		RateLimitDisabled: sec.RateLimitDisabled,
		SwaggerEnabled:    b.cfg.Server.SwaggerEnabled,
		HealthChecks:      checks,
	}, routes)
}

// Handler returns the router of app, or nil when it is disabled.
func (b *backends) Handler(app string) http.Handler {
	return b.handlers[app]
}

// Register adds every listener and background service to tree.
func (b *backends) Register(tree *supervisor.SupervisorTree) {
	if b.broker != nil {
		tree.AddEventsService(services.NewEmbeddedNATSService(b.broker))
	}
	if b.hub != nil {
		tree.AddMessagingService(services.NewWebSocketHubService(b.hub))
		tree.AddMessagingService(services.NewEventRelayService(b.bus, b.hub))
	}

	srv := b.cfg.Server
	for _, l := range b.cfg.Listeners() {
		handler := b.handlers[l.App]
		if handler == nil {
			continue
		}
		server := &http.Server{
			Addr:              l.Addr,
			Handler:           handler,
			ReadTimeout:       srv.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      srv.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		}
		tree.AddAPIService(services.NewHTTPServerService("http-"+l.App, server, srv.ShutdownTimeout))
		logging.Info().Str("app", l.App).Str("addr", l.Addr).Msg("HTTP listener added")
	}
}

// Close releases the bus, the stores and the embedded broker, in that
// order. Errors are logged.
func (b *backends) Close() {
	if b.bus != nil {
		if err := b.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
	if b.chat != nil {
		if err := b.chat.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing chat store")
		}
	}
	if b.products != nil {
		if err := b.products.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing products store")
		}
	}
	if b.broker != nil && b.broker.Running() {
		b.broker.Shutdown()
	}
}
