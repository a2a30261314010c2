// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package config loads Pasarela's configuration from defaults, an optional
// YAML file and environment variables (in that order of precedence, lowest
// first) using koanf.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration. It is resolved once at startup and
// passed down explicitly; no package reads configuration globally.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Upstream UpstreamConfig `koanf:"upstream"`

	Weather  WeatherConfig  `koanf:"weather"`
	Currency CurrencyConfig `koanf:"currency"`
	GitHub   GitHubConfig   `koanf:"github"`
	Books    BooksConfig    `koanf:"books"`
	Movies   MoviesConfig   `koanf:"movies"`
	Reddit   RedditConfig   `koanf:"reddit"`
	Spotify  SpotifyConfig  `koanf:"spotify"`
	Products ProductsConfig `koanf:"products"`
	Chat     ChatConfig     `koanf:"chat"`
}

// ServerConfig holds settings shared by every HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
	SwaggerEnabled  bool          `koanf:"swagger_enabled"`
}

// SecurityConfig holds CORS and inbound rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// UpstreamConfig holds defaults for every outbound HTTP client.
type UpstreamConfig struct {
	// Timeout bounds a single outbound call. A timeout surfaces as a 500.
	Timeout   time.Duration `koanf:"timeout"`
	UserAgent string        `koanf:"user_agent"`
	Breaker   BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the per-upstream circuit breaker.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// WeatherConfig configures the clima backend (ipapi + OpenWeatherMap).
type WeatherConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Port       int    `koanf:"port"`
	GeoURL     string `koanf:"geo_url"`
	WeatherURL string `koanf:"weather_url"`
	APIKey     string `koanf:"api_key"`
	Units      string `koanf:"units"`
	Lang       string `koanf:"lang"`
}

// CurrencyConfig configures the divisas backend (ExchangeRate-API v6).
type CurrencyConfig struct {
	Enabled bool   `koanf:"enabled"`
	Port    int    `koanf:"port"`
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`
}

// GitHubConfig configures the GitHub backend. Token is optional and only
// raises the upstream rate limit.
type GitHubConfig struct {
	Enabled bool   `koanf:"enabled"`
	Port    int    `koanf:"port"`
	BaseURL string `koanf:"base_url"`
	Token   string `koanf:"token"`
}

// BooksConfig configures the libros backend (Google Books v1).
type BooksConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         int    `koanf:"port"`
	BaseURL      string `koanf:"base_url"`
	APIKey       string `koanf:"api_key"`
	LangRestrict string `koanf:"lang_restrict"`
}

// MoviesConfig configures the peliculas backend (TMDB v3).
type MoviesConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Port            int           `koanf:"port"`
	BaseURL         string        `koanf:"base_url"`
	APIKey          string        `koanf:"api_key"`
	Language        string        `koanf:"language"`
	Region          string        `koanf:"region"`
	ImageBaseURL    string        `koanf:"image_base_url"`
	BackdropBaseURL string        `koanf:"backdrop_base_url"`
	GenreCacheTTL   time.Duration `koanf:"genre_cache_ttl"`
}

// RedditConfig configures the Reddit backend (public JSON listing API).
type RedditConfig struct {
	Enabled           bool   `koanf:"enabled"`
	Port              int    `koanf:"port"`
	BaseURL           string `koanf:"base_url"`
	UserAgent         string `koanf:"user_agent"`
	RequestsPerMinute int    `koanf:"requests_per_minute"`
}

// SpotifyConfig configures the Spotify backend (client credentials flow).
type SpotifyConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Port          int           `koanf:"port"`
	APIURL        string        `koanf:"api_url"`
	TokenURL      string        `koanf:"token_url"`
	ClientID      string        `koanf:"client_id"`
	ClientSecret  string        `koanf:"client_secret"`
	Market        string        `koanf:"market"`
	GenreCacheTTL time.Duration `koanf:"genre_cache_ttl"`
}

// ProductsConfig configures the productos backend and its SQL store.
type ProductsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         int    `koanf:"port"`
	Driver       string `koanf:"driver"` // duckdb or postgres
	DSN          string `koanf:"dsn"`
	Seed         bool   `koanf:"seed"`
	MaxOpenConns int    `koanf:"max_open_conns"`
}

// ChatConfig configures the chat backend, its message store and the event
// bus that feeds WebSocket clients.
type ChatConfig struct {
	Enabled       bool         `koanf:"enabled"`
	Port          int          `koanf:"port"`
	Store         string       `koanf:"store"` // badger or firebase
	BadgerPath    string       `koanf:"badger_path"`
	FirebaseURL   string       `koanf:"firebase_url"`
	FirebaseAuth  string       `koanf:"firebase_auth"`
	HistoryLimit  int          `koanf:"history_limit"`
	DefaultAvatar string       `koanf:"default_avatar"`
	Events        EventsConfig `koanf:"events"`
}

// EventsConfig selects the chat event bus transport.
type EventsConfig struct {
	Driver       string `koanf:"driver"` // gochannel or nats
	Topic        string `koanf:"topic"`
	NATSURL      string `koanf:"nats_url"`
	EmbeddedNATS bool   `koanf:"embedded_nats"`
	EmbeddedHost string `koanf:"embedded_host"`
	EmbeddedPort int    `koanf:"embedded_port"`
}

// Listener describes one enabled HTTP backend.
type Listener struct {
	App  string
	Addr string
}

// Listeners returns the enabled backends in a fixed order.
func (c *Config) Listeners() []Listener {
	candidates := []struct {
		app     string
		enabled bool
		port    int
	}{
		{"clima", c.Weather.Enabled, c.Weather.Port},
		{"divisas", c.Currency.Enabled, c.Currency.Port},
		{"github", c.GitHub.Enabled, c.GitHub.Port},
		{"libros", c.Books.Enabled, c.Books.Port},
		{"peliculas", c.Movies.Enabled, c.Movies.Port},
		{"reddit", c.Reddit.Enabled, c.Reddit.Port},
		{"spotify", c.Spotify.Enabled, c.Spotify.Port},
		{"productos", c.Products.Enabled, c.Products.Port},
		{"chat", c.Chat.Enabled, c.Chat.Port},
	}

	listeners := make([]Listener, 0, len(candidates))
	for _, cand := range candidates {
		if !cand.enabled {
			continue
		}
		listeners = append(listeners, Listener{
			App:  cand.app,
			Addr: fmt.Sprintf("%s:%d", c.Server.Host, cand.port),
		})
	}
	return listeners
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
