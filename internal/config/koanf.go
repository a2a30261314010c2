// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/pasarela/config.yaml",
	"/etc/pasarela/config.yml",
}

// ConfigPathEnvVar names the environment variable holding an explicit
// configuration file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
			SwaggerEnabled:  true,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Upstream: UpstreamConfig{
			Timeout:   10 * time.Second,
			UserAgent: "pasarela/1.0",
			Breaker: BreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Weather: WeatherConfig{
			Enabled:    false, // needs an OpenWeatherMap key
			Port:       5001,
			GeoURL:     "https://ipapi.co",
			WeatherURL: "https://api.openweathermap.org/data/2.5",
			Units:      "metric",
			Lang:       "es",
		},
		Currency: CurrencyConfig{
			Enabled: false, // needs an ExchangeRate-API key
			Port:    5002,
			BaseURL: "https://v6.exchangerate-api.com/v6",
		},
		GitHub: GitHubConfig{
			Enabled: true,
			Port:    5003,
			BaseURL: "https://api.github.com",
		},
		Books: BooksConfig{
			Enabled:      true,
			Port:         5004,
			BaseURL:      "https://www.googleapis.com/books/v1",
			LangRestrict: "es",
		},
		Movies: MoviesConfig{
			Enabled:         false, // needs a TMDB key
			Port:            5005,
			BaseURL:         "https://api.themoviedb.org/3",
			Language:        "es-MX",
			Region:          "MX",
			ImageBaseURL:    "https://image.tmdb.org/t/p/w500",
			BackdropBaseURL: "https://image.tmdb.org/t/p/original",
			GenreCacheTTL:   time.Hour,
		},
		Reddit: RedditConfig{
			Enabled:           true,
			Port:              5006,
			BaseURL:           "https://www.reddit.com",
			UserAgent:         "pasarela/1.0 (reddit JSON reader)",
			RequestsPerMinute: 60,
		},
		Spotify: SpotifyConfig{
			Enabled:       false, // needs client credentials
			Port:          5007,
			APIURL:        "https://api.spotify.com/v1",
			TokenURL:      "https://accounts.spotify.com/api/token",
			Market:        "MX",
			GenreCacheTTL: time.Hour,
		},
		Products: ProductsConfig{
			Enabled:      true,
			Port:         5008,
			Driver:       "duckdb",
			DSN:          "productos.duckdb",
			Seed:         true,
			MaxOpenConns: 4,
		},
		Chat: ChatConfig{
			Enabled:       true,
			Port:          5009,
			Store:         "badger",
			BadgerPath:    "data/chat",
			HistoryLimit:  50,
			DefaultAvatar: "👤",
			Events: EventsConfig{
				Driver:       "gochannel",
				Topic:        "chat.eventos",
				NATSURL:      "nats://127.0.0.1:4222",
				EmbeddedNATS: false,
				EmbeddedHost: "127.0.0.1",
				EmbeddedPort: 4222,
			},
		},
	}
}

// Load builds the configuration from defaults, the optional config file and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists keys that may arrive as comma-separated strings
// from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf keys.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",
	"swagger_enabled":       "server.swagger_enabled",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"upstream_timeout":         "upstream.timeout",
	"upstream_user_agent":      "upstream.user_agent",
	"circuit_breaker_enabled":  "upstream.breaker.enabled",
	"circuit_breaker_timeout":  "upstream.breaker.timeout",
	"circuit_breaker_interval": "upstream.breaker.interval",

	"clima_enabled":       "weather.enabled",
	"clima_port":          "weather.port",
	"ipapi_url":           "weather.geo_url",
	"openweather_url":     "weather.weather_url",
	"openweather_api_key": "weather.api_key",
	"openweather_lang":    "weather.lang",

	"divisas_enabled":      "currency.enabled",
	"divisas_port":         "currency.port",
	"exchangerate_url":     "currency.base_url",
	"exchangerate_api_key": "currency.api_key",

	"github_enabled": "github.enabled",
	"github_port":    "github.port",
	"github_api_url": "github.base_url",
	"github_token":   "github.token",

	"libros_enabled":        "books.enabled",
	"libros_port":           "books.port",
	"google_books_url":      "books.base_url",
	"google_books_api_key":  "books.api_key",
	"google_books_language": "books.lang_restrict",

	"peliculas_enabled":    "movies.enabled",
	"peliculas_port":       "movies.port",
	"tmdb_url":             "movies.base_url",
	"tmdb_api_key":         "movies.api_key",
	"tmdb_language":        "movies.language",
	"tmdb_region":          "movies.region",
	"tmdb_genre_cache_ttl": "movies.genre_cache_ttl",

	"reddit_enabled":             "reddit.enabled",
	"reddit_port":                "reddit.port",
	"reddit_url":                 "reddit.base_url",
	"reddit_user_agent":          "reddit.user_agent",
	"reddit_requests_per_minute": "reddit.requests_per_minute",

	"spotify_enabled":         "spotify.enabled",
	"spotify_port":            "spotify.port",
	"spotify_api_url":         "spotify.api_url",
	"spotify_token_url":       "spotify.token_url",
	"spotify_client_id":       "spotify.client_id",
	"spotify_client_secret":   "spotify.client_secret",
	"spotify_market":          "spotify.market",
	"spotify_genre_cache_ttl": "spotify.genre_cache_ttl",

	"productos_enabled": "products.enabled",
	"productos_port":    "products.port",
	"products_driver":   "products.driver",
	"products_dsn":      "products.dsn",
	"products_seed":     "products.seed",

	"chat_enabled":       "chat.enabled",
	"chat_port":          "chat.port",
	"chat_store":         "chat.store",
	"chat_badger_path":   "chat.badger_path",
	"firebase_url":       "chat.firebase_url",
	"firebase_auth":      "chat.firebase_auth",
	"chat_history_limit": "chat.history_limit",
	"chat_events_driver": "chat.events.driver",
	"chat_events_topic":  "chat.events.topic",
	"nats_url":           "chat.events.nats_url",
	"nats_embedded":      "chat.events.embedded_nats",
	"nats_embedded_port": "chat.events.embedded_port",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
