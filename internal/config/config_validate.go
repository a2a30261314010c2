// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/text/language"

	"github.com/tomtom215/pasarela/internal/logging"
)

// Validate checks the configuration for errors. Sections belonging to a
// disabled backend are not validated.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateUpstream(); err != nil {
		return err
	}
	if err := c.validateListeners(); err != nil {
		return err
	}
	if err := c.validateWeather(); err != nil {
		return err
	}
	if err := c.validateCurrency(); err != nil {
		return err
	}
	if err := c.validateBooks(); err != nil {
		return err
	}
	if err := c.validateMovies(); err != nil {
		return err
	}
	if err := c.validateReddit(); err != nil {
		return err
	}
	if err := c.validateSpotify(); err != nil {
		return err
	}
	if err := c.validateProducts(); err != nil {
		return err
	}
	return c.validateChat()
}

func (c *Config) validateServer() error {
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	if c.IsProduction() && c.hasWildcardCORS() {
		logging.Warn().Msg("CORS_ORIGINS allows any origin in production")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateUpstream() error {
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	b := c.Upstream.Breaker
	if b.Enabled && (b.FailureRatio <= 0 || b.FailureRatio > 1) {
		return fmt.Errorf("upstream.breaker.failure_ratio must be in (0, 1], got %v", b.FailureRatio)
	}
	return nil
}

// validateListeners requires at least one backend and distinct ports.
func (c *Config) validateListeners() error {
	listeners := c.Listeners()
	if len(listeners) == 0 {
		return fmt.Errorf("no backend enabled; set at least one <APP>_ENABLED=true")
	}

	seen := make(map[string]string, len(listeners))
	for _, l := range listeners {
		if other, ok := seen[l.Addr]; ok {
			return fmt.Errorf("%s and %s both listen on %s", other, l.App, l.Addr)
		}
		seen[l.Addr] = l.App
	}

	ports := []struct {
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
	for _, p := range ports {
		if p.enabled && (p.port < 1 || p.port > 65535) {
			return fmt.Errorf("%s port must be between 1 and 65535, got %d", p.app, p.port)
		}
	}
	return nil
}

func (c *Config) validateWeather() error {
	if !c.Weather.Enabled {
		return nil
	}
	if c.Weather.APIKey == "" {
		return fmt.Errorf("OPENWEATHER_API_KEY is required when clima is enabled")
	}
	if err := validateBaseURL("weather.geo_url", c.Weather.GeoURL); err != nil {
		return err
	}
	if err := validateBaseURL("weather.weather_url", c.Weather.WeatherURL); err != nil {
		return err
	}
	return validateLanguage("weather.lang", c.Weather.Lang)
}

func (c *Config) validateCurrency() error {
	if !c.Currency.Enabled {
		return nil
	}
	if c.Currency.APIKey == "" {
		return fmt.Errorf("EXCHANGERATE_API_KEY is required when divisas is enabled")
	}
	return validateBaseURL("currency.base_url", c.Currency.BaseURL)
}

func (c *Config) validateBooks() error {
	if !c.Books.Enabled {
		return nil
	}
	if err := validateBaseURL("books.base_url", c.Books.BaseURL); err != nil {
		return err
	}
	return validateLanguage("books.lang_restrict", c.Books.LangRestrict)
}

func (c *Config) validateMovies() error {
	if !c.Movies.Enabled {
		return nil
	}
	if c.Movies.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required when peliculas is enabled")
	}
	if err := validateBaseURL("movies.base_url", c.Movies.BaseURL); err != nil {
		return err
	}
	if c.Movies.GenreCacheTTL < 0 {
		return fmt.Errorf("TMDB_GENRE_CACHE_TTL must not be negative")
	}
	return validateLanguage("movies.language", c.Movies.Language)
}

func (c *Config) validateReddit() error {
	if !c.Reddit.Enabled {
		return nil
	}
	if c.Reddit.UserAgent == "" {
		return fmt.Errorf("REDDIT_USER_AGENT must not be empty; Reddit rejects anonymous agents")
	}
	if c.Reddit.RequestsPerMinute < 0 {
		return fmt.Errorf("REDDIT_REQUESTS_PER_MINUTE must not be negative")
	}
	return validateBaseURL("reddit.base_url", c.Reddit.BaseURL)
}

func (c *Config) validateSpotify() error {
	if !c.Spotify.Enabled {
		return nil
	}
	if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are required when spotify is enabled")
	}
	if err := validateBaseURL("spotify.api_url", c.Spotify.APIURL); err != nil {
		return err
	}
	return validateBaseURL("spotify.token_url", c.Spotify.TokenURL)
}

func (c *Config) validateProducts() error {
	if !c.Products.Enabled {
		return nil
	}
	switch c.Products.Driver {
	case "duckdb", "postgres":
	default:
		return fmt.Errorf("PRODUCTS_DRIVER must be duckdb or postgres, got %q", c.Products.Driver)
	}
	if c.Products.Driver == "postgres" && c.Products.DSN == "" {
		return fmt.Errorf("PRODUCTS_DSN is required for the postgres driver")
	}
	return nil
}

func (c *Config) validateChat() error {
	if !c.Chat.Enabled {
		return nil
	}
	switch c.Chat.Store {
	case "badger":
	case "firebase":
		if err := validateBaseURL("chat.firebase_url", c.Chat.FirebaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("CHAT_STORE must be badger or firebase, got %q", c.Chat.Store)
	}
	if c.Chat.HistoryLimit < 1 {
		return fmt.Errorf("CHAT_HISTORY_LIMIT must be at least 1, got %d", c.Chat.HistoryLimit)
	}

	ev := c.Chat.Events
	switch ev.Driver {
	case "gochannel":
	case "nats":
		if !ev.EmbeddedNATS && ev.NATSURL == "" {
			return fmt.Errorf("NATS_URL is required for the nats events driver unless NATS_EMBEDDED=true")
		}
	default:
		return fmt.Errorf("CHAT_EVENTS_DRIVER must be gochannel or nats, got %q", ev.Driver)
	}
	if ev.Topic == "" {
		return fmt.Errorf("chat.events.topic must not be empty")
	}
	return nil
}

func validateBaseURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}

// validateLanguage accepts BCP 47 tags such as "es" or "es-MX".
func validateLanguage(key, tag string) error {
	if _, err := language.Parse(tag); err != nil {
		return fmt.Errorf("%s must be a BCP 47 language tag, got %q: %w", key, tag, err)
	}
	return nil
}
