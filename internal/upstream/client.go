// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package upstream is the outbound HTTP layer shared by every backend. A
// Client wraps one third-party JSON API with a bounded timeout, a circuit
// breaker, an optional request rate limit and optional bearer-token
// authentication, and turns every failure into an *UpstreamError.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/logging"
	"github.com/tomtom215/pasarela/internal/metrics"
)

// maxBodySize bounds successful response bodies.
const maxBodySize = 10 << 20 // 10MB

// TokenSource supplies a bearer token for each request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config configures one Client.
type Config struct {
	// Name labels logs, metrics and the circuit breaker ("github", "tmdb").
	Name string

	// BaseURL is prefixed to every request path. No trailing slash.
	BaseURL string

	// Timeout bounds each call including reading the body.
	Timeout time.Duration

	UserAgent string

	// Headers and Query are added to every request (API keys, versions).
	Headers map[string]string
	Query   url.Values

	Breaker config.BreakerConfig

	// RequestsPerMinute throttles outbound calls; 0 disables throttling.
	RequestsPerMinute int

	// Auth adds "Authorization: Bearer <token>" when set.
	Auth TokenSource

	// HTTPClient overrides the default transport (tests).
	HTTPClient *http.Client
}

// Request describes one outbound call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header

	// Form is sent as application/x-www-form-urlencoded.
	Form url.Values

	// JSON is marshaled as the request body when Form is nil.
	JSON interface{}

	// NoAuth skips the client's TokenSource.
	NoAuth bool
}

// Client performs calls against one upstream API. It is safe for
// concurrent use.
type Client struct {
	name      string
	baseURL   string
	timeout   time.Duration
	userAgent string
	headers   map[string]string
	query     url.Values
	auth      TokenSource
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker[[]byte]
	limiter   *rate.Limiter
}

// Defaults returns a Config for name and baseURL carrying the shared
// timeout, user agent and circuit breaker settings.
func Defaults(name, baseURL string, up config.UpstreamConfig) Config {
	return Config{
		Name:      name,
		BaseURL:   baseURL,
		Timeout:   up.Timeout,
		UserAgent: up.UserAgent,
		Breaker:   up.Breaker,
	}
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		name:      cfg.Name,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   timeout,
		userAgent: cfg.UserAgent,
		headers:   cfg.Headers,
		query:     cfg.Query,
		auth:      cfg.Auth,
		http:      httpClient,
	}

	if cfg.Breaker.Enabled {
		c.breaker = newBreaker(cfg.Name, cfg.Breaker)
	}

	if cfg.RequestsPerMinute > 0 {
		burst := cfg.RequestsPerMinute / 6
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), burst)
	}

	return c
}

// Name returns the client's label.
func (c *Client) Name() string {
	return c.name
}

// Get issues a GET to path with query and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// PostForm issues a form-encoded POST and decodes the JSON body into out.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, header http.Header, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Form: form, Header: header}, out)
}

// Do performs req and decodes a successful JSON body into out. out may be
// nil when the body is not needed.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	if c.limiter != nil {
		start := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			return &UpstreamError{Upstream: c.name, Err: fmt.Errorf("límite de solicitudes: %w", err)}
		}
		metrics.UpstreamRateLimitWait.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	}

	if c.auth != nil && !req.NoAuth {
		token, err := c.auth.Token(ctx)
		if err != nil {
			return err
		}
		if req.Header == nil {
			req.Header = http.Header{}
		} else {
			req.Header = req.Header.Clone()
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	body, err := c.execute(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Upstream: c.name, Err: fmt.Errorf("respuesta JSON inválida: %w", err)}
	}
	return nil
}

// execute runs the round trip through the circuit breaker when enabled.
func (c *Client) execute(ctx context.Context, req Request) ([]byte, error) {
	call := func() ([]byte, error) {
		return c.roundTrip(ctx, req)
	}
	if c.breaker == nil {
		return call()
	}

	body, err := c.breaker.Execute(call)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Str("upstream", c.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &UpstreamError{Upstream: c.name, Err: err}
		}
		if isSuccessful(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		}
		counts := c.breaker.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, req Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, &UpstreamError{Upstream: c.name, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.RecordUpstreamRequest(c.name, 0, time.Since(start))
		logging.Ctx(ctx).Warn().
			Str("upstream", c.name).
			Str("method", httpReq.Method).
			Str("path", req.Path).
			Err(err).
			Msg("upstream request failed")
		return nil, &UpstreamError{Upstream: c.name, Err: fmt.Errorf("solicitud fallida: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstreamRequest(c.name, resp.StatusCode, time.Since(start))
		ue := statusError(c.name, resp)
		logging.Ctx(ctx).Debug().
			Str("upstream", c.name).
			Str("path", req.Path).
			Int("status", resp.StatusCode).
			Msg("upstream returned non-success status")
		return nil, ue
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	metrics.RecordUpstreamRequest(c.name, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &UpstreamError{Upstream: c.name, StatusCode: 0, Err: fmt.Errorf("lectura de respuesta fallida: %w", err)}
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := req.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + target
	}
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("URL inválida: %w", err)
	}

	query := u.Query()
	for k, vs := range c.query {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	for k, vs := range req.Query {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()

	var body io.Reader = http.NoBody
	contentType := ""
	switch {
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.JSON != nil:
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return httpReq, nil
}
