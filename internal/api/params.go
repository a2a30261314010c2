// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20 // 1MB

// RequiredQuery returns the trimmed query parameter name, or a
// ValidationError carrying message when it is absent or blank.
func RequiredQuery(r *http.Request, name, message string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", &ValidationError{Message: message}
	}
	return v, nil
}

// QueryDefault returns the trimmed query parameter, or def when blank.
func QueryDefault(r *http.Request, name, def string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(name)); v != "" {
		return v
	}
	return def
}

// QueryInt parses an integer query parameter. The first non-blank name wins,
// so aliases can be passed in order of preference. Blank gives def.
func QueryInt(r *http.Request, def int, names ...string) (int, error) {
	for _, name := range names {
		raw := strings.TrimSpace(r.URL.Query().Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, BadRequest("Parámetro %s inválido", name)
		}
		return v, nil
	}
	return def, nil
}

// QueryFloat parses a float query parameter; ok is false when it is blank.
func QueryFloat(r *http.Request, name string) (v float64, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, BadRequest("Parámetro %s inválido", name)
	}
	return v, true, nil
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PathParam returns a trimmed chi URL parameter.
func PathParam(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// PathInt parses a positive integer chi URL parameter. Non-numeric ids are
// reported as not found with message, matching an unknown id.
func PathInt(r *http.Request, name, message string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v < 1 {
		return 0, NotFound(message)
	}
	return v, nil
}

// DecodeJSON decodes the request body into dst. An empty or malformed body
// is a ValidationError with message.
func DecodeJSON(r *http.Request, dst interface{}, message string) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &ValidationError{Message: message}
	}
	return nil
}
