// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrNotFound is wrapped by UpstreamError when the upstream answered 404.
var ErrNotFound = errors.New("recurso no encontrado")

// maxErrorBodySize limits how much of a failed response body is kept for
// diagnostics.
const maxErrorBodySize = 64 * 1024 // 64KB

// UpstreamError describes a failed outbound call: a non-success status, a
// transport failure, a timeout, a rejected circuit or a malformed body.
type UpstreamError struct {
	// Upstream is the client name, e.g. "github" or "tmdb".
	Upstream string

	// StatusCode is the HTTP status, or 0 when no response arrived.
	StatusCode int

	// Body holds up to 64KB of the response body for non-success statuses.
	Body string

	Err error
}

func (e *UpstreamError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("%s: recurso no encontrado", e.Upstream)
	case errors.Is(e.Err, gobreaker.ErrOpenState), errors.Is(e.Err, gobreaker.ErrTooManyRequests):
		return fmt.Sprintf("%s: servicio no disponible temporalmente", e.Upstream)
	case errors.Is(e.Err, context.DeadlineExceeded):
		return fmt.Sprintf("%s: tiempo de espera agotado", e.Upstream)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: respuesta inesperada (HTTP %d)", e.Upstream, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Upstream, e.Err)
	default:
		return fmt.Sprintf("%s: error desconocido", e.Upstream)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether the upstream rejected the request with a
// 4xx status. Such failures are caused by the caller's input and do not
// count against the circuit breaker.
func (e *UpstreamError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// statusError builds the error for a non-2xx response.
func statusError(name string, resp *http.Response) *UpstreamError {
	ue := &UpstreamError{
		Upstream:   name,
		StatusCode: resp.StatusCode,
		Body:       string(readBodyForError(resp.Body)),
	}
	if resp.StatusCode == http.StatusNotFound {
		ue.Err = ErrNotFound
	} else {
		ue.Err = fmt.Errorf("status %d", resp.StatusCode)
	}
	return ue
}

// readBodyForError reads the response body for error reporting (max 64KB).
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsUpstreamError unwraps err into an *UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
