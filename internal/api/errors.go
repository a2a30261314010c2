// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package api holds the HTTP plumbing shared by every backend: the Chi
// router and middleware stack, the JSON error envelope, request parameter
// helpers and the health endpoint.
//
// errors.go - Error taxonomy and its mapping to HTTP status codes
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/pasarela/internal/upstream"
)

// Generic messages used when no domain-specific message applies.
const (
	MsgInternal         = "Error interno del servidor"
	MsgNotFound         = "Recurso no encontrado"
	MsgRouteNotFound    = "Ruta no encontrada"
	MsgMethodNotAllowed = "Método no permitido"
	MsgTooManyRequests  = "Demasiadas solicitudes"
	MsgInvalidJSON      = "JSON inválido"
)

// ValidationError is a missing or invalid input. It maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError is an unknown local record or an upstream 404. It maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InternalError is a local failure (storage, encoding). It maps to 500 and
// only Message is exposed to the client.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error { return e.Err }

// BadRequest returns a ValidationError with a formatted message.
func BadRequest(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a NotFoundError with message.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// Internal wraps err as an InternalError exposing message.
func Internal(message string, err error) error {
	return &InternalError{Message: message, Err: err}
}

// NotFoundIfUpstream404 converts an upstream 404 into a NotFoundError with
// message and returns every other error unchanged.
func NotFoundIfUpstream404(err error, message string) error {
	if upstream.IsNotFound(err) {
		return NotFound(message)
	}
	return err
}

// StatusFor maps err to the HTTP status and the message placed in the error
// envelope.
func StatusFor(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Message
	}

	if upstream.IsNotFound(err) {
		return http.StatusNotFound, MsgNotFound
	}

	if ue, ok := upstream.AsUpstreamError(err); ok {
		return http.StatusInternalServerError, ue.Error()
	}

	var ie *InternalError
	if errors.As(err, &ie) {
		return http.StatusInternalServerError, ie.Message
	}

	return http.StatusInternalServerError, MsgInternal
}
