// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/validation"
)

// Response and error messages.
const (
	MsgRequired     = "Usuario y texto requeridos"
	MsgUserRequired = "Usuario requerido"
	MsgDeleted      = "Mensaje eliminado"
	MsgNotFound     = "Mensaje no encontrado"
	MsgRegistered   = "Usuario registrado"
	MsgStoreFailure = "Error al acceder al chat"
)

// Handler exposes the chat endpoints.
type Handler struct {
	svc *Service
	ws  http.Handler
}

// NewHandler creates the handler. ws serves GET /ws and may be nil.
func NewHandler(svc *Service, ws http.Handler) *Handler {
	return &Handler{svc: svc, ws: ws}
}

// Routes mounts the chat endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/api/mensajes", api.Handle(h.Mensajes))
	r.Post("/api/mensajes", api.Handle(h.Enviar))
	r.Delete("/api/mensajes/{id}", api.Handle(h.Eliminar))
	r.Get("/api/usuarios/online", api.Handle(h.Online))
	r.Post("/api/usuarios/online", api.Handle(h.RegistrarOnline))
	if h.ws != nil {
		r.Get("/ws", h.ws.ServeHTTP)
	}
}

func storeError(err error) error {
	if errors.Is(err, ErrMessageNotFound) {
		return api.NotFound(MsgNotFound)
	}
	return api.Internal(MsgStoreFailure, err)
}

// Mensajes returns the chat history
//
// @Summary Latest messages
// @Description Returns the most recent messages ordered by timestamp, oldest first
// @Tags Chat
// @Produce json
// @Success 200 {array} chat.Mensaje
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/mensajes [get]
func (h *Handler) Mensajes(w http.ResponseWriter, r *http.Request) error {
	msgs, err := h.svc.Messages(r.Context())
	if err != nil {
		return storeError(err)
	}
	return api.OK(w, msgs)
}

// Enviar posts a message
//
// @Summary Send message
// @Tags Chat
// @Accept json
// @Produce json
// @Param mensaje body chat.MensajeInput true "Message"
// @Success 201 {object} chat.Mensaje
// @Failure 400 {object} api.ErrorEnvelope "Missing usuario or texto"
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/mensajes [post]
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) error {
	var in MensajeInput
	if err := api.DecodeJSON(r, &in, MsgRequired); err != nil {
		return err
	}
	if verr := validation.ValidateStruct(&in); verr != nil {
		return api.BadRequest(MsgRequired)
	}

	m, err := h.svc.Send(r.Context(), in)
	if err != nil {
		return storeError(err)
	}
	return api.Created(w, m)
}

// Eliminar deletes a message
//
// @Summary Delete message
// @Tags Chat
// @Produce json
// @Param id path string true "Message id"
// @Success 200 {object} api.Message
// @Failure 404 {object} api.ErrorEnvelope "Message not found"
// @Router /api/mensajes/{id} [delete]
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.Delete(r.Context(), api.PathParam(r, "id")); err != nil {
		return storeError(err)
	}
	return api.OK(w, api.Message{Mensaje: MsgDeleted})
}

// RegistrarOnline marks a user online
//
// @Summary Register online user
// @Tags Chat
// @Accept json
// @Produce json
// @Param usuario body chat.UsuarioInput true "User"
// @Success 200 {object} api.Message
// @Failure 400 {object} api.ErrorEnvelope "Missing usuario"
// @Router /api/usuarios/online [post]
func (h *Handler) RegistrarOnline(w http.ResponseWriter, r *http.Request) error {
	var in UsuarioInput
	if err := api.DecodeJSON(r, &in, MsgUserRequired); err != nil {
		return err
	}
	if verr := validation.ValidateStruct(&in); verr != nil {
		return api.BadRequest(MsgUserRequired)
	}

	if err := h.svc.MarkOnline(r.Context(), in.Usuario); err != nil {
		return storeError(err)
	}
	return api.OK(w, api.Message{Mensaje: MsgRegistered})
}

// Online lists online users
//
// @Summary Online users
// @Tags Chat
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/usuarios/online [get]
func (h *Handler) Online(w http.ResponseWriter, r *http.Request) error {
	usuarios, err := h.svc.Online(r.Context())
	if err != nil {
		return storeError(err)
	}
	return api.OK(w, usuarios)
}
