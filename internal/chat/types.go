// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package chat

// Event types published on the bus and forwarded to WebSocket clients.
const (
	EventMessageCreated = "mensaje_nuevo"
	EventMessageDeleted = "mensaje_eliminado"
	EventUserOnline     = "usuario_online"
)

// Mensaje is a stored chat message.
type Mensaje struct {
	ID        string `json:"id"`
	Usuario   string `json:"usuario"`
	Texto     string `json:"texto"`
	Timestamp string `json:"timestamp"`
	Avatar    string `json:"avatar"`
}

// MensajeInput is the body of POST /api/mensajes.
type MensajeInput struct {
	Usuario string `json:"usuario" validate:"required,notblank"`
	Texto   string `json:"texto" validate:"required,notblank"`
	Avatar  string `json:"avatar"`
}

// UsuarioInput is the body of POST /api/usuarios/online.
type UsuarioInput struct {
	Usuario string `json:"usuario" validate:"required,notblank"`
}

// Presencia is the online marker stored per username.
type Presencia struct {
	UltimaActividad string `json:"ultima_actividad"`
	Online          bool   `json:"online"`
}

// MensajeEliminado is the payload of mensaje_eliminado.
type MensajeEliminado struct {
	ID string `json:"id"`
}

// UsuarioOnline is the payload of usuario_online.
type UsuarioOnline struct {
	Usuario         string `json:"usuario"`
	UltimaActividad string `json:"ultima_actividad"`
}
