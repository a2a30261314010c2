// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

/*
Package websocket pushes chat events to browsers over gorilla/websocket.

Key Components:

  - Hub: tracks connected clients and broadcasts messages to them
  - Client: one connection with a read and a write goroutine
  - Handler: the GET /ws upgrade endpoint with origin checking

Architecture:

	events.Bus ──Run──▶ Hub.Broadcast ──▶ Client.send ──writePump──▶ browser

Each client has two goroutines:
  - readPump: reads frames, answers {"tipo":"ping"} with {"tipo":"pong"}
  - writePump: writes queued messages and sends keep-alive ping frames

A client whose 256-message buffer is full is disconnected rather than
slowing the hub down.

Frames:

Every frame is {"tipo": <event type>, "datos": <payload>}. The chat backend
emits:

  - mensaje_nuevo: the stored message (id, usuario, texto, timestamp, avatar)
  - mensaje_eliminado: {"id": <message id>}
  - usuario_online: {"usuario": <name>, "ultima_actividad": <timestamp>}

Lifecycle:

RunWithContext is driven by the supervisor tree. When its context is
canceled every client is closed and Done() is closed, after which the
handler answers 503.
*/
package websocket
