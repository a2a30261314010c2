// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

/*
Package events carries chat events between the HTTP handlers that produce
them and the WebSocket hub that fans them out to browsers.

# Transports

Two Watermill transports are supported, selected by chat.events.driver:

  - gochannel: in-process Go channels (default). Events never leave the
    process, which is enough for a single instance.
  - nats: core NATS subjects through watermill-nats. Every instance
    subscribes without a queue group, so each one receives every event and
    forwards it to its own WebSocket clients.

For development without a broker, NATS_EMBEDDED=true starts an in-process
nats-server (see StartEmbedded) and points the bus at it.

# Wire Format

Each Watermill message carries one JSON-encoded Event:

	{"tipo": "mensaje_nuevo", "datos": {...}, "timestamp": "2024-01-01T12:00:00Z"}

The "tipo" metadata key duplicates Event.Tipo so consumers can route
without decoding the payload.

# Usage

	bus, err := events.Open(cfg.Chat.Events, "", logging.NewWatermillAdapter())
	...
	_ = bus.Publish(ctx, "mensaje_nuevo", msg)

	// in a supervised service
	err := bus.Run(ctx, func(ev events.Event) { hub.Broadcast(ev.Tipo, ev.Datos) })
*/
package events
