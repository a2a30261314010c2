// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

/*
Package services adapts Pasarela's components to suture.Service.

# Wrappers

	HTTPServerService    ListenAndServe/Shutdown of one backend listener
	WebSocketHubService  websocket.Hub.RunWithContext
	EmbeddedNATSService  watches and stops events.EmbeddedServer
	EventRelayService    events.Bus.Run -> websocket.Hub.Broadcast

Each wrapper depends on a small interface rather than the concrete type, so
tests use fakes and the packages it wraps never import suture.

# Return values

	nil                     stopped cleanly, not restarted
	error                   crashed, restarted with backoff
	ctx.Err()               shutdown requested
	suture.ErrDoNotRestart  permanent stop (embedded broker died)

Every wrapper implements fmt.Stringer so suture logs it by name, for
example "http-productos" or "event-relay".
*/
package services
