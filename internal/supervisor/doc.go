// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

/*
Package supervisor runs Pasarela's long-running services under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("pasarela")
	├── EventsSupervisor ("events-layer")
	│   └── EmbeddedNATSService (if NATS_EMBEDDED=true)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService (if chat is enabled)
	│   └── EventRelayService (bus -> hub)
	└── APISupervisor ("api-layer")
	    ├── HTTPServerService "http-clima"
	    ├── HTTPServerService "http-github"
	    └── ... one per enabled backend

Each backend listens on its own port, so each gets its own HTTP service: a
listener that fails to bind is restarted with backoff without taking the
others down.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddMessagingService(services.NewEventRelayService(bus, hub))
	tree.AddAPIService(services.NewHTTPServerService("http-chat", server, 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events (start, failure, backoff) are logged through sutureslog
into the zerolog-backed slog handler from internal/logging.
*/
package supervisor
