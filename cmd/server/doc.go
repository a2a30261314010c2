// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

/*
Package main is the entry point for the Pasarela server.

Pasarela runs a set of small JSON backends, each on its own port, that
aggregate public APIs and localize their output to Spanish. It also runs a
product catalog and a realtime chat. One process hosts every enabled
backend under a Suture v4 supervisor tree:

	RootSupervisor ("pasarela")
	├── EventsSupervisor ("events-layer")
	│   └── embedded NATS server (NATS_EMBEDDED=true)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket hub
	│   └── event relay (bus -> hub)
	└── APISupervisor ("api-layer")
	    └── one HTTP server per enabled backend

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Stores: DuckDB or Postgres for products, Badger or Firebase for chat
 4. Event bus: Watermill over Go channels or NATS
 5. Supervisor tree with every listener and background service

# Backends

	clima      5001  OPENWEATHER_API_KEY
	divisas    5002  EXCHANGERATE_API_KEY
	github     5003  GITHUB_TOKEN (optional)
	libros     5004  GOOGLE_BOOKS_API_KEY (optional)
	peliculas  5005  TMDB_API_KEY
	reddit     5006  -
	spotify    5007  SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET
	productos  5008  PRODUCTS_DRIVER, PRODUCTS_DSN
	chat       5009  CHAT_STORE, CHAT_EVENTS_DRIVER

Backends that need a credential are disabled by default; enable them with
<APP>_ENABLED=true once the key is set. Every listener also serves
/health, /metrics and /swagger/.

# Signals

SIGINT and SIGTERM cancel the root context. Each listener stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT,
the hub closes its WebSocket clients, and the stores are closed last.

# Example

	export OPENWEATHER_API_KEY=...
	export CLIMA_ENABLED=true
	export CHAT_EVENTS_DRIVER=nats NATS_EMBEDDED=true
	./pasarela
*/
package main
