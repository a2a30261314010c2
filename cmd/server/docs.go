// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// @title Pasarela API
// @version 1.0
// @description Backends JSON en español que agregan APIs públicas y exponen un CRUD de productos y un chat en tiempo real.
// @description
// @description ## Backends
// @description
// @description Cada backend escucha en su propio puerto: clima 5001, divisas 5002, github 5003, libros 5004,
// @description peliculas 5005, reddit 5006, spotify 5007, productos 5008, chat 5009.
// @description
// @description ## Errores
// @description
// @description Todos los errores usan el mismo sobre:
// @description ```json
// @description { "error": "Parámetro q requerido" }
// @description ```
// @description
// @description ## Límite de peticiones
// @description
// @description 100 peticiones por minuto por IP por defecto (`RATE_LIMIT_REQUESTS`, `RATE_LIMIT_WINDOW`).
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/pasarela/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Clima
// @tag.description Clima actual por ciudad o por geolocalización de IP (OpenWeatherMap, ipapi)
//
// @tag.name Divisas
// @tag.description Tasas de cambio y conversión (ExchangeRate-API)
//
// @tag.name GitHub
// @tag.description Estadísticas de usuarios y repositorios (GitHub REST API)
//
// @tag.name Libros
// @tag.description Búsqueda de libros en español (Google Books)
//
// @tag.name Peliculas
// @tag.description Películas y series localizadas (TMDB)
//
// @tag.name Reddit
// @tag.description Posts y subreddits (Reddit JSON)
//
// @tag.name Spotify
// @tag.description Búsqueda y recomendaciones musicales (Spotify Web API)
//
// @tag.name Productos
// @tag.description CRUD de productos con estadísticas por categoría
//
// @tag.name Chat
// @tag.description Mensajes, presencia y eventos en tiempo real por WebSocket
package main

//go:generate swag init -g docs.go -d ./,../../internal -o ../../docs
