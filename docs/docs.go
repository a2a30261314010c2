// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate it from the handler annotations with:
//
//	swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/pasarela"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/categorias": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Product categories",
                "tags": [
                    "Productos"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/clima": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Current weather",
                "description": "Geolocates the server egress IP (or the ip parameter) with ipapi and returns the current OpenWeatherMap conditions in Spanish, metric units.",
                "tags": [
                    "Clima"
                ],
                "parameters": [
                    {
                        "description": "IP address to geolocate instead of the egress IP",
                        "name": "ip",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/weather.Clima"
                        }
                    },
                    "400": {
                        "description": "Invalid IP",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/divisas/convertir": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Convert currency",
                "tags": [
                    "Divisas"
                ],
                "parameters": [
                    {
                        "description": "Amount, non-zero",
                        "name": "monto",
                        "in": "query",
                        "required": true,
                        "type": "number"
                    },
                    {
                        "description": "Source currency",
                        "name": "de",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "USD"
                    },
                    {
                        "description": "Target currency",
                        "name": "a",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "MXN"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/currency.Conversion"
                        }
                    },
                    "400": {
                        "description": "Missing amount or conversion rejected",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/divisas/monedas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Supported currencies",
                "tags": [
                    "Divisas"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "$ref": "#/definitions/currency.Moneda"
                            }
                        }
                    }
                }
            }
        },
        "/api/divisas/tasas/{base}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Latest exchange rates",
                "tags": [
                    "Divisas"
                ],
                "parameters": [
                    {
                        "description": "Base currency code",
                        "name": "base",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/currency.Tasas"
                        }
                    },
                    "400": {
                        "description": "Rates rejected by the provider",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/generos/peliculas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Movie genres",
                "tags": [
                    "Peliculas"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/movies.Genero"
                            }
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/github/buscar/repos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Search repositories",
                "tags": [
                    "GitHub"
                ],
                "parameters": [
                    {
                        "description": "Search terms",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Language filter",
                        "name": "lenguaje",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/github.RepoBusqueda"
                            }
                        }
                    },
                    "400": {
                        "description": "Missing query",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/github/trending": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Trending repositories",
                "tags": [
                    "GitHub"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/github.RepoTrending"
                            }
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/github/usuario/{username}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "GitHub user statistics",
                "tags": [
                    "GitHub"
                ],
                "parameters": [
                    {
                        "description": "GitHub login",
                        "name": "username",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github.Usuario"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/libros/buscar": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Search books",
                "tags": [
                    "Libros"
                ],
                "parameters": [
                    {
                        "description": "Search terms",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Subject category",
                        "name": "categoria",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Maximum results (capped at 40)",
                        "name": "max",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/books.Libro"
                            }
                        }
                    },
                    "400": {
                        "description": "Missing query",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/libros/categorias": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Book categories",
                "tags": [
                    "Libros"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/libros/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Book detail",
                "tags": [
                    "Libros"
                ],
                "parameters": [
                    {
                        "description": "Google Books volume id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/books.LibroDetalle"
                        }
                    },
                    "404": {
                        "description": "Book not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/mensajes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Latest messages",
                "description": "Returns the most recent messages ordered by timestamp, oldest first",
                "tags": [
                    "Chat"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/chat.Mensaje"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "summary": "Send message",
                "tags": [
                    "Chat"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Message",
                        "name": "mensaje",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/chat.MensajeInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/chat.Mensaje"
                        }
                    },
                    "400": {
                        "description": "Missing usuario or texto",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/mensajes/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "summary": "Delete message",
                "tags": [
                    "Chat"
                ],
                "parameters": [
                    {
                        "description": "Message id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Message"
                        }
                    },
                    "404": {
                        "description": "Message not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/peliculas/buscar": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Search movies",
                "tags": [
                    "Peliculas"
                ],
                "parameters": [
                    {
                        "description": "Title search",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 1
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/movies.Busqueda"
                        }
                    },
                    "400": {
                        "description": "Missing query",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/peliculas/cartelera": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Now playing",
                "tags": [
                    "Peliculas"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/movies.PeliculaBreve"
                            }
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/peliculas/populares": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Popular movies",
                "tags": [
                    "Peliculas"
                ],
                "parameters": [
                    {
                        "description": "Page",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 1
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/movies.Populares"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/peliculas/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Movie detail",
                "tags": [
                    "Peliculas"
                ],
                "parameters": [
                    {
                        "description": "TMDB movie id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/movies.PeliculaDetalle"
                        }
                    },
                    "404": {
                        "description": "Movie not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/productos": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "summary": "Create product",
                "tags": [
                    "Productos"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Product",
                        "name": "producto",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.ProductoInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/products.Creado"
                        }
                    },
                    "400": {
                        "description": "Missing nombre or precio",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "List products",
                "tags": [
                    "Productos"
                ],
                "parameters": [
                    {
                        "description": "Exact category",
                        "name": "categoria",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "nombre, precio, stock or fecha_creacion",
                        "name": "orden",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "nombre"
                    },
                    {
                        "description": "ASC or DESC",
                        "name": "dir",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "ASC"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/products.Producto"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/productos/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Product statistics",
                "tags": [
                    "Productos"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.Estadisticas"
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/productos/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Get product",
                "tags": [
                    "Productos"
                ],
                "parameters": [
                    {
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/products.Producto"
                        }
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "summary": "Update product",
                "tags": [
                    "Productos"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Product",
                        "name": "producto",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.ProductoInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Message"
                        }
                    },
                    "400": {
                        "description": "Missing nombre or precio",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "summary": "Delete product",
                "tags": [
                    "Productos"
                ],
                "parameters": [
                    {
                        "description": "Product id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Message"
                        }
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/reddit/buscar": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Search posts",
                "tags": [
                    "Reddit"
                ],
                "parameters": [
                    {
                        "description": "Search terms",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Number of results (alias: limite)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 10
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/reddit.Resultado"
                            }
                        }
                    },
                    "400": {
                        "description": "Missing query",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/reddit/posts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Subreddit posts",
                "tags": [
                    "Reddit"
                ],
                "parameters": [
                    {
                        "description": "Subreddit name",
                        "name": "subreddit",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "python"
                    },
                    {
                        "description": "hot, new or top",
                        "name": "filtro",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "hot"
                    },
                    {
                        "description": "Number of posts (alias: limite)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 10
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/reddit.Listado"
                        }
                    },
                    "400": {
                        "description": "Invalid filter or limit",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Subreddit not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/reddit/subreddits/populares": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Popular subreddits",
                "tags": [
                    "Reddit"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/reddit.Subreddit"
                            }
                        }
                    }
                }
            }
        },
        "/api/series/buscar": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Search TV shows",
                "tags": [
                    "Peliculas"
                ],
                "parameters": [
                    {
                        "description": "Show name",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/movies.Serie"
                            }
                        }
                    },
                    "400": {
                        "description": "Missing query",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/spotify/album/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Album detail",
                "tags": [
                    "Spotify"
                ],
                "parameters": [
                    {
                        "description": "Spotify album id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/spotify.AlbumDetalle"
                        }
                    },
                    "404": {
                        "description": "Album not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Authentication or upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/spotify/artista/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Artist detail",
                "tags": [
                    "Spotify"
                ],
                "parameters": [
                    {
                        "description": "Spotify artist id",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/spotify.ArtistaDetalle"
                        }
                    },
                    "404": {
                        "description": "Artist not found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Authentication or upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/spotify/buscar": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Search tracks, artists, albums or playlists",
                "tags": [
                    "Spotify"
                ],
                "parameters": [
                    {
                        "description": "Search terms",
                        "name": "q",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "track, artist, album or playlist",
                        "name": "tipo",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "track"
                    },
                    {
                        "description": "Number of results (max 50)",
                        "name": "limite",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Element type depends on tipo",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.Cancion"
                            }
                        }
                    },
                    "400": {
                        "description": "Missing query or invalid type",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Authentication or upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/spotify/generos": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Genre seeds",
                "tags": [
                    "Spotify"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Authentication or upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/spotify/recomendaciones": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Genre-seeded recommendations",
                "tags": [
                    "Spotify"
                ],
                "parameters": [
                    {
                        "description": "Comma-separated genre seeds",
                        "name": "generos",
                        "in": "query",
                        "required": false,
                        "type": "string",
                        "default": "pop,rock"
                    },
                    {
                        "description": "Number of tracks (max 100)",
                        "name": "limite",
                        "in": "query",
                        "required": false,
                        "type": "integer",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.Recomendacion"
                            }
                        }
                    },
                    "500": {
                        "description": "Authentication or upstream failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/api/usuarios/online": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "summary": "Register online user",
                "tags": [
                    "Chat"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User",
                        "name": "usuario",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/chat.UsuarioInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Message"
                        }
                    },
                    "400": {
                        "description": "Missing usuario",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Online users",
                "tags": [
                    "Chat"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sistema"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "Sistema"
                ],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ws": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "summary": "Chat event stream",
                "description": "Streams mensaje_nuevo, mensaje_eliminado and usuario_online events as {\"tipo\", \"datos\"} frames",
                "tags": [
                    "Chat"
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "403": {
                        "description": "Origin not allowed",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "api.Message": {
            "type": "object",
            "properties": {
                "mensaje": {
                    "type": "string"
                }
            }
        },
        "books.Libro": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                },
                "autores": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "descripcion": {
                    "type": "string"
                },
                "editorial": {
                    "type": "string"
                },
                "fecha_publicacion": {
                    "type": "string"
                },
                "paginas": {
                    "type": "integer"
                },
                "categorias": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "imagen": {
                    "type": "string"
                },
                "preview_link": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "precio": {
                    "type": "number"
                },
                "moneda": {
                    "type": "string"
                },
                "disponible": {
                    "type": "boolean"
                }
            }
        },
        "books.LibroDetalle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "titulo": {
                    "type": "string"
                },
                "subtitulo": {
                    "type": "string"
                },
                "autores": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "descripcion": {
                    "type": "string"
                },
                "editorial": {
                    "type": "string"
                },
                "fecha_publicacion": {
                    "type": "string"
                },
                "paginas": {
                    "type": "integer"
                },
                "categorias": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "imagen_grande": {
                    "type": "string"
                },
                "idioma": {
                    "type": "string"
                },
                "preview_link": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "ratings_count": {
                    "type": "integer"
                },
                "precio": {
                    "type": "number"
                },
                "moneda": {
                    "type": "string"
                },
                "comprable": {
                    "type": "boolean"
                },
                "link_compra": {
                    "type": "string"
                }
            }
        },
        "chat.Mensaje": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "usuario": {
                    "type": "string"
                },
                "texto": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                }
            }
        },
        "chat.MensajeInput": {
            "type": "object",
            "properties": {
                "usuario": {
                    "type": "string"
                },
                "texto": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                }
            },
            "required": [
                "usuario",
                "texto"
            ]
        },
        "chat.UsuarioInput": {
            "type": "object",
            "properties": {
                "usuario": {
                    "type": "string"
                }
            },
            "required": [
                "usuario"
            ]
        },
        "currency.Conversion": {
            "type": "object",
            "properties": {
                "monto_original": {
                    "type": "number"
                },
                "moneda_origen": {
                    "type": "string"
                },
                "moneda_destino": {
                    "type": "string"
                },
                "monto_convertido": {
                    "type": "number"
                },
                "tasa_conversion": {
                    "type": "number"
                },
                "ultima_actualizacion": {
                    "type": "string"
                }
            }
        },
        "currency.Moneda": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "simbolo": {
                    "type": "string"
                },
                "bandera": {
                    "type": "string"
                }
            }
        },
        "currency.Tasas": {
            "type": "object",
            "properties": {
                "moneda_base": {
                    "type": "string"
                },
                "tasas": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "ultima_actualizacion": {
                    "type": "string"
                }
            }
        },
        "github.RepoBusqueda": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "stars": {
                    "type": "integer"
                },
                "lenguaje": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "github.RepoDestacado": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "stars": {
                    "type": "integer"
                },
                "forks": {
                    "type": "integer"
                },
                "lenguaje": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "actualizado": {
                    "type": "string"
                }
            }
        },
        "github.RepoTrending": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "stars": {
                    "type": "integer"
                },
                "forks": {
                    "type": "integer"
                },
                "lenguaje": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "propietario": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                }
            }
        },
        "github.TopLenguaje": {
            "type": "object",
            "properties": {
                "lenguaje": {
                    "type": "string"
                },
                "repos": {
                    "type": "integer"
                }
            }
        },
        "github.Usuario": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                },
                "repositorios": {
                    "type": "integer"
                },
                "seguidores": {
                    "type": "integer"
                },
                "siguiendo": {
                    "type": "integer"
                },
                "ubicacion": {
                    "type": "string"
                },
                "empresa": {
                    "type": "string"
                },
                "blog": {
                    "type": "string"
                },
                "twitter": {
                    "type": "string"
                },
                "creado": {
                    "type": "string"
                },
                "total_stars": {
                    "type": "integer"
                },
                "total_forks": {
                    "type": "integer"
                },
                "lenguajes": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "top_lenguajes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github.TopLenguaje"
                    }
                },
                "repos_destacados": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github.RepoDestacado"
                    }
                }
            }
        },
        "movies.Actor": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "personaje": {
                    "type": "string"
                },
                "foto": {
                    "type": "string"
                },
                "orden": {
                    "type": "integer"
                }
            }
        },
        "movies.Busqueda": {
            "type": "object",
            "properties": {
                "peliculas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/movies.Pelicula"
                    }
                },
                "pagina": {
                    "type": "integer"
                },
                "total_paginas": {
                    "type": "integer"
                },
                "total_resultados": {
                    "type": "integer"
                }
            }
        },
        "movies.Genero": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "movies.Pelicula": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "titulo": {
                    "type": "string"
                },
                "titulo_original": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "poster": {
                    "type": "string"
                },
                "backdrop": {
                    "type": "string"
                },
                "fecha_estreno": {
                    "type": "string"
                },
                "popularidad": {
                    "type": "number"
                },
                "calificacion": {
                    "type": "number"
                },
                "votos": {
                    "type": "integer"
                }
            }
        },
        "movies.PeliculaBreve": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "titulo": {
                    "type": "string"
                },
                "poster": {
                    "type": "string"
                },
                "calificacion": {
                    "type": "number"
                }
            }
        },
        "movies.PeliculaDetalle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "titulo": {
                    "type": "string"
                },
                "titulo_original": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "tagline": {
                    "type": "string"
                },
                "poster": {
                    "type": "string"
                },
                "backdrop": {
                    "type": "string"
                },
                "fecha_estreno": {
                    "type": "string"
                },
                "duracion": {
                    "type": "integer"
                },
                "presupuesto": {
                    "type": "integer"
                },
                "ingresos": {
                    "type": "integer"
                },
                "calificacion": {
                    "type": "number"
                },
                "votos": {
                    "type": "integer"
                },
                "popularidad": {
                    "type": "number"
                },
                "generos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "productoras": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "paises": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "idiomas": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "director": {
                    "type": "string"
                },
                "guionistas": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "reparto": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/movies.Actor"
                    }
                },
                "trailers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/movies.Trailer"
                    }
                },
                "similares": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/movies.PeliculaBreve"
                    }
                },
                "recomendaciones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/movies.PeliculaBreve"
                    }
                },
                "homepage": {
                    "type": "string"
                },
                "imdb_id": {
                    "type": "string"
                }
            }
        },
        "movies.PeliculaPopular": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "titulo": {
                    "type": "string"
                },
                "poster": {
                    "type": "string"
                },
                "calificacion": {
                    "type": "number"
                },
                "fecha_estreno": {
                    "type": "string"
                }
            }
        },
        "movies.Populares": {
            "type": "object",
            "properties": {
                "peliculas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/movies.PeliculaPopular"
                    }
                },
                "pagina": {
                    "type": "integer"
                },
                "total_paginas": {
                    "type": "integer"
                }
            }
        },
        "movies.Serie": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "poster": {
                    "type": "string"
                },
                "primera_fecha": {
                    "type": "string"
                },
                "calificacion": {
                    "type": "number"
                }
            }
        },
        "movies.Trailer": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "tipo": {
                    "type": "string"
                },
                "sitio": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "products.CategoriaResumen": {
            "type": "object",
            "properties": {
                "categoria": {
                    "type": "string"
                },
                "cantidad": {
                    "type": "integer"
                },
                "precio_promedio": {
                    "type": "number"
                },
                "stock_total": {
                    "type": "integer"
                }
            }
        },
        "products.Creado": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "mensaje": {
                    "type": "string"
                }
            }
        },
        "products.Estadisticas": {
            "type": "object",
            "properties": {
                "generales": {
                    "$ref": "#/definitions/products.Generales"
                },
                "por_categoria": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/products.CategoriaResumen"
                    }
                }
            }
        },
        "products.Generales": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "precio_promedio": {
                    "type": "number"
                },
                "stock_total": {
                    "type": "integer"
                },
                "precio_min": {
                    "type": "number"
                },
                "precio_max": {
                    "type": "number"
                }
            }
        },
        "products.Producto": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                },
                "categoria": {
                    "type": "string"
                },
                "fecha_creacion": {
                    "type": "string"
                },
                "fecha_actualizacion": {
                    "type": "string"
                }
            }
        },
        "products.ProductoInput": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                },
                "categoria": {
                    "type": "string"
                }
            },
            "required": [
                "nombre",
                "precio"
            ]
        },
        "reddit.Listado": {
            "type": "object",
            "properties": {
                "subreddit": {
                    "type": "string"
                },
                "posts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reddit.Post"
                    }
                }
            }
        },
        "reddit.Post": {
            "type": "object",
            "properties": {
                "titulo": {
                    "type": "string"
                },
                "autor": {
                    "type": "string"
                },
                "puntos": {
                    "type": "integer"
                },
                "comentarios": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                },
                "url_completa": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string"
                },
                "thumbnail": {
                    "type": "string"
                },
                "selftext": {
                    "type": "string"
                }
            }
        },
        "reddit.Resultado": {
            "type": "object",
            "properties": {
                "titulo": {
                    "type": "string"
                },
                "subreddit": {
                    "type": "string"
                },
                "autor": {
                    "type": "string"
                },
                "puntos": {
                    "type": "integer"
                },
                "comentarios": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string"
                }
            }
        },
        "reddit.Subreddit": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                }
            }
        },
        "spotify.AlbumArtista": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string"
                },
                "imagen": {
                    "type": "string"
                },
                "total_tracks": {
                    "type": "integer"
                },
                "tipo": {
                    "type": "string"
                }
            }
        },
        "spotify.AlbumDetalle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "artistas": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "fecha_lanzamiento": {
                    "type": "string"
                },
                "total_tracks": {
                    "type": "integer"
                },
                "imagen": {
                    "type": "string"
                },
                "generos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sello": {
                    "type": "string"
                },
                "popularidad": {
                    "type": "integer"
                },
                "spotify_url": {
                    "type": "string"
                },
                "tracks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.TrackDisco"
                    }
                }
            }
        },
        "spotify.ArtistaDetalle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "generos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "popularidad": {
                    "type": "integer"
                },
                "seguidores": {
                    "type": "integer"
                },
                "imagen": {
                    "type": "string"
                },
                "spotify_url": {
                    "type": "string"
                },
                "top_canciones": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.TopCancion"
                    }
                },
                "albums": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.AlbumArtista"
                    }
                },
                "artistas_relacionados": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.ArtistaRelacionado"
                    }
                }
            }
        },
        "spotify.ArtistaRelacionado": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "imagen": {
                    "type": "string"
                },
                "popularidad": {
                    "type": "integer"
                }
            }
        },
        "spotify.Cancion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "artistas": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "artista_principal": {
                    "type": "string"
                },
                "album": {
                    "type": "string"
                },
                "imagen": {
                    "type": "string"
                },
                "duracion_ms": {
                    "type": "integer"
                },
                "duracion": {
                    "type": "string"
                },
                "preview_url": {
                    "type": "string"
                },
                "spotify_url": {
                    "type": "string"
                },
                "popularidad": {
                    "type": "integer"
                },
                "explicito": {
                    "type": "boolean"
                }
            }
        },
        "spotify.Recomendacion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "artistas": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "album": {
                    "type": "string"
                },
                "imagen": {
                    "type": "string"
                },
                "preview_url": {
                    "type": "string"
                },
                "spotify_url": {
                    "type": "string"
                }
            }
        },
        "spotify.TopCancion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "album": {
                    "type": "string"
                },
                "preview": {
                    "type": "string"
                },
                "imagen": {
                    "type": "string"
                },
                "duracion": {
                    "type": "string"
                },
                "spotify_url": {
                    "type": "string"
                }
            }
        },
        "spotify.TrackDisco": {
            "type": "object",
            "properties": {
                "numero": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "duracion": {
                    "type": "string"
                },
                "preview": {
                    "type": "string"
                },
                "spotify_url": {
                    "type": "string"
                }
            }
        },
        "weather.Clima": {
            "type": "object",
            "properties": {
                "ciudad": {
                    "type": "string"
                },
                "pais": {
                    "type": "string"
                },
                "temperatura": {
                    "type": "number"
                },
                "descripcion": {
                    "type": "string"
                },
                "humedad": {
                    "type": "integer"
                },
                "viento": {
                    "type": "number"
                },
                "icono": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pasarela API",
	Description:      "Backends JSON localizados que agregan APIs públicas (clima, divisas, GitHub, libros, películas, Reddit, Spotify), un CRUD de productos y un chat en tiempo real.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
