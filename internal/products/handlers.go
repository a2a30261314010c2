// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package products

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/pasarela/internal/api"
	"github.com/tomtom215/pasarela/internal/validation"
)

// Response and error messages.
const (
	MsgRequired     = "Nombre y precio son requeridos"
	MsgNotFound     = "Producto no encontrado"
	MsgCreated      = "Producto creado exitosamente"
	MsgUpdated      = "Producto actualizado exitosamente"
	MsgDeleted      = "Producto eliminado exitosamente"
	MsgStoreFailure = "Error al acceder a los productos"
)

// Handler exposes the productos endpoints.
type Handler struct {
	store *Store
}

// NewHandler creates the handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes mounts the productos endpoints. /stats is registered before /{id}.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/productos", func(r chi.Router) {
		r.Get("/", api.Handle(h.Listar))
		r.Post("/", api.Handle(h.Crear))
		r.Get("/stats", api.Handle(h.Estadisticas))
		r.Get("/{id}", api.Handle(h.Obtener))
		r.Put("/{id}", api.Handle(h.Actualizar))
		r.Delete("/{id}", api.Handle(h.Eliminar))
	})
	r.Get("/api/categorias", api.Handle(h.Categorias))
}

// decodeInput reads and validates a product body. Missing or blank
// nombre/precio (or an unreadable body) give MsgRequired; range failures
// give the validator's message.
func decodeInput(r *http.Request) (Fields, error) {
	var in ProductoInput
	if err := api.DecodeJSON(r, &in, MsgRequired); err != nil {
		return Fields{}, err
	}
	if verr := validation.ValidateStruct(&in); verr != nil {
		if verr.HasTag("required") || verr.HasTag("notblank") {
			return Fields{}, api.BadRequest(MsgRequired)
		}
		return Fields{}, api.BadRequest("%s", verr.Error())
	}
	return in.Fields(), nil
}

// storeError maps ErrProductNotFound to 404 and anything else to a 500
// without leaking driver details.
func storeError(err error) error {
	if errors.Is(err, ErrProductNotFound) {
		return api.NotFound(MsgNotFound)
	}
	return api.Internal(MsgStoreFailure, err)
}

// Crear creates a product
//
// @Summary Create product
// @Tags Productos
// @Accept json
// @Produce json
// @Param producto body products.ProductoInput true "Product"
// @Success 201 {object} products.Creado
// @Failure 400 {object} api.ErrorEnvelope "Missing nombre or precio"
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/productos [post]
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) error {
	fields, err := decodeInput(r)
	if err != nil {
		return err
	}

	id, err := h.store.Create(r.Context(), fields)
	if err != nil {
		return storeError(err)
	}
	return api.Created(w, Creado{ID: id, Mensaje: MsgCreated})
}

// Listar lists products
//
// @Summary List products
// @Tags Productos
// @Produce json
// @Param categoria query string false "Exact category"
// @Param orden query string false "nombre, precio, stock or fecha_creacion" default(nombre)
// @Param dir query string false "ASC or DESC" default(ASC)
// @Success 200 {array} products.Producto
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/productos [get]
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) error {
	productos, err := h.store.List(r.Context(), ListOptions{
		Categoria: api.QueryDefault(r, "categoria", ""),
		Orden:     api.QueryDefault(r, "orden", "nombre"),
		Dir:       api.QueryDefault(r, "dir", "ASC"),
	})
	if err != nil {
		return storeError(err)
	}
	return api.OK(w, productos)
}

// Obtener returns one product
//
// @Summary Get product
// @Tags Productos
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} products.Producto
// @Failure 404 {object} api.ErrorEnvelope "Product not found"
// @Router /api/productos/{id} [get]
func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) error {
	id, err := api.PathInt(r, "id", MsgNotFound)
	if err != nil {
		return err
	}

	p, err := h.store.Get(r.Context(), id)
	if err != nil {
		return storeError(err)
	}
	return api.OK(w, p)
}

// Actualizar replaces a product
//
// @Summary Update product
// @Tags Productos
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param producto body products.ProductoInput true "Product"
// @Success 200 {object} api.Message
// @Failure 400 {object} api.ErrorEnvelope "Missing nombre or precio"
// @Failure 404 {object} api.ErrorEnvelope "Product not found"
// @Router /api/productos/{id} [put]
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) error {
	id, err := api.PathInt(r, "id", MsgNotFound)
	if err != nil {
		return err
	}
	fields, err := decodeInput(r)
	if err != nil {
		return err
	}

	if err := h.store.Update(r.Context(), id, fields); err != nil {
		return storeError(err)
	}
	return api.OK(w, api.Message{Mensaje: MsgUpdated})
}

// Eliminar deletes a product
//
// @Summary Delete product
// @Tags Productos
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} api.Message
// @Failure 404 {object} api.ErrorEnvelope "Product not found"
// @Router /api/productos/{id} [delete]
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) error {
	id, err := api.PathInt(r, "id", MsgNotFound)
	if err != nil {
		return err
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		return storeError(err)
	}
	return api.OK(w, api.Message{Mensaje: MsgDeleted})
}

// Estadisticas returns catalog aggregates
//
// @Summary Product statistics
// @Tags Productos
// @Produce json
// @Success 200 {object} products.Estadisticas
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/productos/stats [get]
func (h *Handler) Estadisticas(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		return storeError(err)
	}
	return api.OK(w, stats)
}

// Categorias returns the distinct categories
//
// @Summary Product categories
// @Tags Productos
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} api.ErrorEnvelope "Store failure"
// @Router /api/categorias [get]
func (h *Handler) Categorias(w http.ResponseWriter, r *http.Request) error {
	categorias, err := h.store.Categories(r.Context())
	if err != nil {
		return storeError(err)
	}
	return api.OK(w, categorias)
}
