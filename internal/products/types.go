// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package products

// DefaultCategory is stored when a product is created without one.
const DefaultCategory = "General"

// Producto is one row of the catalog.
type Producto struct {
	ID                 int64   `json:"id"`
	Nombre             string  `json:"nombre"`
	Descripcion        string  `json:"descripcion"`
	Precio             float64 `json:"precio"`
	Stock              int64   `json:"stock"`
	Categoria          string  `json:"categoria"`
	FechaCreacion      string  `json:"fecha_creacion"`
	FechaActualizacion string  `json:"fecha_actualizacion"`
}

// ProductoInput is the body of POST and PUT. Pointers tell absent fields
// apart from zero values so a price of 0 is accepted.
type ProductoInput struct {
	Nombre      *string  `json:"nombre" validate:"required,notblank"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio" validate:"required,gte=0"`
	Stock       *int64   `json:"stock" validate:"omitempty,gte=0"`
	Categoria   *string  `json:"categoria"`
}

// Fields holds the values written by Create and Update.
type Fields struct {
	Nombre      string
	Descripcion string
	Precio      float64
	Stock       int64
	Categoria   string
}

// Fields applies the defaults for absent optional fields. Call it only on a
// validated input.
func (in *ProductoInput) Fields() Fields {
	f := Fields{
		Nombre:    *in.Nombre,
		Precio:    *in.Precio,
		Categoria: DefaultCategory,
	}
	if in.Descripcion != nil {
		f.Descripcion = *in.Descripcion
	}
	if in.Stock != nil {
		f.Stock = *in.Stock
	}
	if in.Categoria != nil && *in.Categoria != "" {
		f.Categoria = *in.Categoria
	}
	return f
}

// Creado is the 201 response of POST /api/productos.
type Creado struct {
	ID      int64  `json:"id"`
	Mensaje string `json:"mensaje"`
}

// Estadisticas is the response of GET /api/productos/stats.
type Estadisticas struct {
	Generales    Generales          `json:"generales"`
	PorCategoria []CategoriaResumen `json:"por_categoria"`
}

// Generales aggregates the whole catalog. Averages and extremes are null on
// an empty catalog.
type Generales struct {
	Total          int64    `json:"total"`
	PrecioPromedio *float64 `json:"precio_promedio"`
	StockTotal     int64    `json:"stock_total"`
	PrecioMin      *float64 `json:"precio_min"`
	PrecioMax      *float64 `json:"precio_max"`
}

// CategoriaResumen aggregates one category.
type CategoriaResumen struct {
	Categoria      string  `json:"categoria"`
	Cantidad       int64   `json:"cantidad"`
	PrecioPromedio float64 `json:"precio_promedio"`
	StockTotal     int64   `json:"stock_total"`
}

// ListOptions filters and orders List.
type ListOptions struct {
	Categoria string
	Orden     string
	Dir       string
}

// sortColumns whitelists the ORDER BY columns.
var sortColumns = map[string]bool{
	"nombre":         true,
	"precio":         true,
	"stock":          true,
	"fecha_creacion": true,
}

// normalize applies the ordering fallbacks: unknown orden sorts by nombre,
// unknown dir sorts ascending.
func (o ListOptions) normalize() ListOptions {
	if !sortColumns[o.Orden] {
		o.Orden = "nombre"
	}
	switch o.Dir {
	case "DESC", "desc", "Desc":
		o.Dir = "DESC"
	default:
		o.Dir = "ASC"
	}
	return o
}

// seedProducts is inserted into an empty catalog.
var seedProducts = []Fields{
	{Nombre: "Laptop HP", Descripcion: `Laptop HP 15.6" Core i5`, Precio: 15999.99, Stock: 10, Categoria: "Electrónica"},
	{Nombre: "Mouse Logitech", Descripcion: "Mouse inalámbrico Logitech M185", Precio: 299.99, Stock: 50, Categoria: "Accesorios"},
	{Nombre: "Teclado Mecánico", Descripcion: "Teclado mecánico RGB", Precio: 1299.99, Stock: 25, Categoria: "Accesorios"},
	{Nombre: "Monitor Samsung", Descripcion: `Monitor 24" Full HD`, Precio: 3499.99, Stock: 15, Categoria: "Electrónica"},
	{Nombre: "Webcam", Descripcion: "Webcam 1080p con micrófono", Precio: 899.99, Stock: 30, Categoria: "Accesorios"},
}
