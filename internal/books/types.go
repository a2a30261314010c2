// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package books

// Libro is one search result of GET /api/libros/buscar. Absent upstream
// fields are given explicit defaults.
type Libro struct {
	ID               string   `json:"id"`
	Titulo           string   `json:"titulo"`
	Autores          []string `json:"autores"`
	Descripcion      string   `json:"descripcion"`
	Editorial        string   `json:"editorial"`
	FechaPublicacion string   `json:"fecha_publicacion"`
	Paginas          int      `json:"paginas"`
	Categorias       []string `json:"categorias"`
	Imagen           string   `json:"imagen"`
	PreviewLink      string   `json:"preview_link"`
	Rating           float64  `json:"rating"`
	Precio           float64  `json:"precio"`
	Moneda           string   `json:"moneda"`
	Disponible       bool     `json:"disponible"`
}

// LibroDetalle is the response of GET /api/libros/{id}. Fields the upstream
// omits are null.
type LibroDetalle struct {
	ID               string   `json:"id"`
	Titulo           *string  `json:"titulo"`
	Subtitulo        *string  `json:"subtitulo"`
	Autores          []string `json:"autores"`
	Descripcion      *string  `json:"descripcion"`
	Editorial        *string  `json:"editorial"`
	FechaPublicacion *string  `json:"fecha_publicacion"`
	Paginas          *int     `json:"paginas"`
	Categorias       []string `json:"categorias"`
	ImagenGrande     *string  `json:"imagen_grande"`
	Idioma           *string  `json:"idioma"`
	PreviewLink      *string  `json:"preview_link"`
	Rating           *float64 `json:"rating"`
	RatingsCount     *int     `json:"ratings_count"`
	Precio           *float64 `json:"precio"`
	Moneda           *string  `json:"moneda"`
	Comprable        bool     `json:"comprable"`
	LinkCompra       *string  `json:"link_compra"`
}

// Categorias is the static list served by GET /api/libros/categorias.
var Categorias = []string{
	"Fiction", "Science", "History", "Biography",
	"Technology", "Business", "Self-Help", "Poetry",
	"Mystery", "Romance", "Fantasy", "Science Fiction",
	"Programming", "Education", "Health", "Art",
}

type volumeList struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
	SaleInfo   saleInfo   `json:"saleInfo"`
}

type volumeInfo struct {
	Title         *string  `json:"title"`
	Subtitle      *string  `json:"subtitle"`
	Authors       []string `json:"authors"`
	Description   *string  `json:"description"`
	Publisher     *string  `json:"publisher"`
	PublishedDate *string  `json:"publishedDate"`
	PageCount     *int     `json:"pageCount"`
	Categories    []string `json:"categories"`
	ImageLinks    *struct {
		Thumbnail *string `json:"thumbnail"`
		Large     *string `json:"large"`
	} `json:"imageLinks"`
	Language      *string  `json:"language"`
	PreviewLink   *string  `json:"previewLink"`
	AverageRating *float64 `json:"averageRating"`
	RatingsCount  *int     `json:"ratingsCount"`
}

type saleInfo struct {
	Saleability string `json:"saleability"`
	ListPrice   *struct {
		Amount       *float64 `json:"amount"`
		CurrencyCode *string  `json:"currencyCode"`
	} `json:"listPrice"`
	BuyLink *string `json:"buyLink"`
}

const saleabilityForSale = "FOR_SALE"
