// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package reddit

// Post is one entry of GET /api/reddit/posts.
type Post struct {
	Titulo      string  `json:"titulo"`
	Autor       string  `json:"autor"`
	Puntos      int     `json:"puntos"`
	Comentarios int     `json:"comentarios"`
	URL         string  `json:"url"`
	URLCompleta string  `json:"url_completa"`
	Fecha       string  `json:"fecha"`
	Thumbnail   *string `json:"thumbnail"`
	Selftext    string  `json:"selftext"`
}

// Listado is the response of GET /api/reddit/posts.
type Listado struct {
	Subreddit string `json:"subreddit"`
	Posts     []Post `json:"posts"`
}

// Resultado is one entry of GET /api/reddit/buscar.
type Resultado struct {
	Titulo      string `json:"titulo"`
	Subreddit   string `json:"subreddit"`
	Autor       string `json:"autor"`
	Puntos      int    `json:"puntos"`
	Comentarios int    `json:"comentarios"`
	URL         string `json:"url"`
	Fecha       string `json:"fecha"`
}

// Subreddit is one entry of the static popular list.
type Subreddit struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Populares is served by GET /api/reddit/subreddits/populares.
var Populares = []Subreddit{
	{Nombre: "python", Descripcion: "Python programming"},
	{Nombre: "learnprogramming", Descripcion: "Aprender programación"},
	{Nombre: "webdev", Descripcion: "Desarrollo web"},
	{Nombre: "javascript", Descripcion: "JavaScript"},
	{Nombre: "flask", Descripcion: "Flask framework"},
	{Nombre: "technology", Descripcion: "Tecnología"},
	{Nombre: "programming", Descripcion: "Programación general"},
	{Nombre: "mexico", Descripcion: "México"},
	{Nombre: "argentina", Descripcion: "Argentina"},
	{Nombre: "es", Descripcion: "Español"},
}

// listing is the envelope Reddit wraps every collection in.
type listing struct {
	Data struct {
		Children []struct {
			Data link `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type link struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	CreatedUTC  float64 `json:"created_utc"`
	Thumbnail   *string `json:"thumbnail"`
	Selftext    string  `json:"selftext"`
}

func (l *listing) links() []link {
	out := make([]link, 0, len(l.Data.Children))
	for _, c := range l.Data.Children {
		out = append(out, c.Data)
	}
	return out
}
