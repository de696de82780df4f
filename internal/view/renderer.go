// Package view renders the catalog's HTML pages through echo's Renderer hook.
package view

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"

	"github.com/labstack/echo/v4"
)

// Template names rendered by the movie handlers.
const (
	MovieIndex  = "movies/index"
	MovieNew    = "movies/new"
	MovieShow   = "movies/show"
	MovieEdit   = "movies/edit"
	MovieDelete = "movies/delete"
)

// Renderer executes named templates parsed from a views directory.  Page
// templates live under movies/ and share the partials at the top level.
type Renderer struct {
	templates *template.Template
}

// New parses every *.html file at the root of fsys and under movies/.
func New(fsys fs.FS) (*Renderer, error) {
	t, err := template.New("views").Funcs(template.FuncMap{
		"rating": func(f float64) string { return fmt.Sprintf("%g", f) },
	}).ParseFS(fsys, "*.html", "movies/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse views: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// NewFromDir is New over os.DirFS(dir).
func NewFromDir(dir string) (*Renderer, error) {
	return New(os.DirFS(dir))
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
