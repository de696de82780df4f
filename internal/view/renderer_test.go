package view

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNamedTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html":       {Data: []byte(`{{define "header"}}<h1>{{.}}</h1>{{end}}`)},
		"movies/index.html": {Data: []byte(`{{define "movies/index"}}{{template "header" "Movies"}}{{range .Movies}}<li>{{.}}</li>{{end}}{{end}}`)},
	}
	r, err := New(fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, MovieIndex, map[string]any{"Movies": []string{"<X>"}}, nil))
	assert.Equal(t, "<h1>Movies</h1><li>&lt;X&gt;</li>", buf.String())
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New(fstest.MapFS{
		"layout.html":     {Data: []byte(`{{define "header"}}{{end}}`)},
		"movies/new.html": {Data: []byte(`{{define "movies/new"}}form{{end}}`)},
	})
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "movies/missing", nil, nil))
}

// The shipped views must parse and define every page the handlers render.
func TestShippedViews(t *testing.T) {
	r, err := NewFromDir(filepath.Join("..", "..", "web", "views"))
	require.NoError(t, err)
	for _, name := range []string{MovieIndex, MovieNew, MovieShow, MovieEdit, MovieDelete} {
		assert.NotNil(t, r.templates.Lookup(name), name)
	}
	_, err = os.Stat(filepath.Join("..", "..", "web", "public", "css", "style.css"))
	assert.NoError(t, err)
}
