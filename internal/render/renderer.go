package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrTemplateNotFound = errors.New("template not found")

// Renderer turns a named template and its data into an HTTP response.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// HTMLRenderer renders pages parsed once from a template filesystem.
type HTMLRenderer struct {
	templates *template.Template
}

var _ Renderer = (*HTMLRenderer)(nil)

// New parses the embedded page templates.
func New() (*HTMLRenderer, error) {
	return NewFromFS(templateFS, "templates/*.html")
}

// NewFromFS parses every template matching pattern in fsys.
// Templates are addressed by their base file name.
func NewFromFS(fsys fs.FS, pattern string) (*HTMLRenderer, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &HTMLRenderer{templates: t}, nil
}

// Render executes the template into a buffer and only writes on success,
// so a failed render leaves the response untouched.
func (r *HTMLRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	t := r.templates.Lookup(name)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
