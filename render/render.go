// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/danielhkuo/quickly-vote/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a ballot into a page body
type Renderer interface {
	Render(w io.Writer, b models.Ballot) error
}

// TemplateRenderer renders the embedded voting page
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses the embedded templates.
// It panics if they do not parse, which can only happen at build time.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

func (r *TemplateRenderer) Render(w io.Writer, b models.Ballot) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html", b); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
