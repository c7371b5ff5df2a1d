package http

import (
	"html/template"
	"net/http"
	"path/filepath"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
)

// Renderer executes the html templates. Views themselves are an external
// collaborator; the core only hands over a name and data.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// ViewData is the envelope every template receives.
type ViewData struct {
	Principal domain.Principal
	Flash     Flash
	Data      interface{}
}

func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	vd := ViewData{Flash: popFlashes(w, r), Data: data}
	if p, ok := PrincipalFrom(r.Context()); ok {
		vd.Principal = p
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rn.templates.ExecuteTemplate(w, name, vd); err != nil {
		logger.Error("Failed to render view", "view", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
