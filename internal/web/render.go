package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/style-kb/internal/markdown"
	"github.com/rcliao/style-kb/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData holds everything passed to a page template.
type pageData struct {
	Title     string
	Flashes   []flash
	CSRFToken string
	Data      map[string]any
}

// renderer holds one parsed template set per page, each paired with the
// base layout.
type renderer struct {
	pages map[string]*template.Template
}

var funcMap = template.FuncMap{
	"markdown": markdown.Render,
	"label":    func(c model.Category) string { return c.Label() },
	"join":     strings.Join,
	"date": func(ms int64) string {
		if ms == 0 {
			return ""
		}
		return time.UnixMilli(ms).Format("2006-01-02 15:04")
	},
}

func newRenderer() (*renderer, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &renderer{pages: map[string]*template.Template{}}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[strings.TrimSuffix(name, ".html")] = tmpl
	}
	return r, nil
}

// page renders a full page. Pending flash messages are consumed.
func (s *Server) page(c *gin.Context, status int, name string, data *pageData) {
	tmpl, ok := s.views.pages[name]
	if !ok {
		c.String(http.StatusInternalServerError, "template %q not found", name)
		return
	}
	data.Flashes = append(popFlashes(c), data.Flashes...)
	data.CSRFToken = c.GetString(csrfKey)

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		c.Error(err)
		s.log.Error().Err(err).Str("template", name).Msg("render page")
	}
}
