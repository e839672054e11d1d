package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/displayfmt"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer - html/template для echo
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"grouped":     displayfmt.Grouped,
		"money":       displayfmt.Money,
		"plain":       displayfmt.Plain,
		"percent":     displayfmt.Percent,
		"trendClass":  displayfmt.TrendClass,
		"up":          displayfmt.Up,
		"statusClass": displayfmt.StatusClass,
		"timestamp":   displayfmt.Timestamp,
		"featured":    consts.IsFeatured,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
