package handlers

import (
	"html/template"
	"net/http"

	"github.com/lehmann314159/heimwerker/internal/gallery"
	"github.com/lehmann314159/heimwerker/internal/models"
	"github.com/lehmann314159/heimwerker/templates"
)

// page is the template data of one response. It is the gallery.Screen the
// controller paints onto while the request is handled.
type page struct {
	Chrome     gallery.Chrome
	View       models.View
	LastUpdate string
	Overlay    *models.Detail
	FocusID    string
	State      gallery.State
}

func (p *page) PaintChrome(c gallery.Chrome) { p.Chrome = c }
func (p *page) PaintView(v models.View) { p.View = v }
func (p *page) PaintLastUpdate(label string) { p.LastUpdate = label }
func (p *page) ShowOverlay(d models.Detail) { p.Overlay = &d }
func (p *page) HideOverlay() { p.Overlay = nil }

func (p *page) Focus(id string) bool {
	if !p.has(id) {
		return false
	}
	p.FocusID = id
	return true
}

func (p *page) has(id string) bool {
	if id == gallery.CloseControlID {
		return p.Overlay != nil
	}
	for _, c := range p.View.Cards {
		if c.ID == id {
			return true
		}
	}
	for _, s := range p.View.Sections {
		for _, c := range s.Cards {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

type cardView struct {
	Card    models.Card
	Focused bool
}

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"cardView": func(c models.Card, p *page) cardView {
			return cardView{Card: c, Focused: p.FocusID == c.ID}
		},
	}
	return template.New("").Funcs(funcMap).ParseFS(templates.FS, "*.html")
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
