package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/lehmann314159/heimwerker/internal/catalog"
	"github.com/lehmann314159/heimwerker/internal/gallery"
	"github.com/lehmann314159/heimwerker/internal/i18n"
	"github.com/lehmann314159/heimwerker/internal/prefs"
)

// Session keys of the view state.
const (
	sessionQuery    = "query"
	sessionCategory = "category"
	sessionSelected = "selected"
	sessionTrigger  = "trigger"
	sessionFocus    = "focus"
)

type GalleryHandler struct {
	cat      *catalog.Catalog
	prefs    prefs.Store
	sessions *scs.SessionManager
	tmpl     *template.Template
	log      *slog.Logger
	now      func() time.Time
}

func NewGalleryHandler(cat *catalog.Catalog, store prefs.Store, sessions *scs.SessionManager, tmpl *template.Template, log *slog.Logger, now func() time.Time) *GalleryHandler {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &GalleryHandler{cat: cat, prefs: store, sessions: sessions, tmpl: tmpl, log: log, now: now}
}

// controller builds a bootstrapped controller for the request, painting onto
// a fresh page.
func (h *GalleryHandler) controller(r *http.Request) (*gallery.Controller, *page) {
	ctx := r.Context()
	p := &page{}
	state := gallery.State{
		Query:    h.sessions.GetString(ctx, sessionQuery),
		Category: h.sessions.GetString(ctx, sessionCategory),
		Selected: h.sessions.GetString(ctx, sessionSelected),
		Trigger:  h.sessions.GetString(ctx, sessionTrigger),
	}
	ctrl := gallery.New(h.cat, prefs.Language{Store: h.prefs, Visitor: VisitorID(ctx)}, p,
		gallery.WithLogger(h.log),
		gallery.WithClock(h.now),
		gallery.WithDefaultLanguage(i18n.Match(r.Header.Get("Accept-Language"))),
		gallery.WithState(state),
	)
	ctrl.Bootstrap(ctx)
	return ctrl, p
}

func (h *GalleryHandler) save(r *http.Request, s gallery.State) {
	ctx := r.Context()
	h.sessions.Put(ctx, sessionQuery, s.Query)
	h.sessions.Put(ctx, sessionCategory, s.Category)
	h.sessions.Put(ctx, sessionSelected, s.Selected)
	h.sessions.Put(ctx, sessionTrigger, s.Trigger)
}

func (h *GalleryHandler) render(w http.ResponseWriter, r *http.Request, name string, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, p); err != nil {
		h.log.Error("render template", slog.String("template", name), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Index renders the gallery. Present q and category parameters replace the
// session's search and filter.
func (h *GalleryHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctrl, p := h.controller(r)
	params := r.URL.Query()
	if params.Has("q") {
		ctrl.UpdateSearch(params.Get("q"))
	}
	if params.Has("category") {
		ctrl.UpdateFilter(params.Get("category"))
	}
	if id := h.sessions.PopString(r.Context(), sessionFocus); id != "" {
		p.Focus(id)
	}
	if p.Overlay != nil && p.FocusID == "" {
		p.Focus(gallery.CloseControlID)
	}
	h.save(r, ctrl.State())
	p.State = ctrl.State()

	if isHTMX(r) {
		h.render(w, r, "gallery", p)
		return
	}
	h.render(w, r, "index.html", p)
}

// Video renders the gallery with the detail overlay of one video open.
func (h *GalleryHandler) Video(w http.ResponseWriter, r *http.Request) {
	ctrl, p := h.controller(r)
	if !ctrl.ActivateCard(chi.URLParam(r, "id"), "") {
		http.Error(w, "Video not found", http.StatusNotFound)
		return
	}
	h.save(r, ctrl.State())
	p.State = ctrl.State()
	h.render(w, r, "index.html", p)
}

// Close dismisses the overlay and sends the visitor back to the gallery,
// focused on the card that opened it when that card is still shown.
func (h *GalleryHandler) Close(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := h.controller(r)
	trigger := ctrl.State().Trigger
	target := "/"
	if ctrl.CloseDetail() {
		h.sessions.Put(r.Context(), sessionFocus, trigger)
		target += "#" + trigger
	}
	h.save(r, ctrl.State())
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Language switches and persists the visitor's language. Unknown codes
// change nothing.
func (h *GalleryHandler) Language(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := h.controller(r)
	ctrl.SetLanguage(r.Context(), chi.URLParam(r, "lang"))
	h.save(r, ctrl.State())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
