package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lehmann314159/heimwerker/internal/catalog"
	"github.com/lehmann314159/heimwerker/internal/metrics"
	"github.com/lehmann314159/heimwerker/internal/prefs"
	"github.com/lehmann314159/heimwerker/templates"
)

// Deps are the collaborators of the HTTP host.
type Deps struct {
	Catalog   *catalog.Catalog
	Prefs     prefs.Store
	Sessions  *scs.SessionManager
	Templates *template.Template
	Metrics   *metrics.Registry
	Logger    *slog.Logger
	Now       func() time.Time
}

// NewRouter wires every route of the gallery site.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	galleryHandler := NewGalleryHandler(d.Catalog, d.Prefs, d.Sessions, d.Templates, d.Logger, d.Now)
	apiHandler := NewAPIHandler(d.Catalog, d.Prefs, d.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(d.Logger))
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/healthz", HealthHandler())
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	r.Get("/static/style.css", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, templates.FS, "style.css")
	})

	r.Group(func(r chi.Router) {
		r.Use(Visitors)
		r.Method(http.MethodGet, "/api/videos", d.Metrics.Wrap("api_videos", http.HandlerFunc(apiHandler.Videos)))

		r.Group(func(r chi.Router) {
			r.Use(d.Sessions.LoadAndSave)
			r.Method(http.MethodGet, "/", d.Metrics.Wrap("gallery_index", http.HandlerFunc(galleryHandler.Index)))
			r.Method(http.MethodGet, "/videos/{id}", d.Metrics.Wrap("gallery_video", http.HandlerFunc(galleryHandler.Video)))
			r.Method(http.MethodPost, "/close", d.Metrics.Wrap("gallery_close", http.HandlerFunc(galleryHandler.Close)))
			r.Method(http.MethodPost, "/lang/{lang}", d.Metrics.Wrap("gallery_language", http.HandlerFunc(galleryHandler.Language)))
		})
	})

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
