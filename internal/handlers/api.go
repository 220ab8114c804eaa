package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lehmann314159/heimwerker/internal/catalog"
	"github.com/lehmann314159/heimwerker/internal/i18n"
	"github.com/lehmann314159/heimwerker/internal/models"
	"github.com/lehmann314159/heimwerker/internal/prefs"
)

type APIHandler struct {
	cat   *catalog.Catalog
	prefs prefs.Store
	log   *slog.Logger
}

func NewAPIHandler(cat *catalog.Catalog, store prefs.Store, log *slog.Logger) *APIHandler {
	if log == nil {
		log = slog.Default()
	}
	return &APIHandler{cat: cat, prefs: store, log: log}
}

type videosResponse struct {
	Language string      `json:"language"`
	Query    string      `json:"query"`
	Category string      `json:"category"`
	View     models.View `json:"view"`
}

// Videos returns the computed gallery as JSON. The language comes from the
// lang parameter, then the visitor's stored choice, then Accept-Language.
func (h *APIHandler) Videos(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	lang := params.Get("lang")
	if !i18n.Supported(lang) {
		lang = h.storedLanguage(r)
	}
	category := params.Get("category")
	if category == "" {
		category = models.AllCategories
	}
	q := catalog.Query{Language: lang, Search: params.Get("q"), Category: category}
	writeJSON(w, http.StatusOK, videosResponse{
		Language: q.Language,
		Query:    q.Search,
		Category: q.Category,
		View:     h.cat.Compute(q),
	})
}

func (h *APIHandler) storedLanguage(r *http.Request) string {
	lang, err := prefs.Language{Store: h.prefs, Visitor: VisitorID(r.Context())}.Load(r.Context())
	if err != nil {
		h.log.Warn("load language preference", slog.Any("error", err))
	}
	if i18n.Supported(lang) {
		return lang
	}
	return i18n.Match(r.Header.Get("Accept-Language"))
}

// HealthHandler returns a simple health check endpoint.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
