package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// VisitorCookie holds the anonymous visitor id that preferences are stored under.
const VisitorCookie = "hm_visitor"

const visitorMaxAge = 365 * 24 * time.Hour

type visitorKey struct{}

// Visitors makes sure every request carries a visitor id, issuing a new
// cookie when the request has none or an invalid one.
func Visitors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(VisitorCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(visitorMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey{}, id)))
	})
}

// VisitorID returns the id set by Visitors, or "" outside that middleware.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}
