package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// CORSPolicy describes which browser origins may call the API and what they may see.
type CORSPolicy struct {
	AllowedOrigins []string
	// ExposedHeaders are the response headers scripts on an allowed origin can read.
	ExposedHeaders []string
	// MaxAge is how long a browser may cache a preflight answer.
	MaxAge time.Duration
}

var (
	corsMethods        = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}, ", ")
	corsRequestHeaders = strings.Join([]string{"Content-Type", "Accept", RequestIDHeader}, ", ")
)

// NewCORS builds a middleware enforcing p. Every OPTIONS request is answered
// with 204 without reaching the wrapped handler; only allowed origins get the
// Access-Control headers.
func NewCORS(p CORSPolicy) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(p.AllowedOrigins))
	for _, o := range p.AllowedOrigins {
		if o = strings.TrimSuffix(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	exposed := strings.Join(p.ExposedHeaders, ", ")
	maxAge := strconv.FormatInt(int64(p.MaxAge/time.Second), 10)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")
			origin := r.Header.Get("Origin")
			allowed := origin != "" && slices.Contains(origins, origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				if allowed {
					h.Set("Access-Control-Allow-Methods", corsMethods)
					h.Set("Access-Control-Allow-Headers", corsRequestHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed && exposed != "" {
				h.Set("Access-Control-Expose-Headers", exposed)
			}
			next.ServeHTTP(w, r)
		})
	}
}
