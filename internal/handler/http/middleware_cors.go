package http

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, X-Trace-ID"
	corsMaxAge       = "86400"
)

// withCORS adds CORS headers for allowed origins and answers preflight
// requests with 204 before they reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if allowOrigin, ok := h.allowOrigin(origin); ok {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Expose-Headers", strings.Join([]string{traceIDHeader, appVersionHeader}, ", "))
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			if allowOrigin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin.
func (h *Handler) allowOrigin(origin string) (string, bool) {
	if slices.Contains(h.allowedOrigins, "*") {
		return "*", true
	}
	if origin != "" && slices.Contains(h.allowedOrigins, origin) {
		return origin, true
	}
	return "", false
}
