package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		wantStatus     int
		wantAllow      string
		wantNextCalled bool
	}{
		{
			name:           "wildcard allows any origin",
			allowed:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://naboo.example",
			wantStatus:     http.StatusOK,
			wantAllow:      "*",
			wantNextCalled: true,
		},
		{
			name:           "listed origin is echoed",
			allowed:        []string{"https://naboo.example", "https://hoth.example"},
			method:         http.MethodGet,
			origin:         "https://hoth.example",
			wantStatus:     http.StatusOK,
			wantAllow:      "https://hoth.example",
			wantNextCalled: true,
		},
		{
			name:           "unlisted origin gets no header",
			allowed:        []string{"https://naboo.example"},
			method:         http.MethodGet,
			origin:         "https://mustafar.example",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:       "preflight short-circuits",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			origin:     "https://naboo.example",
			wantStatus: http.StatusNoContent,
			wantAllow:  "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.allowedOrigins = tt.allowed

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/people", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			h.withCORS(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantAllow != "" && tt.wantAllow != "*" {
				assert.Equal(t, "Origin", rr.Header().Get("Vary"))
			}
		})
	}
}
