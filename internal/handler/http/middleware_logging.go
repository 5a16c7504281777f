package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-starwars-favorites/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", duration).
			Int("size", lw.BytesWritten()).
			Send()
	})
}
