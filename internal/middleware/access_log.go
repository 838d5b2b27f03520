package middleware

import (
	"net/http"
	"time"

	"dog-walking/internal/platform/logger"
	"dog-walking/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog loguea cada request y alimenta las métricas HTTP.
// El label de ruta usa el patrón de chi (/booking/{id}) para no explotar cardinalidad.
func AccessLog(log logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			if m != nil {
				m.Begin()
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			// En defer: un panic que sube (p.ej. http.ErrAbortHandler) también cierra el in-flight.
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				elapsed := time.Since(start)

				route := ""
				if rc := chi.RouteContext(r.Context()); rc != nil {
					route = rc.RoutePattern()
				}
				if m != nil {
					m.Observe(r.Method, route, status, elapsed)
				}

				log.Info("access", map[string]any{
					"request_id":  GetRequestID(r.Context()),
					"method":      r.Method,
					"path":        r.URL.Path,
					"route":       route,
					"status":      status,
					"bytes":       ww.BytesWritten(),
					"duration_ms": elapsed.Milliseconds(),
				})
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
