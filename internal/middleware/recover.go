package middleware

import (
	"net/http"
	"runtime/debug"

	"vetmanager-api-gateway/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer para loguear el panic con el logger de la app
// (y el correlation id) en vez de stderr.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered", map[string]any{
					"panic":          rec,
					"path":           r.URL.Path,
					"correlation_id": CorrelationID(r.Context()),
					"stack":          string(debug.Stack()),
				})
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
