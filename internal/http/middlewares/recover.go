package middlewares

import (
	"net/http"

	"github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/observability/logger"
)

// WithRecover convierte un panic del handler en un 500 genérico. El
// detalle queda en el log; al cliente nunca le llega el stack ni el
// valor del panic.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log := logger.From(r.Context())
					log.Error("panic recovered",
						logger.Op("recover"),
						logger.Path(r.URL.Path),
						logger.Any("panic", rec),
					)
					errors.WriteError(w, errors.ErrInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
