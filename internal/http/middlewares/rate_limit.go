package middlewares

import (
	"net/http"
	"strconv"

	"github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/observability/logger"
	"github.com/storesight/storesight/internal/rate"
)

// WithRateLimit aplica un limiter por IP cliente. Si el limiter falla
// (ej: Redis caído) el request pasa: el throttle nunca tira el endpoint.
func WithRateLimit(limiter rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				logger.From(r.Context()).Warn("rate limiter unavailable, allowing request",
					logger.Op("rate_limit"),
					logger.Err(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !res.Allowed {
				retry := int(res.RetryAfter.Seconds())
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				errors.WriteError(w, errors.ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
