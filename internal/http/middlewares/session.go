package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/observability/logger"
)

// LoginPath es el entry point al que el shell redirige cuando la sesión
// no resuelve.
const LoginPath = "/login"

// SessionResolver resuelve un bearer token a (perfil, features).
// Implementado por services/session.
type SessionResolver interface {
	Resolve(ctx context.Context, bearer string) (*SessionData, error)
}

// RequireSession valida que exista una sesión y la inyecta en el contexto.
// Sin sesión válida responde 401 con el destino de redirección del shell:
// el único "estado" del page shell es authorized vs redirect.
func RequireSession(resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer := bearerToken(r)
			if bearer == "" {
				errors.WriteErrorRedirect(w, errors.ErrUnauthorized, LoginPath)
				return
			}

			s, err := resolver.Resolve(r.Context(), bearer)
			if err != nil {
				logger.From(r.Context()).Debug("session resolution failed", logger.Err(err))
				errors.WriteErrorRedirect(w, errors.ErrUnauthorized, LoginPath)
				return
			}

			ctx := WithSession(r.Context(), s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extrae el token del header Authorization.
func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
