package middlewares

import (
	"context"

	"github.com/storesight/storesight/internal/domain/repository"
)

// =================================================================================
// CONTEXT KEYS
// =================================================================================

type ctxKey string

const (
	// ctxSessionKey guarda la sesión resuelta (perfil + features)
	ctxSessionKey ctxKey = "session"
	// ctxRequestIDKey guarda el request ID
	ctxRequestIDKey ctxKey = "request_id"
)

// SessionData es el resultado de resolver un bearer token: el perfil del
// sujeto del token y el set de features habilitadas de esa cuenta.
type SessionData struct {
	Profile  repository.Profile
	Features []string
}

// =================================================================================
// CONTEXT SETTERS / GETTERS
// =================================================================================

// WithSession inyecta la sesión resuelta en el contexto.
func WithSession(ctx context.Context, s *SessionData) context.Context {
	return context.WithValue(ctx, ctxSessionKey, s)
}

// GetSession obtiene la sesión del contexto.
// Retorna nil si el middleware de sesión no se aplicó.
func GetSession(ctx context.Context) *SessionData {
	if v := ctx.Value(ctxSessionKey); v != nil {
		if s, ok := v.(*SessionData); ok {
			return s
		}
	}
	return nil
}

// MustGetSession obtiene la sesión o hace panic.
// Usar solo en rutas donde RequireSession SIEMPRE se aplica.
func MustGetSession(ctx context.Context) *SessionData {
	s := GetSession(ctx)
	if s == nil {
		panic("middlewares: no session in context")
	}
	return s
}

// setRequestID inyecta el request ID en el contexto (interno).
func setRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, requestID)
}

// GetRequestID obtiene el request ID del contexto.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(ctxRequestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
