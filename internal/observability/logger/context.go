package logger

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// ToContext guarda un logger scoped en el contexto. Los middlewares lo
// usan para que todo lo que corra bajo un request loguee con sus campos
// (request_id, client_ip) sin pasarlos a mano.
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From recupera el logger scoped del contexto, o el singleton si el
// contexto no trae uno. Siempre es seguro llamarlo.
func From(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return L()
	}
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return L()
}
