package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	initOnce sync.Once
	root     *zap.Logger
)

// Init construye el logger raíz. Idempotente: llamadas posteriores no
// tienen efecto, así que va una sola vez al inicio del main.
func Init(cfg Config) {
	initOnce.Do(func() {
		root = build(cfg)
	})
}

// L retorna el logger raíz. Si nadie llamó Init (tests, binarios
// chicos) se auto-inicializa en modo dev/info.
func L() *zap.Logger {
	if root == nil {
		Init(Config{Env: "dev", Level: "info"})
	}
	return root
}

// Named retorna el logger raíz con nombre de componente.
func Named(name string) *zap.Logger { return L().Named(name) }

// With retorna el logger raíz con campos persistentes adjuntos.
func With(fields ...zap.Field) *zap.Logger { return L().With(fields...) }

// Sync drena buffers pendientes. Va en defer al final del main.
func Sync() error {
	if root != nil {
		return root.Sync()
	}
	return nil
}
