package logger

import (
	"time"

	"go.uber.org/zap"
)

// Constructores de campos con nombres fijos, para que los mismos datos
// salgan siempre bajo la misma key en todo el servicio.

// ---- Request HTTP ----

func RequestID(v string) zap.Field       { return zap.String("request_id", v) }
func Method(v string) zap.Field          { return zap.String("method", v) }
func Path(v string) zap.Field            { return zap.String("path", v) }
func Status(v int) zap.Field             { return zap.Int("status", v) }
func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }
func DurationMs(v int64) zap.Field       { return zap.Int64("duration_ms", v) }
func Bytes(v int) zap.Field              { return zap.Int("bytes", v) }
func ClientIP(v string) zap.Field        { return zap.String("client_ip", v) }

// ---- Dominio ----

func OrgID(v string) zap.Field { return zap.String("org_id", v) }

// OrgDisplayID es el slug visible de la organización, no su id interno.
func OrgDisplayID(v string) zap.Field { return zap.String("org_displayid", v) }

// ProfileID coincide con el account id del identity provider.
func ProfileID(v string) zap.Field { return zap.String("profile_id", v) }

func Username(v string) zap.Field  { return zap.String("username", v) }
func CameraID(v string) zap.Field  { return zap.String("camera_id", v) }
func ProductID(v string) zap.Field { return zap.String("product_id", v) }

// Email identifica cuentas en logs de provisión. No loguear en paths calientes.
func Email(v string) zap.Field { return zap.String("email", v) }

// ---- Ubicación en el código ----

func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }

// Layer es controller, service o repository.
func Layer(v string) zap.Field { return zap.String("layer", v) }

func Err(err error) zap.Field { return zap.Error(err) }

// ---- Genéricos ----

func Count(v int) zap.Field             { return zap.Int("count", v) }
func ID(v string) zap.Field             { return zap.String("id", v) }
func Key(v string) zap.Field            { return zap.String("key", v) }
func Any(key string, v any) zap.Field   { return zap.Any(key, v) }
func String(key, v string) zap.Field    { return zap.String(key, v) }
func Int(key string, v int) zap.Field   { return zap.Int(key, v) }
func Bool(key string, v bool) zap.Field { return zap.Bool(key, v) }
