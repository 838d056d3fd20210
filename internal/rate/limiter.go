// Package rate implementa throttling fixed-window para endpoints
// públicos abusables (hoy: el formulario de contacto). El backend sigue
// al de cache: Redis en producción multi-instancia, memoria en dev.
package rate

import (
	"context"
	"fmt"
	"strings"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

// Result describe el estado de la ventana para una key.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter decide si un hit para una key entra en la ventana actual.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// RedisLimiter cuenta hits por (key, ventana) con INCR + EXPIRE. La
// ventana es fija: todos los hits de un mismo tramo temporal comparten
// contador, y al rotar el tramo el contador arranca de cero.
type RedisLimiter struct {
	client *rdb.Client
	prefix string
	max    int64
	window time.Duration
}

func NewRedisLimiter(client *rdb.Client, prefix string, max int, window time.Duration) *RedisLimiter {
	if prefix == "" {
		prefix = "rl:"
	}
	return &RedisLimiter{client: client, prefix: prefix, max: int64(max), window: window}
}

func (l *RedisLimiter) bucketKey(key string, at time.Time) string {
	start := at.Truncate(l.window).Unix()
	return fmt.Sprintf("%s%s:%d", l.prefix, strings.ReplaceAll(key, " ", "_"), start)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	bucket := l.bucketKey(key, time.Now().UTC())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, bucket)
	ttl := pipe.TTL(ctx, bucket)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, err
	}

	hits := incr.Val()
	if hits == 1 {
		// Primer hit de la ventana: fijar expiración del contador.
		_ = l.client.Expire(ctx, bucket, l.window).Err()
		ttl = l.client.TTL(ctx, bucket)
	}

	res := Result{
		Allowed:   hits <= l.max,
		Remaining: max64(l.max-hits, 0),
	}
	if !res.Allowed {
		res.RetryAfter = ttl.Val()
		if res.RetryAfter <= 0 {
			res.RetryAfter = l.window
		}
	}
	return res, nil
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
