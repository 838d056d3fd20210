package rate

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter: misma semántica fixed-window que RedisLimiter pero
// in-process. Solo sirve para despliegues de una instancia.
type MemoryLimiter struct {
	Max    int64
	Window time.Duration

	mu   sync.Mutex
	hits map[string]int64
	win  int64 // inicio de la ventana actual (unix)
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		Max:    int64(max),
		Window: window,
		hits:   make(map[string]int64),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now().UTC()
	winStart := now.Truncate(l.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Al rotar la ventana se descarta todo el conteo anterior.
	if winStart.Unix() != l.win {
		l.win = winStart.Unix()
		l.hits = make(map[string]int64)
	}

	l.hits[key]++
	hits := l.hits[key]

	allowed := hits <= l.Max
	remaining := l.Max - hits
	if remaining < 0 {
		remaining = 0
	}

	res := Result{Allowed: allowed, Remaining: remaining}
	if !allowed {
		res.RetryAfter = winStart.Add(l.Window).Sub(now)
	}
	return res, nil
}
