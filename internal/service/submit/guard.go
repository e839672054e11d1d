package submit

import (
	"context"
	"sync"
	"time"
)

// Guard - не больше одной конвертации в работе на ключ сессии
type Guard interface {
	// Acquire - false, если ключ уже занят
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
	Held(ctx context.Context, key string) (bool, error)
}

// MemoryGuard - guard в памяти процесса; ttl снимает зависшие ключи
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]time.Time // key -> истекает
	now  func() time.Time
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if exp, ok := g.held[key]; ok && (exp.IsZero() || now.Before(exp)) {
		return false, nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	g.held[key] = exp
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}

func (g *MemoryGuard) Held(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	exp, ok := g.held[key]
	if !ok {
		return false, nil
	}
	if !exp.IsZero() && !g.now().Before(exp) {
		delete(g.held, key)
		return false, nil
	}
	return true, nil
}
