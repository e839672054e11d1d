package submit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
)

type executorFunc func(ctx context.Context, from, to string, amount float64) error

func (f executorFunc) ExecuteConversion(ctx context.Context, from, to string, amount float64) (domain.ConversionRecord, error) {
	return domain.ConversionRecord{}, f(ctx, from, to, amount)
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
