package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/snapshot"
)

type Reloader interface {
	Reload(ctx context.Context) (snapshot.Result, error)
}

// Pruner - всё, что чистит устаревшее состояние: сессии калькулятора, завершённые задачи
type Pruner interface {
	Prune() int
}

type Scheduler struct {
	reloader Reloader
	pruners  []Pruner
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler - конструктор планировщика перезагрузки снапшота
func NewScheduler(reloader Reloader, interval time.Duration, logger *slog.Logger, pruners ...Pruner) *Scheduler {
	return &Scheduler{
		reloader: reloader,
		pruners:  pruners,
		interval: interval,
		logger:   logger,
	}
}

// Start - запускает периодическое выполнение задачи до остановки контекста.
// Первую загрузку делает приложение при старте, поэтому сразу не запускаемся.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started")
	s.logger.Debug("scheduler interval configured", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce - одна итерация: перечитать снапшот и почистить старое
func (s *Scheduler) runOnce(ctx context.Context) {
	s.logger.Debug("tick: running reload cycle")
	if res, err := s.reloader.Reload(ctx); err != nil {
		s.logger.Error("tick: reload failed", slog.Any("err", err))
	} else {
		s.logger.Debug("tick: snapshot reloaded",
			slog.Int("currencies", res.Currencies),
			slog.Int("rates", res.Rates),
		)
	}

	pruned := 0
	for _, p := range s.pruners {
		pruned += p.Prune()
	}
	s.logger.Debug("tick: completed", slog.Int("pruned", pruned))
}
