package submit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/conversion"
	"github.com/google/uuid"
)

// Executor - выполняет конвертацию и возвращает запись истории
type Executor interface {
	ExecuteConversion(ctx context.Context, from, to string, amount float64) (domain.ConversionRecord, error)
}

// Request - запрос на конвертацию от сессии калькулятора
type Request struct {
	SessionKey string
	From       string
	To         string
	Amount     string
}

type Options struct {
	Timeout   time.Duration // на одну задачу
	GuardTTL  time.Duration // срок жизни ключа guard; 0 = Timeout + 30s
	Retention time.Duration // сколько хранить завершённые задачи
}

// Submitter - запускает конвертации в фоне, не больше одной на сессию
type Submitter struct {
	executor Executor
	guard    Guard
	opts     Options
	clock    clock.Clock
	logger   *slog.Logger

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup

	mu    sync.RWMutex
	tasks map[string]*Task
}

func NewSubmitter(executor Executor, guard Guard, opts Options, clk clock.Clock, logger *slog.Logger) *Submitter {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.GuardTTL <= 0 {
		opts.GuardTTL = opts.Timeout + 30*time.Second
	}
	if opts.Retention <= 0 {
		opts.Retention = time.Hour
	}
	baseCtx, stop := context.WithCancel(context.Background())
	return &Submitter{
		executor: executor,
		guard:    guard,
		opts:     opts,
		clock:    clk,
		logger:   logger,
		baseCtx:  baseCtx,
		stop:     stop,
		tasks:    make(map[string]*Task),
	}
}

// Submit - ставит конвертацию в работу. ErrBusy, если у сессии уже есть задача в работе.
// Задача живёт дольше запроса: ctx используется только для guard.
func (s *Submitter) Submit(ctx context.Context, req Request) (*Task, error) {
	if strings.TrimSpace(req.Amount) == "" {
		return nil, fmt.Errorf("%w: amount is empty", domain.ErrInvalidAmount)
	}
	amount, ok := conversion.ParseAmount(req.Amount)
	if !ok || amount < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, req.Amount)
	}
	from, to := domain.NormalizeCode(req.From), domain.NormalizeCode(req.To)

	acquired, err := s.guard.Acquire(ctx, req.SessionKey, s.opts.GuardTTL)
	if err != nil {
		s.logger.Error("failed to acquire in-flight guard", "session", req.SessionKey, "err", err)
		return nil, fmt.Errorf("acquire guard: %w", err)
	}
	if !acquired {
		s.logger.Info("conversion rejected: busy", "session", req.SessionKey)
		return nil, ErrBusy
	}

	runCtx, cancel := context.WithTimeout(s.baseCtx, s.opts.Timeout)
	task := &Task{
		ID:        uuid.NewString(),
		Key:       req.SessionKey,
		From:      from,
		To:        to,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
		status:    TaskPending,
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(runCtx, task)

	s.logger.Info("conversion submitted",
		"task", task.ID,
		"session", req.SessionKey,
		"from", from,
		"to", to,
		"amount", amount,
	)
	return task, nil
}

func (s *Submitter) run(ctx context.Context, task *Task) {
	defer s.wg.Done()
	defer task.cancel()

	rec, err := s.executor.ExecuteConversion(ctx, task.From, task.To, task.Amount)

	status := TaskSucceeded
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		status = TaskCancelled
	default:
		status = TaskFailed
	}

	// guard снимается до закрытия done: после Wait сессия снова свободна
	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if rerr := s.guard.Release(releaseCtx, task.Key); rerr != nil {
		s.logger.Warn("failed to release in-flight guard", "session", task.Key, "err", rerr)
	}
	cancel()

	task.finish(status, rec, err, s.clock.Now())

	if err != nil {
		s.logger.Warn("conversion finished", "task", task.ID, "status", status, "err", err)
		return
	}
	s.logger.Info("conversion finished", "task", task.ID, "status", status, "record", rec.ID)
}

// Task - задача по ID
func (s *Submitter) Task(id string) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// Cancel - отмена задачи по ID
func (s *Submitter) Cancel(id string) (*Task, error) {
	t, err := s.Task(id)
	if err != nil {
		return nil, err
	}
	t.Cancel()
	return t, nil
}

// Busy - есть ли у сессии задача в работе
func (s *Submitter) Busy(ctx context.Context, key string) bool {
	held, err := s.guard.Held(ctx, key)
	if err != nil {
		s.logger.Warn("failed to check in-flight guard", "session", key, "err", err)
		return false
	}
	return held
}

// Prune - забывает задачи, завершённые раньше Retention
func (s *Submitter) Prune() int {
	deadline := s.clock.Now().Add(-s.opts.Retention)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, t := range s.tasks {
		if t.finishedBefore(deadline) {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed
}

// Shutdown - отменяет задачи в работе и ждёт их завершения
func (s *Submitter) Shutdown(ctx context.Context) error {
	s.stop()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
