package submit

import (
	"context"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskSucceeded TaskStatus = "succeeded"
	TaskFailed    TaskStatus = "failed"
	TaskCancelled TaskStatus = "cancelled"
)

// Task - одна отправленная конвертация
type Task struct {
	ID        string
	Key       string
	From      string
	To        string
	Amount    float64
	CreatedAt time.Time

	cancel context.CancelFunc
	done   chan struct{}

	mu         sync.Mutex
	status     TaskStatus
	record     domain.ConversionRecord
	err        error
	finishedAt time.Time
}

// TaskInfo - снимок задачи для ответа API
type TaskInfo struct {
	ID        string                   `json:"id"`
	Status    TaskStatus               `json:"status"`
	From      string                   `json:"from"`
	To        string                   `json:"to"`
	Amount    float64                  `json:"amount"`
	CreatedAt time.Time                `json:"created_at"`
	Record    *domain.ConversionRecord `json:"record,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

func (t *Task) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Result - запись и ошибка; имеет смысл после Done
func (t *Task) Result() (domain.ConversionRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record, t.err
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait - ждёт завершения задачи или отмены ctx
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel - отменяет задачу; для завершённой ничего не делает
func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) Info() TaskInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	info := TaskInfo{
		ID:        t.ID,
		Status:    t.status,
		From:      t.From,
		To:        t.To,
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
	}
	if t.status == TaskSucceeded {
		rec := t.record
		info.Record = &rec
	}
	if t.err != nil {
		info.Error = t.err.Error()
	}
	return info
}

func (t *Task) finish(status TaskStatus, rec domain.ConversionRecord, err error, at time.Time) {
	t.mu.Lock()
	t.status = status
	t.record = rec
	t.err = err
	t.finishedAt = at
	t.mu.Unlock()
	close(t.done)
}

func (t *Task) finishedBefore(deadline time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status != TaskPending && t.finishedAt.Before(deadline)
}
