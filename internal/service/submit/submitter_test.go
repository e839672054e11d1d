package submit_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
	submitmocks "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)

func newSubmitter(t *testing.T, exec submit.Executor, guard submit.Guard, timeout time.Duration) *submit.Submitter {
	t.Helper()
	s := submit.NewSubmitter(exec, guard, submit.Options{Timeout: timeout}, clock.Fixed(testNow), slog.Default())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func waitTask(t *testing.T, task *submit.Task) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, task.Wait(ctx))
}

func TestSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)

	rec := domain.ConversionRecord{ID: "r1", From: "BTC", To: "USD", FromAmount: 0.5, ToAmount: 26170.25, Status: domain.StatusCompleted}
	exec.EXPECT().
		ExecuteConversion(gomock.Any(), "BTC", "USD", 0.5).
		Return(rec, nil).
		Times(1)

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), time.Second)
	task, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "btc", To: "usd", Amount: "0.5"})
	require.NoError(t, err)
	waitTask(t, task)

	assert.Equal(t, submit.TaskSucceeded, task.Status())
	got, err := task.Result()
	assert.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.False(t, s.Busy(context.Background(), "s1"))

	info := task.Info()
	require.NotNil(t, info.Record)
	assert.Equal(t, "r1", info.Record.ID)
	assert.Equal(t, testNow, info.CreatedAt)

	found, err := s.Task(task.ID)
	assert.NoError(t, err)
	assert.Same(t, task, found)
}

func TestSubmit_BusyRejectsSecond(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)

	release := make(chan struct{})
	started := make(chan struct{})
	exec.EXPECT().
		ExecuteConversion(gomock.Any(), "BTC", "USD", 1.0).
		DoAndReturn(func(ctx context.Context, _, _ string, _ float64) (domain.ConversionRecord, error) {
			close(started)
			<-release
			return domain.ConversionRecord{ID: "first"}, nil
		}).
		Times(1)

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), time.Second)
	req := submit.Request{SessionKey: "s1", From: "BTC", To: "USD", Amount: "1"}

	first, err := s.Submit(context.Background(), req)
	require.NoError(t, err)
	<-started
	assert.True(t, s.Busy(context.Background(), "s1"))

	_, err = s.Submit(context.Background(), req)
	assert.ErrorIs(t, err, submit.ErrBusy)

	close(release)
	waitTask(t, first)
	assert.False(t, s.Busy(context.Background(), "s1"))

	// после завершения сессия снова может отправлять
	exec.EXPECT().
		ExecuteConversion(gomock.Any(), "BTC", "USD", 1.0).
		Return(domain.ConversionRecord{ID: "second"}, nil)
	second, err := s.Submit(context.Background(), req)
	require.NoError(t, err)
	waitTask(t, second)
	assert.Equal(t, submit.TaskSucceeded, second.Status())
}

func TestSubmit_DifferentSessionsRunTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)

	release := make(chan struct{})
	exec.EXPECT().
		ExecuteConversion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ float64) (domain.ConversionRecord, error) {
			<-release
			return domain.ConversionRecord{}, nil
		}).
		Times(2)

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), time.Second)
	a, err := s.Submit(context.Background(), submit.Request{SessionKey: "a", From: "BTC", To: "USD", Amount: "1"})
	require.NoError(t, err)
	b, err := s.Submit(context.Background(), submit.Request{SessionKey: "b", From: "ETH", To: "USD", Amount: "2"})
	require.NoError(t, err)

	close(release)
	waitTask(t, a)
	waitTask(t, b)
}

func TestSubmit_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)

	started := make(chan struct{})
	exec.EXPECT().
		ExecuteConversion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ float64) (domain.ConversionRecord, error) {
			close(started)
			<-ctx.Done()
			return domain.ConversionRecord{}, ctx.Err()
		})

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), time.Minute)
	task, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "BTC", To: "USD", Amount: "1"})
	require.NoError(t, err)
	<-started

	_, err = s.Cancel(task.ID)
	require.NoError(t, err)
	waitTask(t, task)

	assert.Equal(t, submit.TaskCancelled, task.Status())
	_, rerr := task.Result()
	assert.ErrorIs(t, rerr, context.Canceled)
	assert.False(t, s.Busy(context.Background(), "s1"))
	assert.Nil(t, task.Info().Record)
}

func TestSubmit_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)

	exec.EXPECT().
		ExecuteConversion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ float64) (domain.ConversionRecord, error) {
			<-ctx.Done()
			return domain.ConversionRecord{}, ctx.Err()
		})

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), 20*time.Millisecond)
	task, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "BTC", To: "USD", Amount: "1"})
	require.NoError(t, err)
	waitTask(t, task)

	assert.Equal(t, submit.TaskFailed, task.Status())
	_, rerr := task.Result()
	assert.ErrorIs(t, rerr, context.DeadlineExceeded)
}

func TestSubmit_ExecutorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)

	exec.EXPECT().
		ExecuteConversion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ConversionRecord{}, domain.ErrRateUnavailable)

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), time.Second)
	task, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "ETH", To: "USDT", Amount: "1"})
	require.NoError(t, err)
	waitTask(t, task)

	assert.Equal(t, submit.TaskFailed, task.Status())
	assert.Equal(t, domain.ErrRateUnavailable.Error(), task.Info().Error)
}

func TestSubmit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)
	// исполнитель не должен вызываться

	s := newSubmitter(t, exec, submit.NewMemoryGuard(), time.Second)
	for _, amount := range []string{"", "   ", "abc", "-1"} {
		_, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "BTC", To: "USD", Amount: amount})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %q", amount)
	}
	assert.False(t, s.Busy(context.Background(), "s1"))
}

func TestSubmit_GuardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)
	guard := submitmocks.NewMockGuard(ctrl)

	redisDown := errors.New("connection refused")
	guard.EXPECT().Acquire(gomock.Any(), "s1", gomock.Any()).Return(false, redisDown)

	s := newSubmitter(t, exec, guard, time.Second)
	_, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "BTC", To: "USD", Amount: "1"})
	assert.ErrorIs(t, err, redisDown)
}

func TestSubmit_ReleasesGuardAfterRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := submitmocks.NewMockExecutor(ctrl)
	guard := submitmocks.NewMockGuard(ctrl)

	gomock.InOrder(
		guard.EXPECT().Acquire(gomock.Any(), "s1", 31*time.Second).Return(true, nil),
		exec.EXPECT().ExecuteConversion(gomock.Any(), "BTC", "USD", 2.0).Return(domain.ConversionRecord{ID: "x"}, nil),
		guard.EXPECT().Release(gomock.Any(), "s1").Return(nil),
	)

	s := newSubmitter(t, exec, guard, time.Second)
	task, err := s.Submit(context.Background(), submit.Request{SessionKey: "s1", From: "BTC", To: "USD", Amount: "2"})
	require.NoError(t, err)
	waitTask(t, task)
}

func TestTask_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newSubmitter(t, submitmocks.NewMockExecutor(ctrl), submit.NewMemoryGuard(), time.Second)

	_, err := s.Task("missing")
	assert.ErrorIs(t, err, submit.ErrTaskNotFound)
	_, err = s.Cancel("missing")
	assert.ErrorIs(t, err, submit.ErrTaskNotFound)
}
