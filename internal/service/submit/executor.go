package submit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
	"github.com/google/uuid"
)

type QuoteResolver interface {
	Resolve(ctx context.Context, from, to string) (rates.Quote, error)
}

type ConversionWriter interface {
	AppendConversion(ctx context.Context, rec domain.ConversionRecord) error
}

// SimulatedExecutor - заглушка исполнения: ждёт delay и пишет завершённую запись в историю
type SimulatedExecutor struct {
	quotes  QuoteResolver
	history ConversionWriter
	delay   time.Duration
	feeRate float64
	clock   clock.Clock
	logger  *slog.Logger
}

func NewSimulatedExecutor(
	quotes QuoteResolver,
	history ConversionWriter,
	delay time.Duration,
	feeRate float64,
	clk clock.Clock,
	logger *slog.Logger,
) *SimulatedExecutor {
	return &SimulatedExecutor{
		quotes:  quotes,
		history: history,
		delay:   delay,
		feeRate: feeRate,
		clock:   clk,
		logger:  logger,
	}
}

func (e *SimulatedExecutor) ExecuteConversion(ctx context.Context, from, to string, amount float64) (domain.ConversionRecord, error) {
	q, err := e.quotes.Resolve(ctx, from, to)
	if err != nil {
		return domain.ConversionRecord{}, fmt.Errorf("resolve rate: %w", err)
	}
	if !q.Available() {
		return domain.ConversionRecord{}, fmt.Errorf("%w: %s/%s", domain.ErrRateUnavailable, q.From, q.To)
	}

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.ConversionRecord{}, ctx.Err()
		case <-timer.C:
		}
	}

	toAmount := amount * q.Rate
	rec := domain.ConversionRecord{
		ID:         uuid.NewString(),
		From:       q.From,
		To:         q.To,
		FromAmount: amount,
		ToAmount:   toAmount,
		Rate:       q.Rate,
		Fee:        amount * e.feeRate, // в валюте From
		Status:     domain.StatusCompleted,
		Timestamp:  e.clock.Now(),
	}
	if err := e.history.AppendConversion(ctx, rec); err != nil {
		e.logger.Error("failed to append conversion", "id", rec.ID, "err", err)
		return domain.ConversionRecord{}, fmt.Errorf("append conversion: %w", err)
	}
	e.logger.Debug("conversion recorded", "id", rec.ID, "from", rec.From, "to", rec.To, "to_amount", rec.ToAmount)
	return rec, nil
}
