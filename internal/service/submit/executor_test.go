package submit_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
	submitmocks "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedExecutor_Completes(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := submitmocks.NewMockQuoteResolver(ctrl)
	history := submitmocks.NewMockConversionWriter(ctrl)

	quotes.EXPECT().
		Resolve(gomock.Any(), "BTC", "USD").
		Return(rates.Quote{From: "BTC", To: "USD", Rate: 52340.50, Source: rates.SourceDirect}, nil)

	var stored domain.ConversionRecord
	history.EXPECT().
		AppendConversion(gomock.Any(), gomock.AssignableToTypeOf(domain.ConversionRecord{})).
		DoAndReturn(func(_ context.Context, rec domain.ConversionRecord) error {
			stored = rec
			return nil
		})

	exec := submit.NewSimulatedExecutor(quotes, history, time.Millisecond, 0.002, clock.Fixed(testNow), slog.Default())
	rec, err := exec.ExecuteConversion(context.Background(), "BTC", "USD", 0.5)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, domain.StatusCompleted, rec.Status)
	assert.InDelta(t, 26170.25, rec.ToAmount, 1e-9)
	// комиссия в валюте From: 0.5 BTC * 0.002
	assert.InDelta(t, 0.001, rec.Fee, 1e-12)
	assert.Less(t, rec.Fee, rec.FromAmount)
	assert.Equal(t, 52340.50, rec.Rate)
	assert.Equal(t, testNow, rec.Timestamp)
	assert.Equal(t, rec, stored)
}

func TestSimulatedExecutor_CancelledDuringDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := submitmocks.NewMockQuoteResolver(ctrl)
	history := submitmocks.NewMockConversionWriter(ctrl)

	quotes.EXPECT().
		Resolve(gomock.Any(), "BTC", "USD").
		Return(rates.Quote{From: "BTC", To: "USD", Rate: 1, Source: rates.SourceDirect}, nil)
	// запись в историю не ожидается

	exec := submit.NewSimulatedExecutor(quotes, history, time.Hour, 0, clock.Fixed(testNow), slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exec.ExecuteConversion(ctx, "BTC", "USD", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedExecutor_RateUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := submitmocks.NewMockQuoteResolver(ctrl)
	history := submitmocks.NewMockConversionWriter(ctrl)

	quotes.EXPECT().
		Resolve(gomock.Any(), "ETH", "USDT").
		Return(rates.Quote{From: "ETH", To: "USDT", Source: rates.SourceNone}, nil)

	exec := submit.NewSimulatedExecutor(quotes, history, 0, 0, clock.Fixed(testNow), slog.Default())
	_, err := exec.ExecuteConversion(context.Background(), "ETH", "USDT", 1)
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestSimulatedExecutor_UnknownCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := submitmocks.NewMockQuoteResolver(ctrl)
	history := submitmocks.NewMockConversionWriter(ctrl)

	quotes.EXPECT().
		Resolve(gomock.Any(), "DOGE", "USD").
		Return(rates.Quote{}, domain.ErrUnknownCurrency)

	exec := submit.NewSimulatedExecutor(quotes, history, 0, 0, clock.Fixed(testNow), slog.Default())
	_, err := exec.ExecuteConversion(context.Background(), "DOGE", "USD", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestSimulatedExecutor_AppendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := submitmocks.NewMockQuoteResolver(ctrl)
	history := submitmocks.NewMockConversionWriter(ctrl)

	quotes.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rates.Quote{From: "BTC", To: "USD", Rate: 2}, nil)
	dbErr := errors.New("insert failed")
	history.EXPECT().AppendConversion(gomock.Any(), gomock.Any()).Return(dbErr)

	exec := submit.NewSimulatedExecutor(quotes, history, 0, 0, clock.Fixed(testNow), slog.Default())
	_, err := exec.ExecuteConversion(context.Background(), "BTC", "USD", 1)
	assert.ErrorIs(t, err, dbErr)
}
