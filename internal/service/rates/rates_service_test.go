package rates

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	ratesmocks "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates/mocks"
	"github.com/golang/mock/gomock"
)

func sampleCurrencies() []domain.Currency {
	return []domain.Currency{
		{Code: "BTC", Name: "Bitcoin", Kind: domain.KindCrypto},
		{Code: "ETH", Name: "Ethereum", Kind: domain.KindCrypto},
		{Code: "USDT", Name: "Tether USD", Kind: domain.KindCrypto},
		{Code: "USD", Name: "US Dollar", Kind: domain.KindFiat},
	}
}

// helper to build service with mocks
func setupSvc(t *testing.T) (context.Context, *ratesmocks.MockCurrencyReader, *ratesmocks.MockRateReader, Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	currencies := ratesmocks.NewMockCurrencyReader(ctrl)
	rates := ratesmocks.NewMockRateReader(ctrl)
	svc := NewService(currencies, rates, slog.Default())
	return context.Background(), currencies, rates, svc
}

// -------------------------
// Currencies / ListRates
// -------------------------

func TestCurrencies_Success(t *testing.T) {
	ctx, currencies, _, svc := setupSvc(t)

	currencies.EXPECT().ListCurrencies(gomock.Any()).Return(sampleCurrencies(), nil)

	got, err := svc.Currencies(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 || got[0].Code != "BTC" || got[3].Kind != domain.KindFiat {
		t.Fatalf("unexpected currencies: %+v", got)
	}
}

func TestCurrencies_RepoError(t *testing.T) {
	ctx, currencies, _, svc := setupSvc(t)

	dbErr := errors.New("db down")
	currencies.EXPECT().ListCurrencies(gomock.Any()).Return(nil, dbErr)

	_, err := svc.Currencies(ctx)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListRates_NilBecomesEmpty(t *testing.T) {
	ctx, _, rates, svc := setupSvc(t)

	rates.EXPECT().ListRates(gomock.Any()).Return(nil, nil)

	got, err := svc.ListRates(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

// -------------------------
// Resolve
// -------------------------

func TestResolve_Direct(t *testing.T) {
	ctx, currencies, rates, svc := setupSvc(t)

	currencies.EXPECT().ListCurrencies(gomock.Any()).Return(sampleCurrencies(), nil)
	rates.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil)

	q, err := svc.Resolve(ctx, "btc", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Rate != 52340.50 || q.Source != SourceDirect || q.From != "BTC" || q.To != "USD" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestResolve_AbsentPairIsZero(t *testing.T) {
	ctx, currencies, rates, svc := setupSvc(t)

	currencies.EXPECT().ListCurrencies(gomock.Any()).Return(sampleCurrencies(), nil)
	rates.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil)

	q, err := svc.Resolve(ctx, "ETH", "USDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Rate != 0 || q.Source != SourceNone {
		t.Fatalf("expected sentinel zero, got %+v", q)
	}
}

func TestResolve_UnknownCurrency(t *testing.T) {
	ctx, currencies, _, svc := setupSvc(t)

	currencies.EXPECT().ListCurrencies(gomock.Any()).Return(sampleCurrencies(), nil)
	// до таблицы курсов дело доходить не должно

	_, err := svc.Resolve(ctx, "BTC", "DOGE")
	if !errors.Is(err, domain.ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestResolve_RatesError(t *testing.T) {
	ctx, currencies, rates, svc := setupSvc(t)

	dbErr := errors.New("timeout")
	currencies.EXPECT().ListCurrencies(gomock.Any()).Return(sampleCurrencies(), nil)
	rates.EXPECT().ListRates(gomock.Any()).Return(nil, dbErr)

	_, err := svc.Resolve(ctx, "BTC", "USD")
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
