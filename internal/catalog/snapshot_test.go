package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Build(t *testing.T) {
	data, err := Default().Build()
	require.NoError(t, err)

	assert.Len(t, data.Currencies, 4)
	assert.Len(t, data.Rates, 4)
	assert.Len(t, data.History, 3)

	assert.Equal(t, domain.Currency{Code: "USD", Name: "US Dollar", Kind: domain.KindFiat}, data.Currencies[3])
	assert.Equal(t, "BTC", data.Rates[0].From)
	assert.Equal(t, 52340.50, data.Rates[0].Rate)
	assert.Equal(t, time.Date(2024, 1, 20, 14, 32, 0, 0, time.UTC), data.Rates[0].LastUpdated)
	assert.Equal(t, domain.StatusPending, data.History[2].Status)
}

func TestBuild_Rejects(t *testing.T) {
	base := func() Snapshot { return Default() }

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
		want   error
	}{
		{
			name:   "zero_rate",
			mutate: func(s *Snapshot) { s.Rates[1].Rate = 0 },
			want:   domain.ErrInvalidRate,
		},
		{
			name:   "negative_rate",
			mutate: func(s *Snapshot) { s.Rates[0].Rate = -1 },
			want:   domain.ErrInvalidRate,
		},
		{
			name:   "rate_with_unknown_code",
			mutate: func(s *Snapshot) { s.Rates[0].To = "EUR" },
			want:   domain.ErrUnknownCurrency,
		},
		{
			name:   "history_with_unknown_code",
			mutate: func(s *Snapshot) { s.History[0].From = "DOGE" },
			want:   domain.ErrUnknownCurrency,
		},
		{
			name:   "negative_fee",
			mutate: func(s *Snapshot) { s.History[0].Fee = -0.1 },
			want:   domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			_, err := s.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_RejectsDuplicatesAndBadStatus(t *testing.T) {
	s := Default()
	s.Currencies = append(s.Currencies, CurrencySpec{Code: "btc", Name: "again"})
	_, err := s.Build()
	assert.ErrorContains(t, err, "duplicate code BTC")

	s = Default()
	s.History[1].ID = "1"
	_, err = s.Build()
	assert.ErrorContains(t, err, "duplicate id 1")

	// та же пара в другом регистре - тоже повтор
	s = Default()
	s.Rates = append(s.Rates, RateSpec{From: "btc", To: "usd", Rate: 50000, LastUpdated: "2024-01-20 15:00"})
	_, err = s.Build()
	assert.ErrorIs(t, err, ErrDuplicatePair)
	assert.ErrorContains(t, err, "rates[4]")

	// обратная пара не повтор
	s = Default()
	s.Rates = append(s.Rates, RateSpec{From: "USD", To: "BTC", Rate: 0.00002, LastUpdated: "2024-01-20 15:00"})
	_, err = s.Build()
	assert.NoError(t, err)

	s = Default()
	s.History[0].Status = "refunded"
	_, err = s.Build()
	assert.ErrorContains(t, err, "unknown status")

	s = Default()
	s.Rates[0].LastUpdated = "yesterday"
	_, err = s.Build()
	assert.Error(t, err)
}

func TestBuild_NormalizesCodes(t *testing.T) {
	s := Snapshot{
		Currencies: []CurrencySpec{{Code: " btc ", Name: "Bitcoin"}, {Code: "usd", Name: "US Dollar", Kind: "fiat"}},
		Rates:      []RateSpec{{From: "btc", To: "Usd", Rate: 10}},
	}
	data, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "BTC", data.Currencies[0].Code)
	assert.Equal(t, domain.KindCrypto, data.Currencies[0].Kind)
	assert.Equal(t, domain.Pair{From: "BTC", To: "USD"}, data.Rates[0].Pair())
	assert.True(t, data.Rates[0].LastUpdated.IsZero())
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	content := `
currencies:
  - code: BTC
    name: Bitcoin
    kind: crypto
  - code: USD
    name: US Dollar
    kind: fiat
rates:
  - from: BTC
    to: USD
    rate: 60000
    change_24h: -0.5
    last_updated: "2024-02-01 10:00"
history:
  - id: a1
    from: BTC
    to: USD
    from_amount: 1
    to_amount: 60000
    rate: 60000
    fee: 0.001
    status: failed
    timestamp: "2024-02-01 09:00"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Rates, 1)
	assert.Equal(t, 60000.0, data.Rates[0].Rate)
	assert.Equal(t, -0.5, data.Rates[0].Change24h)
	require.Len(t, data.History, 1)
	assert.Equal(t, domain.StatusFailed, data.History[0].Status)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	assert.Error(t, err)
}
