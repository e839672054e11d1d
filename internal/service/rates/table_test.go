package rates

import (
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRates() []domain.RateEntry {
	ts := time.Date(2024, 1, 20, 14, 32, 0, 0, time.UTC)
	return []domain.RateEntry{
		{From: "BTC", To: "USD", Rate: 52340.50, Change24h: 2.45, LastUpdated: ts},
		{From: "ETH", To: "USD", Rate: 2890.75, Change24h: -1.23, LastUpdated: ts},
		{From: "USDT", To: "USD", Rate: 1.00, Change24h: 0.01, LastUpdated: ts},
		{From: "BTC", To: "ETH", Rate: 18.12, Change24h: 3.67, LastUpdated: ts},
	}
}

func TestTable_Quote(t *testing.T) {
	table := NewTable(sampleRates())

	tests := []struct {
		name     string
		from, to string
		rate     float64
		source   Source
	}{
		{name: "direct", from: "BTC", to: "USD", rate: 52340.50, source: SourceDirect},
		{name: "inverse", from: "USD", to: "BTC", rate: 1 / 52340.50, source: SourceInverse},
		{name: "inverse eth/btc", from: "ETH", to: "BTC", rate: 1 / 18.12, source: SourceInverse},
		{name: "identity", from: "ETH", to: "ETH", rate: 1, source: SourceIdentity},
		{name: "absent pair", from: "ETH", to: "USDT", rate: 0, source: SourceNone},
		{name: "unknown codes", from: "DOGE", to: "XRP", rate: 0, source: SourceNone},
		{name: "lower case codes", from: "btc", to: " usd ", rate: 52340.50, source: SourceDirect},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := table.Quote(tc.from, tc.to)
			assert.InDelta(t, tc.rate, q.Rate, 1e-12)
			assert.Equal(t, tc.source, q.Source)
			assert.Equal(t, tc.rate > 0, q.Available())
		})
	}
}

func TestTable_InverseRoundTrip(t *testing.T) {
	table := NewTable(sampleRates())

	for _, e := range sampleRates() {
		direct := table.Resolve(e.From, e.To)
		inverse := table.Resolve(e.To, e.From)
		assert.InDelta(t, 1.0, direct*inverse, 1e-9, "pair %s/%s", e.From, e.To)
	}
}

func TestTable_DirectWinsOverInverse(t *testing.T) {
	table := NewTable([]domain.RateEntry{
		{From: "BTC", To: "USD", Rate: 50000},
		{From: "USD", To: "BTC", Rate: 0.00003},
	})

	assert.Equal(t, 50000.0, table.Resolve("BTC", "USD"))
	assert.Equal(t, 0.00003, table.Resolve("USD", "BTC"))
}

func TestTable_SelfPairEntryWinsOverIdentity(t *testing.T) {
	table := NewTable([]domain.RateEntry{{From: "USD", To: "USD", Rate: 0.99}})

	q := table.Quote("USD", "USD")
	assert.Equal(t, 0.99, q.Rate)
	assert.Equal(t, SourceDirect, q.Source)
}

func TestTable_FirstEntryWins(t *testing.T) {
	table := NewTable([]domain.RateEntry{
		{From: "BTC", To: "USD", Rate: 1},
		{From: "BTC", To: "USD", Rate: 2},
	})

	assert.Equal(t, 1.0, table.Resolve("BTC", "USD"))
	assert.Equal(t, 1, table.Len())
}

func TestTable_Empty(t *testing.T) {
	table := NewTable(nil)

	assert.Equal(t, 0.0, table.Resolve("BTC", "USD"))
	assert.Equal(t, 0.0, table.Resolve("", ""))
}
