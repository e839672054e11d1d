package catalog

// Default - встроенный набор данных: реестр, таблица курсов и история
func Default() Snapshot {
	return Snapshot{
		Currencies: []CurrencySpec{
			{Code: "BTC", Name: "Bitcoin", Kind: "crypto"},
			{Code: "ETH", Name: "Ethereum", Kind: "crypto"},
			{Code: "USDT", Name: "Tether USD", Kind: "crypto"},
			{Code: "USD", Name: "US Dollar", Kind: "fiat"},
		},
		Rates: []RateSpec{
			{From: "BTC", To: "USD", Rate: 52340.50, Change24h: 2.45, LastUpdated: "2024-01-20 14:32"},
			{From: "ETH", To: "USD", Rate: 2890.75, Change24h: -1.23, LastUpdated: "2024-01-20 14:32"},
			{From: "USDT", To: "USD", Rate: 1.00, Change24h: 0.01, LastUpdated: "2024-01-20 14:32"},
			{From: "BTC", To: "ETH", Rate: 18.12, Change24h: 3.67, LastUpdated: "2024-01-20 14:32"},
		},
		History: []RecordSpec{
			{
				ID: "1", From: "BTC", To: "USD",
				FromAmount: 0.5, ToAmount: 26170.25, Rate: 52340.50, Fee: 52.34,
				Status: "completed", Timestamp: "2024-01-20 13:45",
			},
			{
				ID: "2", From: "ETH", To: "USDT",
				FromAmount: 2.5, ToAmount: 7226.88, Rate: 2890.75, Fee: 14.45,
				Status: "completed", Timestamp: "2024-01-19 16:20",
			},
			{
				ID: "3", From: "BTC", To: "ETH",
				FromAmount: 0.25, ToAmount: 4.53, Rate: 18.12, Fee: 0.009,
				Status: "pending", Timestamp: "2024-01-19 11:15",
			},
		},
	}
}
