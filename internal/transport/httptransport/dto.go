package httptransport

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/displayfmt"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/stats"
)

// Rate - DTO курса с готовыми строками для отображения.
type Rate struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	Rate        float64     `json:"rate"`
	Change24h   float64     `json:"change_24h"`
	LastUpdated time.Time   `json:"last_updated"`
	Featured    bool        `json:"featured"` // пара есть в карточках статистики
	Display     RateDisplay `json:"display"`
}

type RateDisplay struct {
	Rate        string `json:"rate"`
	Change      string `json:"change"`
	Trend       string `json:"trend"` // up|down
	LastUpdated string `json:"last_updated"`
}

func trend(change float64) string {
	if displayfmt.Up(change) {
		return "up"
	}
	return "down"
}

func makeRate(e domain.RateEntry) Rate {
	return Rate{
		From:        e.From,
		To:          e.To,
		Rate:        e.Rate,
		Change24h:   e.Change24h,
		LastUpdated: e.LastUpdated,
		Featured:    consts.IsFeatured(e.From, e.To),
		Display: RateDisplay{
			Rate:        displayfmt.Grouped(e.Rate),
			Change:      displayfmt.Percent(e.Change24h),
			Trend:       trend(e.Change24h),
			LastUpdated: displayfmt.Timestamp(e.LastUpdated),
		},
	}
}

// Quote - разрешённый курс пары
type Quote struct {
	rates.Quote
	Available bool   `json:"available"`
	Exchange  string `json:"exchange"`
}

func makeQuote(q rates.Quote) Quote {
	return Quote{
		Quote:     q,
		Available: q.Available(),
		Exchange:  displayfmt.ExchangeLine(q.From, q.To, q.Rate),
	}
}

// Conversion - результат калькулятора
type Conversion struct {
	Amount    string  `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Converted string  `json:"converted"`
	Exchange  string  `json:"exchange"`
}

// Record - запись истории с классом статуса
type Record struct {
	domain.ConversionRecord
	Display RecordDisplay `json:"display"`
}

type RecordDisplay struct {
	ToAmount    string `json:"to_amount"`
	Rate        string `json:"rate"`
	Timestamp   string `json:"timestamp"`
	StatusClass string `json:"status_class"`
}

func makeRecord(r domain.ConversionRecord) Record {
	return Record{
		ConversionRecord: r,
		Display: RecordDisplay{
			ToAmount:    displayfmt.Grouped(r.ToAmount),
			Rate:        displayfmt.Grouped(r.Rate),
			Timestamp:   displayfmt.Timestamp(r.Timestamp),
			StatusClass: displayfmt.StatusClass(r.Status),
		},
	}
}

type History struct {
	Items          []Record `json:"items"`
	TotalCompleted float64  `json:"total_completed"`
}

type Stats struct {
	stats.Summary
	TotalDisplay string `json:"total_display"`
}

// AmountText - сумма в запросе: строка или число
type AmountText string

func (a *AmountText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return errors.New("amount must be a string or a number")
	}
	*a = AmountText(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type SubmitRequest struct {
	From   string     `json:"from"`
	To     string     `json:"to"`
	Amount AmountText `json:"amount"`
}
