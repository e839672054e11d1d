package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
)

// ErrDuplicatePair - направленная пара встречается в таблице курсов дважды
var ErrDuplicatePair = errors.New("duplicate rate pair")

// TimeLayout - формат отметок времени в снапшоте ("2024-01-20 14:32")
const TimeLayout = "2006-01-02 15:04"

// Data - провалидированный набор данных, с которым стартует сервис
type Data struct {
	Currencies []domain.Currency
	Rates      []domain.RateEntry
	History    []domain.ConversionRecord
}

// Snapshot - файловое представление Data (yaml/json через cleanenv)
type Snapshot struct {
	Currencies []CurrencySpec `yaml:"currencies" json:"currencies"`
	Rates      []RateSpec     `yaml:"rates" json:"rates"`
	History    []RecordSpec   `yaml:"history" json:"history"`
}

type CurrencySpec struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
}

type RateSpec struct {
	From        string  `yaml:"from" json:"from"`
	To          string  `yaml:"to" json:"to"`
	Rate        float64 `yaml:"rate" json:"rate"`
	Change24h   float64 `yaml:"change_24h" json:"change_24h"`
	LastUpdated string  `yaml:"last_updated" json:"last_updated"`
}

type RecordSpec struct {
	ID         string  `yaml:"id" json:"id"`
	From       string  `yaml:"from" json:"from"`
	To         string  `yaml:"to" json:"to"`
	FromAmount float64 `yaml:"from_amount" json:"from_amount"`
	ToAmount   float64 `yaml:"to_amount" json:"to_amount"`
	Rate       float64 `yaml:"rate" json:"rate"`
	Fee        float64 `yaml:"fee" json:"fee"`
	Status     string  `yaml:"status" json:"status"`
	Timestamp  string  `yaml:"timestamp" json:"timestamp"`
}

// Build - проверяет снапшот и переводит его в доменные типы.
// Коды валют и пары курсов уникальны, курсы > 0, пары и записи истории ссылаются только на известные коды.
func (s Snapshot) Build() (Data, error) {
	var out Data
	known := make(map[string]struct{}, len(s.Currencies))

	for i, c := range s.Currencies {
		code := domain.NormalizeCode(c.Code)
		if code == "" {
			return Data{}, fmt.Errorf("currencies[%d]: empty code", i)
		}
		if _, dup := known[code]; dup {
			return Data{}, fmt.Errorf("currencies[%d]: duplicate code %s", i, code)
		}
		kind := domain.Kind(c.Kind)
		if kind == "" {
			kind = domain.KindCrypto
		}
		if kind != domain.KindCrypto && kind != domain.KindFiat {
			return Data{}, fmt.Errorf("currencies[%d]: unknown kind %q", i, c.Kind)
		}
		known[code] = struct{}{}
		out.Currencies = append(out.Currencies, domain.Currency{Code: code, Name: c.Name, Kind: kind})
	}

	checkCode := func(where, code string) (string, error) {
		code = domain.NormalizeCode(code)
		if _, ok := known[code]; !ok {
			return "", fmt.Errorf("%s: %w: %q", where, domain.ErrUnknownCurrency, code)
		}
		return code, nil
	}

	pairs := make(map[domain.Pair]struct{}, len(s.Rates))
	for i, r := range s.Rates {
		where := fmt.Sprintf("rates[%d]", i)
		from, err := checkCode(where, r.From)
		if err != nil {
			return Data{}, err
		}
		to, err := checkCode(where, r.To)
		if err != nil {
			return Data{}, err
		}
		pair := domain.NewPair(from, to)
		if _, dup := pairs[pair]; dup {
			return Data{}, fmt.Errorf("%s: %w: %s", where, ErrDuplicatePair, pair)
		}
		pairs[pair] = struct{}{}
		if !(r.Rate > 0) {
			return Data{}, fmt.Errorf("%s %s/%s: %w", where, from, to, domain.ErrInvalidRate)
		}
		ts, err := parseTime(r.LastUpdated)
		if err != nil {
			return Data{}, fmt.Errorf("%s: last_updated: %w", where, err)
		}
		out.Rates = append(out.Rates, domain.RateEntry{
			From:        from,
			To:          to,
			Rate:        r.Rate,
			Change24h:   r.Change24h,
			LastUpdated: ts,
		})
	}

	ids := make(map[string]struct{}, len(s.History))
	for i, h := range s.History {
		where := fmt.Sprintf("history[%d]", i)
		if h.ID == "" {
			return Data{}, fmt.Errorf("%s: empty id", where)
		}
		if _, dup := ids[h.ID]; dup {
			return Data{}, fmt.Errorf("%s: duplicate id %s", where, h.ID)
		}
		ids[h.ID] = struct{}{}

		from, err := checkCode(where, h.From)
		if err != nil {
			return Data{}, err
		}
		to, err := checkCode(where, h.To)
		if err != nil {
			return Data{}, err
		}
		if h.FromAmount < 0 || h.ToAmount < 0 || h.Fee < 0 {
			return Data{}, fmt.Errorf("%s: %w", where, domain.ErrInvalidAmount)
		}
		if !(h.Rate > 0) {
			return Data{}, fmt.Errorf("%s: %w", where, domain.ErrInvalidRate)
		}
		status := domain.Status(h.Status)
		if !status.Valid() {
			return Data{}, fmt.Errorf("%s: unknown status %q", where, h.Status)
		}
		ts, err := parseTime(h.Timestamp)
		if err != nil {
			return Data{}, fmt.Errorf("%s: timestamp: %w", where, err)
		}
		out.History = append(out.History, domain.ConversionRecord{
			ID:         h.ID,
			From:       from,
			To:         to,
			FromAmount: h.FromAmount,
			ToAmount:   h.ToAmount,
			Rate:       h.Rate,
			Fee:        h.Fee,
			Status:     status,
			Timestamp:  ts,
		})
	}
	return out, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
