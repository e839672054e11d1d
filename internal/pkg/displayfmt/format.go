package displayfmt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TimeLayout - формат времени в таблицах и истории
const TimeLayout = "2006-01-02 15:04"

const (
	ClassUp      = "text-green-400"
	ClassDown    = "text-red-400"
	ClassNeutral = "text-slate-400 bg-slate-400/10 border-slate-400/20"
)

var statusClasses = map[domain.Status]string{
	domain.StatusCompleted: "text-green-400 bg-green-400/10 border-green-400/20",
	domain.StatusPending:   "text-yellow-400 bg-yellow-400/10 border-yellow-400/20",
	domain.StatusFailed:    "text-red-400 bg-red-400/10 border-red-400/20",
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Grouped - число с разделителями тысяч (en-US), не больше 3 знаков после точки
func Grouped(v float64) string {
	return printer.Sprintf("%v", number.Decimal(noNegZero(v), number.MaxFractionDigits(3)))
}

// Money - сумма в долларах для карточек статистики
func Money(v float64) string {
	return "$" + Grouped(v)
}

// Plain - число как есть, без округления и группировки
func Plain(v float64) string {
	return strconv.FormatFloat(noNegZero(v), 'f', -1, 64)
}

// Up - рост или ноль считаются ростом
func Up(change float64) bool {
	return change >= 0
}

// Percent - изменение за 24ч со знаком: +2.45% / -1.23%
func Percent(change float64) string {
	if Up(change) {
		return "+" + Plain(change) + "%"
	}
	return Plain(change) + "%"
}

func TrendClass(change float64) string {
	if Up(change) {
		return ClassUp
	}
	return ClassDown
}

// StatusClass - класс бейджа статуса; неизвестный статус нейтральный
func StatusClass(s domain.Status) string {
	if c, ok := statusClasses[s]; ok {
		return c
	}
	return ClassNeutral
}

func Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

// ExchangeLine - "1 BTC = 52,340.5 USD"
func ExchangeLine(from, to string, rate float64) string {
	return fmt.Sprintf("1 %s = %s %s", from, Grouped(rate), to)
}

// RateLine - строка курса для /rates
func RateLine(e domain.RateEntry) string {
	return fmt.Sprintf("%s/%s | %s | %s | Обновлено: %s",
		e.From, e.To,
		Grouped(e.Rate),
		Percent(e.Change24h),
		Timestamp(e.LastUpdated),
	)
}

// RecordLine - строка истории для /history
func RecordLine(r domain.ConversionRecord) string {
	return fmt.Sprintf("%s %s %s → %s %s | комиссия %s %s | %s | %s",
		Plain(r.FromAmount), r.From,
		Grouped(r.ToAmount), r.To,
		Plain(r.Fee), r.From,
		r.Status,
		Timestamp(r.Timestamp),
	)
}

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
