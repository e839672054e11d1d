package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/displayfmt"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/conversion"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/history"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
)

var ErrUsage = errors.New("usage: /convert <amount> <FROM> <TO>")

const (
	msgInternal = "Внутренняя ошибка сервиса, попробуйте позже"
	msgNoRates  = "Данные о курсах не найдены"
)

type RatesService interface {
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
	Resolve(ctx context.Context, from, to string) (rates.Quote, error)
}

type HistoryService interface {
	List(ctx context.Context, f history.Filter) ([]domain.ConversionRecord, error)
	TotalCompleted(ctx context.Context) (float64, error)
}

// Replies - тексты ответов бота, без зависимости от Telegram
type Replies struct {
	rates        RatesService
	history      HistoryService
	historyLimit int
	logger       *slog.Logger
}

func NewReplies(ratesSvc RatesService, historySvc HistoryService, historyLimit int, logger *slog.Logger) *Replies {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &Replies{rates: ratesSvc, history: historySvc, historyLimit: historyLimit, logger: logger}
}

func (r *Replies) Help() string {
	return "Привет! Доступные команды:\n" +
		"/rates - курсы по всем парам\n" +
		"/rates {FROM} {TO} - курс одной пары (BTC USD)\n" +
		"/convert {сумма} {FROM} {TO} - посчитать конвертацию\n" +
		"/history - последние конвертации"
}

func (r *Replies) Rates(ctx context.Context, args []string) string {
	if len(args) == 2 {
		q, err := r.rates.Resolve(ctx, args[0], args[1])
		if err != nil {
			return r.errorText(err)
		}
		if !q.Available() {
			return fmt.Sprintf("Курс %s/%s недоступен", q.From, q.To)
		}
		return displayfmt.ExchangeLine(q.From, q.To, q.Rate)
	}
	if len(args) != 0 {
		return "Укажи пару: /rates BTC USD"
	}

	list, err := r.rates.ListRates(ctx)
	if err != nil {
		return r.errorText(err)
	}
	if len(list) == 0 {
		return msgNoRates
	}
	var bld strings.Builder
	for _, e := range list {
		bld.WriteString(displayfmt.RateLine(e))
		bld.WriteByte('\n')
	}
	return bld.String()
}

func (r *Replies) Convert(ctx context.Context, args []string) string {
	amount, from, to, err := parseConvertArgs(args)
	if err != nil {
		return "Пример: /convert 0.5 BTC USD"
	}
	q, err := r.rates.Resolve(ctx, from, to)
	if err != nil {
		return r.errorText(err)
	}
	return fmt.Sprintf("%s %s = %s %s\n%s",
		amount, q.From,
		conversion.Convert(amount, q.Rate), q.To,
		displayfmt.ExchangeLine(q.From, q.To, q.Rate),
	)
}

func (r *Replies) History(ctx context.Context) string {
	items, err := r.history.List(ctx, history.Filter{Limit: r.historyLimit})
	if err != nil {
		return r.errorText(err)
	}
	if len(items) == 0 {
		return "История конвертаций пуста"
	}
	total, err := r.history.TotalCompleted(ctx)
	if err != nil {
		return r.errorText(err)
	}

	var bld strings.Builder
	for _, it := range items {
		bld.WriteString(displayfmt.RecordLine(it))
		bld.WriteByte('\n')
	}
	bld.WriteString("Всего конвертировано: " + displayfmt.Money(total))
	return bld.String()
}

func (r *Replies) errorText(err error) string {
	if errors.Is(err, domain.ErrUnknownCurrency) {
		return "Валюта не поддерживается"
	}
	r.logger.Error("bot reply failed", slog.String("error", err.Error()))
	return msgInternal
}

// parseConvertArgs - сумма, FROM, TO. Сумму не проверяем: калькулятор сам вернёт 0.00
func parseConvertArgs(args []string) (amount, from, to string, err error) {
	if len(args) != 3 {
		return "", "", "", ErrUsage
	}
	from, to = domain.NormalizeCode(args[1]), domain.NormalizeCode(args[2])
	if from == "" || to == "" {
		return "", "", "", ErrUsage
	}
	return strings.TrimSpace(args[0]), from, to, nil
}
