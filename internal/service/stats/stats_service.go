package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
)

// Карточки статистики над калькулятором

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type HistoryTotaler interface {
	TotalCompleted(ctx context.Context) (float64, error)
}

type RateLister interface {
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
}

// RateCard - курс избранной пары. Change24h есть только у прямой записи таблицы.
type RateCard struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Rate      float64      `json:"rate"`
	Change24h float64      `json:"change_24h"`
	HasChange bool         `json:"has_change"`
	Available bool         `json:"available"`
	Source    rates.Source `json:"source"`
}

type Summary struct {
	TotalConverted float64    `json:"total_converted"`
	Cards          []RateCard `json:"cards"`
}

type service struct {
	history HistoryTotaler
	rates   RateLister
	logger  *slog.Logger
}

func NewService(history HistoryTotaler, rates RateLister, logger *slog.Logger) Service {
	return &service{history: history, rates: rates, logger: logger}
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	total, err := s.history.TotalCompleted(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("total completed: %w", err)
	}
	entries, err := s.rates.ListRates(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list rates: %w", err)
	}

	table := rates.NewTable(entries)
	changes := make(map[domain.Pair]float64, len(entries))
	for _, e := range entries {
		if _, ok := changes[e.Pair()]; !ok {
			changes[e.Pair()] = e.Change24h
		}
	}

	cards := make([]RateCard, 0, len(consts.FeaturedPairs))
	for _, p := range consts.FeaturedPairs {
		q := table.Quote(p[0], p[1])
		card := RateCard{
			From:      q.From,
			To:        q.To,
			Rate:      q.Rate,
			Available: q.Available(),
			Source:    q.Source,
		}
		if q.Source == rates.SourceDirect {
			card.Change24h, card.HasChange = changes[domain.NewPair(p[0], p[1])], true
		}
		if !card.Available {
			s.logger.Warn("featured pair has no rate", "pair", domain.NewPair(p[0], p[1]).String())
		}
		cards = append(cards, card)
	}

	return Summary{TotalConverted: total, Cards: cards}, nil
}
