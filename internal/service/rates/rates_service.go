package rates

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
)

// Бизнес-логика - реестр валют, таблица курсов, разрешение пар

type Service interface {
	// Currencies - реестр валют в порядке загрузки
	Currencies(ctx context.Context) ([]domain.Currency, error)
	// ListRates - все направленные курсы
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
	// Table - индекс курсов для калькулятора
	Table(ctx context.Context) (*Table, error)
	// Resolve - курс пары; ErrUnknownCurrency для кода вне реестра
	Resolve(ctx context.Context, from, to string) (Quote, error)
}

type CurrencyReader interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

type RateReader interface {
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
}

type service struct {
	currencyRepo CurrencyReader
	rateRepo     RateReader
	logger       *slog.Logger
}

func NewService(currencyRepo CurrencyReader, rateRepo RateReader, logger *slog.Logger) Service {
	return &service{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		logger:       logger,
	}
}

func (s *service) Currencies(ctx context.Context) ([]domain.Currency, error) {
	items, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.logger.Error("failed to list currencies", "err", err)
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	if len(items) == 0 {
		s.logger.Warn("currency registry is empty")
		return []domain.Currency{}, nil
	}
	return items, nil
}

func (s *service) ListRates(ctx context.Context) ([]domain.RateEntry, error) {
	items, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		s.logger.Error("failed to list rates", "err", err)
		return nil, fmt.Errorf("list rates: %w", err)
	}
	if items == nil {
		return []domain.RateEntry{}, nil
	}
	return items, nil
}

func (s *service) Table(ctx context.Context) (*Table, error) {
	items, err := s.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	return NewTable(items), nil
}

func (s *service) Resolve(ctx context.Context, from, to string) (Quote, error) {
	from, to = domain.NormalizeCode(from), domain.NormalizeCode(to)

	currencies, err := s.Currencies(ctx)
	if err != nil {
		return Quote{}, err
	}
	known := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		known[c.Code] = struct{}{}
	}
	for _, code := range []string{from, to} {
		if _, ok := known[code]; !ok {
			s.logger.Warn("unknown currency", "code", code)
			return Quote{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, code)
		}
	}

	table, err := s.Table(ctx)
	if err != nil {
		return Quote{}, err
	}
	q := table.Quote(from, to)
	s.logger.Debug("resolved rate", "from", from, "to", to, "rate", q.Rate, "source", q.Source)
	return q, nil
}
