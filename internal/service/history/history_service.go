package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/repository"
)

var ErrNotFound = errors.New("conversion not found")

// Чтение истории конвертаций и итоговая сумма

type Service interface {
	List(ctx context.Context, f Filter) ([]domain.ConversionRecord, error)
	Get(ctx context.Context, id string) (domain.ConversionRecord, error)
	// TotalCompleted - сумма ToAmount по завершённым конвертациям
	TotalCompleted(ctx context.Context) (float64, error)
}

type Reader interface {
	ListConversions(ctx context.Context) ([]domain.ConversionRecord, error)
	GetConversion(ctx context.Context, id string) (domain.ConversionRecord, error)
}

// Filter - пустой Status означает все записи, Limit <= 0 без ограничения
type Filter struct {
	Status domain.Status
	Limit  int
}

type service struct {
	repo   Reader
	logger *slog.Logger
}

func NewService(repo Reader, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, f Filter) ([]domain.ConversionRecord, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q", f.Status)
	}
	items, err := s.repo.ListConversions(ctx)
	if err != nil {
		s.logger.Error("failed to list conversions", "err", err)
		return nil, fmt.Errorf("list conversions: %w", err)
	}

	out := make([]domain.ConversionRecord, 0, len(items))
	for _, it := range items {
		if f.Status != "" && it.Status != f.Status {
			continue
		}
		out = append(out, it)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (domain.ConversionRecord, error) {
	rec, err := s.repo.GetConversion(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("conversion not found", "id", id)
			return domain.ConversionRecord{}, ErrNotFound
		}
		s.logger.Error("failed to get conversion", "id", id, "err", err)
		return domain.ConversionRecord{}, fmt.Errorf("get conversion: %w", err)
	}
	return rec, nil
}

func (s *service) TotalCompleted(ctx context.Context) (float64, error) {
	items, err := s.repo.ListConversions(ctx)
	if err != nil {
		s.logger.Error("failed to list conversions", "err", err)
		return 0, fmt.Errorf("list conversions: %w", err)
	}
	return TotalCompleted(items), nil
}

// TotalCompleted - сумма ToAmount только по completed, без учёта валюты
func TotalCompleted(records []domain.ConversionRecord) float64 {
	var sum float64
	for _, r := range records {
		if r.Status == domain.StatusCompleted {
			sum += r.ToAmount
		}
	}
	return sum
}
