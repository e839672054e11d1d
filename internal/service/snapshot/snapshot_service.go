package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/catalog"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
)

type Service interface {
	// Reload - читает снапшот и заменяет реестр и таблицу курсов; историю дополняет
	Reload(ctx context.Context) (Result, error)
	// Last - результат последней успешной загрузки
	Last() (Result, bool)
}

type Source interface {
	Load(ctx context.Context) (catalog.Data, error)
}

// CatalogWriter - реестр и курсы заменяются одной операцией, без смешанного состояния
type CatalogWriter interface {
	ReplaceCatalog(ctx context.Context, currencies []domain.Currency, rates []domain.RateEntry) error
}

type HistorySeeder interface {
	SeedConversions(ctx context.Context, items []domain.ConversionRecord) error
}

type Result struct {
	Currencies int       `json:"currencies"`
	Rates      int       `json:"rates"`
	History    int       `json:"history"`
	LoadedAt   time.Time `json:"loaded_at"`
}

type snapshotService struct {
	source      Source
	catalogRepo CatalogWriter
	historyRepo HistorySeeder
	clock       clock.Clock
	logger      *slog.Logger

	mu   sync.Mutex // одна загрузка за раз
	last *Result
}

// NewService - конструктор сервиса загрузки снапшота в хранилище.
func NewService(
	source Source,
	catalogRepo CatalogWriter,
	historyRepo HistorySeeder,
	clk clock.Clock,
	logger *slog.Logger,
) Service {
	return &snapshotService{
		source:      source,
		catalogRepo: catalogRepo,
		historyRepo: historyRepo,
		clock:       clk,
		logger:      logger,
	}
}

func (s *snapshotService) Reload(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("load snapshot", "err", err)
		return Result{}, fmt.Errorf("load snapshot: %w", err)
	}
	if len(data.Currencies) == 0 {
		s.logger.Warn("snapshot has no currencies")
	}

	if err := s.catalogRepo.ReplaceCatalog(ctx, data.Currencies, data.Rates); err != nil {
		s.logger.Error("replace catalog", "err", err)
		return Result{}, fmt.Errorf("replace catalog: %w", err)
	}

	// история не критична: реестр и курсы уже загружены
	if err := s.historyRepo.SeedConversions(ctx, data.History); err != nil {
		s.logger.Warn("seed conversion history failed", "err", err)
	}

	res := Result{
		Currencies: len(data.Currencies),
		Rates:      len(data.Rates),
		History:    len(data.History),
		LoadedAt:   s.clock.Now(),
	}
	s.last = &res
	s.logger.Info("snapshot loaded",
		"currencies", res.Currencies,
		"rates", res.Rates,
		"history", res.History,
	)
	return res, nil
}

func (s *snapshotService) Last() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}
