package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/repository"
)

// Store - хранилище в памяти процесса: реестр, курсы и история конвертаций.
// Используется по умолчанию (storage.driver=memory) и в тестах.
type Store struct {
	mu          sync.RWMutex
	currencies  []domain.Currency
	rates       []domain.RateEntry
	conversions []domain.ConversionRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Currency(nil), s.currencies...), nil
}

// ListRates - курсы в порядке загрузки
func (s *Store) ListRates(_ context.Context) ([]domain.RateEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RateEntry(nil), s.rates...), nil
}

// ReplaceCatalog - реестр и курсы меняются вместе, под одной блокировкой
func (s *Store) ReplaceCatalog(_ context.Context, currencies []domain.Currency, rates []domain.RateEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currencies = append([]domain.Currency(nil), currencies...)
	s.rates = append([]domain.RateEntry(nil), rates...)
	return nil
}

// ListConversions - история, новые записи первыми
func (s *Store) ListConversions(_ context.Context) ([]domain.ConversionRecord, error) {
	s.mu.RLock()
	out := append([]domain.ConversionRecord(nil), s.conversions...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *Store) GetConversion(_ context.Context, id string) (domain.ConversionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.conversions {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.ConversionRecord{}, repository.ErrNotFound
}

func (s *Store) AppendConversion(_ context.Context, rec domain.ConversionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversions = append(s.conversions, rec)
	return nil
}

// SeedConversions - добавляет записи, которых ещё нет (по ID). Повторный вызов безопасен.
func (s *Store) SeedConversions(_ context.Context, items []domain.ConversionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.conversions))
	for _, c := range s.conversions {
		seen[c.ID] = struct{}{}
	}
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		s.conversions = append(s.conversions, it)
	}
	return nil
}
