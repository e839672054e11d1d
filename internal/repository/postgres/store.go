package postgres

import (
	"context"
	"fmt"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store - все репозитории поверх одного пула
type Store struct {
	*CurrencyRepo
	*RateRepo
	*ConversionRepo

	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		CurrencyRepo:   NewCurrencyRepository(db),
		RateRepo:       NewRateRepository(db),
		ConversionRepo: NewConversionRepository(db),
		db:             db,
	}
}

// ReplaceCatalog - реестр и курсы в одной транзакции: при ошибке остаётся старый набор целиком
func (s *Store) ReplaceCatalog(ctx context.Context, currencies []domain.Currency, rates []domain.RateEntry) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if err := replaceCurrencies(ctx, tx, currencies); err != nil {
			return fmt.Errorf("replace currencies: %w", err)
		}
		if err := replaceRates(ctx, tx, rates); err != nil {
			return fmt.Errorf("replace rates: %w", err)
		}
		return nil
	})
}
