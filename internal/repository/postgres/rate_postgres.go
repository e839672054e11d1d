package postgres

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RateRepo - репозиторий для таблицы курсов (rates).
type RateRepo struct {
	db *pgxpool.Pool
}

func NewRateRepository(db *pgxpool.Pool) *RateRepo {
	return &RateRepo{db: db}
}

// ListRates - все направленные пары в порядке загрузки
func (r *RateRepo) ListRates(ctx context.Context) ([]domain.RateEntry, error) {
	const query = `
		SELECT from_code, to_code, rate, change_24h, last_updated
		FROM rates
		ORDER BY position
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RateEntry
	for rows.Next() {
		var e domain.RateEntry
		if err := rows.Scan(&e.From, &e.To, &e.Rate, &e.Change24h, &e.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// replaceRates - заменяет таблицу курсов внутри tx
func replaceRates(ctx context.Context, tx pgx.Tx, items []domain.RateEntry) error {
	if _, err := tx.Exec(ctx, `DELETE FROM rates`); err != nil {
		return err
	}
	const query = `
		INSERT INTO rates (from_code, to_code, rate, change_24h, last_updated, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, e := range items {
		if _, err := tx.Exec(ctx, query, e.From, e.To, e.Rate, e.Change24h, e.LastUpdated, i); err != nil {
			return err
		}
	}
	return nil
}
