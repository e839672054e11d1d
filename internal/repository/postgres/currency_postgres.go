package postgres

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CurrencyRepo struct {
	db *pgxpool.Pool
}

// NewCurrencyRepository - Создаёт репозиторий реестра валют на основе пула соединений.
func NewCurrencyRepository(db *pgxpool.Pool) *CurrencyRepo {
	return &CurrencyRepo{db: db}
}

// ListCurrencies - реестр в порядке загрузки
func (r *CurrencyRepo) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	const query = `SELECT code, name, kind FROM currencies ORDER BY position, code`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.Code, &c.Name, &c.Kind); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// replaceCurrencies - заменяет реестр целиком внутри tx
func replaceCurrencies(ctx context.Context, tx pgx.Tx, items []domain.Currency) error {
	if _, err := tx.Exec(ctx, `DELETE FROM currencies`); err != nil {
		return err
	}
	const query = `INSERT INTO currencies (code, name, kind, position) VALUES ($1, $2, $3, $4)`
	for i, c := range items {
		if _, err := tx.Exec(ctx, query, c.Code, c.Name, string(c.Kind), i); err != nil {
			return err
		}
	}
	return nil
}
