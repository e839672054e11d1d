package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversionRepo - история конвертаций (conversions).
type ConversionRepo struct {
	db *pgxpool.Pool
}

func NewConversionRepository(db *pgxpool.Pool) *ConversionRepo {
	return &ConversionRepo{db: db}
}

const conversionColumns = `id, from_code, to_code, from_amount, to_amount, rate, fee, status, created_at`

func scanConversion(row pgx.Row) (domain.ConversionRecord, error) {
	var c domain.ConversionRecord
	err := row.Scan(&c.ID, &c.From, &c.To, &c.FromAmount, &c.ToAmount, &c.Rate, &c.Fee, &c.Status, &c.Timestamp)
	return c, err
}

// ListConversions - история, новые записи первыми
func (r *ConversionRepo) ListConversions(ctx context.Context) ([]domain.ConversionRecord, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ConversionRecord
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetConversion - запись по ID
func (r *ConversionRepo) GetConversion(ctx context.Context, id string) (domain.ConversionRecord, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions WHERE id = $1`
	c, err := scanConversion(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ConversionRecord{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.ConversionRecord{}, err
	}
	return c, nil
}

// AppendConversion - добавить запись. Записи не изменяются, поэтому без ON CONFLICT.
func (r *ConversionRepo) AppendConversion(ctx context.Context, rec domain.ConversionRecord) error {
	query := `INSERT INTO conversions (` + conversionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.From, rec.To, rec.FromAmount, rec.ToAmount, rec.Rate, rec.Fee, string(rec.Status), rec.Timestamp)
	return err
}

// SeedConversions - идемпотентная загрузка истории из снапшота
func (r *ConversionRepo) SeedConversions(ctx context.Context, items []domain.ConversionRecord) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO conversions (` + conversionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query, it.ID, it.From, it.To, it.FromAmount, it.ToAmount, it.Rate, it.Fee, string(it.Status), it.Timestamp)
	}
	return r.db.SendBatch(ctx, batch).Close()
}
