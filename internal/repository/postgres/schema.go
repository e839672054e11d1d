package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS currencies (
	code     TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	kind     TEXT NOT NULL,
	position INT  NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS rates (
	from_code    TEXT             NOT NULL,
	to_code      TEXT             NOT NULL,
	rate         DOUBLE PRECISION NOT NULL CHECK (rate > 0),
	change_24h   DOUBLE PRECISION NOT NULL DEFAULT 0,
	last_updated TIMESTAMPTZ      NOT NULL,
	position     INT              NOT NULL DEFAULT 0,
	PRIMARY KEY (from_code, to_code)
);

CREATE TABLE IF NOT EXISTS conversions (
	id          TEXT PRIMARY KEY,
	from_code   TEXT             NOT NULL,
	to_code     TEXT             NOT NULL,
	from_amount DOUBLE PRECISION NOT NULL CHECK (from_amount >= 0),
	to_amount   DOUBLE PRECISION NOT NULL CHECK (to_amount >= 0),
	rate        DOUBLE PRECISION NOT NULL CHECK (rate > 0),
	fee         DOUBLE PRECISION NOT NULL CHECK (fee >= 0),
	status      TEXT             NOT NULL CHECK (status IN ('completed', 'pending', 'failed')),
	created_at  TIMESTAMPTZ      NOT NULL
);

CREATE INDEX IF NOT EXISTS conversions_created_at_idx ON conversions (created_at DESC);
`

// EnsureSchema - создаёт таблицы, если их ещё нет
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
