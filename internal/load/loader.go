// Package load persists transformed records into the crypto_market
// table.
package load

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmarsh/coingecko-etl/internal/model"
)

// WriteError indicates the batch could not be applied. The transaction
// was rolled back; the table is unchanged.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write crypto_market: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS crypto_market (
		coin_id TEXT PRIMARY KEY,
		symbol TEXT,
		name TEXT,
		current_price NUMERIC,
		market_cap BIGINT,
		load_timestamp TIMESTAMP
	)
`

// On conflict only price, cap and timestamp are refreshed; a coin's
// first-seen symbol and name stick even if the source renames it.
const upsertSQL = `
	INSERT INTO crypto_market (coin_id, symbol, name, current_price, market_cap, load_timestamp)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (coin_id) DO UPDATE
		SET current_price = EXCLUDED.current_price,
		    market_cap = EXCLUDED.market_cap,
		    load_timestamp = EXCLUDED.load_timestamp
`

// Loader writes batches to the destination table.
type Loader struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Loader.
func New(db *pgxpool.Pool, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{db: db, logger: logger}
}

// EnsureSchema creates the destination table if it does not exist.
func (l *Loader) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.Exec(ctx, createTableSQL); err != nil {
		return &WriteError{Err: fmt.Errorf("create table: %w", err)}
	}
	return nil
}

// Load ensures the schema exists and upserts the batch inside a single
// transaction: either every row is applied or none are. Loading the
// same batch twice leaves one row per coin_id.
func (l *Loader) Load(ctx context.Context, records []model.CoinRecord) error {
	if err := l.EnsureSchema(ctx); err != nil {
		return err
	}

	if len(records) == 0 {
		l.logger.Info("no records to load")
		return nil
	}

	start := time.Now()

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return &WriteError{Err: fmt.Errorf("begin transaction: %w", err)}
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(upsertSQL,
			rec.CoinID,
			rec.Symbol,
			rec.Name,
			rec.CurrentPrice,
			rec.MarketCap,
			rec.LoadTimestamp,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return &WriteError{Err: err}
		}
	}
	if err := results.Close(); err != nil {
		return &WriteError{Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &WriteError{Err: fmt.Errorf("commit: %w", err)}
	}

	l.logger.Info("load complete",
		"rows", len(records),
		"duration", time.Since(start),
	)
	return nil
}
