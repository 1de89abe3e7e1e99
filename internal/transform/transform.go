// Package transform deduplicates and normalizes extracted records.
package transform

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dmarsh/coingecko-etl/internal/model"
)

// Transformer cleans a batch of extracted records.
type Transformer struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Transformer.
func New(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{logger: logger, now: time.Now}
}

// Records deduplicates by CoinID, keeping the first occurrence of each
// id and preserving input order. Symbols are trimmed and lowercased,
// names trimmed; nil stays nil. Every kept record is stamped with a
// single UTC timestamp taken at the start of the call, so all records
// of a batch share one load_timestamp.
func (t *Transformer) Records(records []model.CoinRecord) []model.CoinRecord {
	loadedAt := t.now().UTC()

	seen := make(map[string]struct{}, len(records))
	kept := make([]model.CoinRecord, 0, len(records))

	for _, rec := range records {
		if _, dup := seen[rec.CoinID]; dup {
			continue
		}
		seen[rec.CoinID] = struct{}{}

		if rec.Symbol != nil {
			symbol := strings.ToLower(strings.TrimSpace(*rec.Symbol))
			rec.Symbol = &symbol
		}
		if rec.Name != nil {
			name := strings.TrimSpace(*rec.Name)
			rec.Name = &name
		}
		rec.LoadTimestamp = loadedAt

		kept = append(kept, rec)
	}

	t.logger.Info("transformed records", "input", len(records), "kept", len(kept))
	return kept
}
