// Package pipeline sequences the extract, transform and load stages.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmarsh/coingecko-etl/internal/model"
)

// Extractor produces the raw batch for a run.
type Extractor interface {
	Extract(ctx context.Context, limit int) ([]model.CoinRecord, error)
}

// Transformer cleans and deduplicates a batch.
type Transformer interface {
	Records(records []model.CoinRecord) []model.CoinRecord
}

// Loader persists a batch.
type Loader interface {
	Load(ctx context.Context, records []model.CoinRecord) error
}

// Pipeline runs one extract-transform-load pass.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	limit       int
	logger      *slog.Logger
}

// New creates a Pipeline fetching up to limit coins per run.
func New(extractor Extractor, transformer Transformer, loader Loader, limit int, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractor:   extractor,
		transformer: transformer,
		loader:      loader,
		limit:       limit,
		logger:      logger,
	}
}

// Run executes the pipeline once. Any stage failure aborts the run and
// propagates unmodified; a failed run is re-invoked from the start on
// the next attempt.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.New()
	logger := p.logger.With("run_id", runID)
	start := time.Now()

	logger.Info("pipeline starting", "limit", p.limit)

	raw, err := p.extractor.Extract(ctx, p.limit)
	if err != nil {
		return err
	}

	clean := p.transformer.Records(raw)

	if err := p.loader.Load(ctx, clean); err != nil {
		return err
	}

	logger.Info("pipeline completed",
		"extracted", len(raw),
		"loaded", len(clean),
		"duration", time.Since(start),
	)
	return nil
}
