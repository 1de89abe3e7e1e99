package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmarsh/coingecko-etl/internal/model"
	"github.com/dmarsh/coingecko-etl/internal/transform"
)

type fakeExtractor struct {
	records []model.CoinRecord
	err     error
	limit   int
	calls   int
}

func (f *fakeExtractor) Extract(_ context.Context, limit int) ([]model.CoinRecord, error) {
	f.calls++
	f.limit = limit
	return f.records, f.err
}

type fakeLoader struct {
	loaded []model.CoinRecord
	err    error
	calls  int
}

func (f *fakeLoader) Load(_ context.Context, records []model.CoinRecord) error {
	f.calls++
	f.loaded = records
	return f.err
}

func strPtr(s string) *string { return &s }

func TestRun_SequencesStages(t *testing.T) {
	extractor := &fakeExtractor{
		records: []model.CoinRecord{
			{CoinID: "bitcoin", Symbol: strPtr("BTC"), CurrentPrice: decimal.NewFromInt(50000), MarketCap: 900000000000},
			{CoinID: "bitcoin", Symbol: strPtr("btc"), CurrentPrice: decimal.NewFromInt(50001), MarketCap: 900000000001},
		},
	}
	loader := &fakeLoader{}
	p := New(extractor, transform.New(nil), loader, 5, nil)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if extractor.limit != 5 {
		t.Errorf("extract limit = %d, want 5", extractor.limit)
	}
	if loader.calls != 1 {
		t.Fatalf("loader calls = %d, want 1", loader.calls)
	}
	if len(loader.loaded) != 1 {
		t.Fatalf("loaded %d records, want 1 after dedup", len(loader.loaded))
	}

	rec := loader.loaded[0]
	if rec.CoinID != "bitcoin" {
		t.Errorf("CoinID = %q, want %q", rec.CoinID, "bitcoin")
	}
	if rec.Symbol == nil || *rec.Symbol != "btc" {
		t.Errorf("Symbol = %v, want btc", rec.Symbol)
	}
	if !rec.CurrentPrice.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("CurrentPrice = %v, want first occurrence 50000", rec.CurrentPrice)
	}
	if rec.LoadTimestamp.IsZero() {
		t.Error("LoadTimestamp should be stamped by the transform")
	}
}

func TestRun_ExtractFailureAbortsBeforeLoad(t *testing.T) {
	wantErr := errors.New("api down")
	extractor := &fakeExtractor{err: wantErr}
	loader := &fakeLoader{}
	p := New(extractor, transform.New(nil), loader, 5, nil)

	err := p.Run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}
	if loader.calls != 0 {
		t.Errorf("loader calls = %d, want 0 after extract failure", loader.calls)
	}
}

func TestRun_LoadFailurePropagates(t *testing.T) {
	wantErr := errors.New("constraint violation")
	extractor := &fakeExtractor{
		records: []model.CoinRecord{
			{CoinID: "bitcoin", CurrentPrice: decimal.NewFromInt(1), MarketCap: 1},
		},
	}
	loader := &fakeLoader{err: wantErr}
	p := New(extractor, transform.New(nil), loader, 5, nil)

	if err := p.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}
}

func TestRun_EmptyBatchStillLoads(t *testing.T) {
	extractor := &fakeExtractor{}
	loader := &fakeLoader{}
	p := New(extractor, transform.New(nil), loader, 5, nil)

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if loader.calls != 1 {
		t.Errorf("loader calls = %d, want 1", loader.calls)
	}
	if len(loader.loaded) != 0 {
		t.Errorf("loaded %d records, want 0", len(loader.loaded))
	}
}
