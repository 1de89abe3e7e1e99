// Package extract fetches raw coin market data and projects it into
// pipeline records.
package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmarsh/coingecko-etl/internal/api"
	"github.com/dmarsh/coingecko-etl/internal/model"
)

// CoinLister is the slice of the API client the extractor needs.
type CoinLister interface {
	ListCoinMarkets(ctx context.Context, opts api.ListCoinMarketsOptions) ([]api.CoinMarket, error)
}

// Extractor fetches the top coins by market cap from the market API.
type Extractor struct {
	client CoinLister
	logger *slog.Logger
}

// New creates an Extractor.
func New(client CoinLister, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{client: client, logger: logger}
}

// Extract fetches up to limit coins quoted in USD, sorted by descending
// market cap, first page only. Entries missing id, current_price or
// market_cap are dropped: partial data is worse than no data for that
// coin. An API failure aborts the run.
func (e *Extractor) Extract(ctx context.Context, limit int) ([]model.CoinRecord, error) {
	coins, err := e.client.ListCoinMarkets(ctx, api.ListCoinMarketsOptions{
		VsCurrency: "usd",
		Order:      "market_cap_desc",
		PerPage:    limit,
		Page:       1,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch coin markets: %w", err)
	}

	records := make([]model.CoinRecord, 0, len(coins))
	for _, coin := range coins {
		if coin.ID == "" || coin.CurrentPrice == nil || coin.MarketCap == nil {
			e.logger.Debug("dropping coin with missing required fields", "id", coin.ID)
			continue
		}

		records = append(records, model.CoinRecord{
			CoinID:       coin.ID,
			Symbol:       coin.Symbol,
			Name:         coin.Name,
			CurrentPrice: *coin.CurrentPrice,
			MarketCap:    *coin.MarketCap,
		})
	}

	e.logger.Info("extracted coin markets",
		"requested", limit,
		"received", len(coins),
		"kept", len(records),
	)
	return records, nil
}
