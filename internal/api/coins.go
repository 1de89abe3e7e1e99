package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListCoinMarkets fetches a page of coin market data.
func (c *Client) ListCoinMarkets(ctx context.Context, opts ListCoinMarketsOptions) ([]CoinMarket, error) {
	query := url.Values{}

	vsCurrency := opts.VsCurrency
	if vsCurrency == "" {
		vsCurrency = "usd"
	}
	query.Set("vs_currency", vsCurrency)

	order := opts.Order
	if order == "" {
		order = "market_cap_desc"
	}
	query.Set("order", order)

	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	page := opts.Page
	if page == 0 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))

	// Sparkline chart data is never needed for a market snapshot.
	query.Set("sparkline", "false")

	var coins []CoinMarket
	if err := c.get(ctx, "/coins/markets", query, &coins); err != nil {
		return nil, fmt.Errorf("list coin markets: %w", err)
	}

	return coins, nil
}
