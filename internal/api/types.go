package api

import "github.com/shopspring/decimal"

// CoinMarket represents one entry of GET /coins/markets.
//
// Fields the source may omit or null are pointers; absence is a typed
// nil, never a zero value mistaken for data.
type CoinMarket struct {
	ID           string           `json:"id"`
	Symbol       *string          `json:"symbol"`
	Name         *string          `json:"name"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	MarketCap    *int64           `json:"market_cap"`
}

// ListCoinMarketsOptions configures a ListCoinMarkets request.
type ListCoinMarketsOptions struct {
	VsCurrency string // Quote currency, defaults to "usd"
	Order      string // Sort order, defaults to "market_cap_desc"
	PerPage    int    // Page size
	Page       int    // Page number, defaults to 1
}
