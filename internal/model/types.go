package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoinRecord is one coin's market snapshot as it moves through a
// pipeline run: created by the extractor, normalized and timestamped by
// the transformer, persisted by the loader. Records do not outlive the
// run; the crypto_market table is the only durable state.
type CoinRecord struct {
	CoinID        string          // Source identifier, primary key downstream
	Symbol        *string         // Short ticker (e.g. "btc"), nil if the source omits it
	Name          *string         // Display name, nil if the source omits it
	CurrentPrice  decimal.Decimal // Price in the quote currency
	MarketCap     int64           // Market capitalization, the extraction sort key
	LoadTimestamp time.Time       // Ingestion stamp, zero until the transform
}
