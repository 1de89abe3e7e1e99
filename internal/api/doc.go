// Package api implements a minimal CoinGecko REST API client.
//
// Only the /coins/markets listing endpoint is covered; the pipeline
// needs nothing else. Requests carry no retry logic: a failed fetch is
// fatal to the run that issued it.
package api
