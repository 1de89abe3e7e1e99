package config

import "time"

// Default values for optional configuration fields.
//
// The database host, port, name, user and password have no defaults:
// all five must be supplied or validation fails.
const (
	DefaultBaseURL    = "https://api.coingecko.com/api/v3"
	DefaultAPITimeout = 30 * time.Second
	DefaultDBSSLMode  = "prefer"
	DefaultMaxConns   = 10
	DefaultMinConns   = 2
	DefaultLimit      = 5
)

func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	if c.Pipeline.Limit == 0 {
		c.Pipeline.Limit = DefaultLimit
	}
}
