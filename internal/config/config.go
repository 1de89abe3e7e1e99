package config

import "time"

// Config is the root configuration for an ETL run.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Database DBConfig       `yaml:"database"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// APIConfig holds CoinGecko API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // Optional demo API key
	Timeout time.Duration `yaml:"timeout"`
}

// DBConfig holds the destination database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// PipelineConfig holds run settings.
type PipelineConfig struct {
	Limit int `yaml:"limit"` // How many top-by-market-cap coins to fetch
}
