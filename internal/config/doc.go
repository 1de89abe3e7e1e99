// Package config handles YAML configuration loading with environment
// variable substitution.
//
// Configuration files support ${VAR} syntax; database credentials are
// expected to arrive through the environment (typically a .env file
// loaded by the binary before config parsing).
package config
