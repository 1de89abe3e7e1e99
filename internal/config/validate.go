package config

import "fmt"

// MissingFieldError reports a required configuration field that was
// not supplied. Raised before any network or database call is made.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: %s is required", e.Field)
}

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Pipeline.Limit < 1 {
		return fmt.Errorf("pipeline.limit must be >= 1, got %d", c.Pipeline.Limit)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return &MissingFieldError{Field: prefix + ".host"}
	}
	if db.Port == 0 {
		return &MissingFieldError{Field: prefix + ".port"}
	}
	if db.Name == "" {
		return &MissingFieldError{Field: prefix + ".name"}
	}
	if db.User == "" {
		return &MissingFieldError{Field: prefix + ".user"}
	}
	if db.Password == "" {
		return &MissingFieldError{Field: prefix + ".password"}
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
