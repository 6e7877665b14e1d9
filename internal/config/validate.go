package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key must be set")
	}
	if c.OpenAI.Timeout <= 0 {
		return fmt.Errorf("openai.timeout must be > 0 (got %v)", c.OpenAI.Timeout)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MutateRateLimit <= 0 {
		return fmt.Errorf("server.mutate_rate_limit must be > 0 (got %d)", c.Server.MutateRateLimit)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	return nil
}
