package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.AI.AllowedProviders()) == 0 {
		return fmt.Errorf("at least one AI provider must be configured (Gemini or DeepSeek)")
	}

	if c.AI.RequestTimeout <= 0 {
		return fmt.Errorf("ai.request_timeout must be positive (got %v)", c.AI.RequestTimeout)
	}

	if c.Worklog.MaxRecordsPerUser <= 0 {
		return fmt.Errorf("worklog.max_records_per_user must be > 0 (got %d)", c.Worklog.MaxRecordsPerUser)
	}

	if c.Worklog.TrashRetentionDays < 0 {
		return fmt.Errorf("worklog.trash_retention_days must be >= 0 (got %d)", c.Worklog.TrashRetentionDays)
	}

	return nil
}
