package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	return nil
}

func (w *WorkflowConfig) validate() error {
	if w.ActivityTTL < 0 {
		return fmt.Errorf("activity_ttl must be >= 0 (got %v)", w.ActivityTTL)
	}
	if w.ProcessTTL < 0 {
		return fmt.Errorf("process_ttl must be >= 0 (got %v)", w.ProcessTTL)
	}
	if w.PostRequiresApproval && strings.TrimSpace(w.SelfPublishRole) == "" {
		return fmt.Errorf("self_publish_role is required when post_requires_approval is set")
	}
	if w.PublicEventRequiresApproval && strings.TrimSpace(w.PublicEventPublishRole) == "" {
		return fmt.Errorf("public_event_publish_role is required when public_event_requires_approval is set")
	}
	return nil
}
