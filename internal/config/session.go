package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pathlight-health/casebook/internal/sessions"
)

const (
	EnvSessionLimit    = "CASEBOOK_SESSION_LIMIT"
	EnvSessionWarnAt   = "CASEBOOK_SESSION_WARN_AT"
	EnvSessionAutoSave = "CASEBOOK_SESSION_AUTO_SAVE"
)

// SessionConfig holds the editing-session timing policy as duration strings.
type SessionConfig struct {
	Limit    string `toml:"limit"`
	WarnAt   string `toml:"warn_at"`
	AutoSave string `toml:"auto_save"`
}

// Policy converts the config into the sessions package policy, leaving
// unset escalation thresholds at their defaults.
func (c *SessionConfig) Policy() sessions.Config {
	policy := sessions.Config{}
	policy.Limit, _ = time.ParseDuration(c.Limit)
	policy.WarnAt, _ = time.ParseDuration(c.WarnAt)
	policy.AutoSave, _ = time.ParseDuration(c.AutoSave)
	policy.Finalize()
	return policy
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *SessionConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *SessionConfig) Merge(overlay *SessionConfig) {
	if overlay.Limit != "" {
		c.Limit = overlay.Limit
	}
	if overlay.WarnAt != "" {
		c.WarnAt = overlay.WarnAt
	}
	if overlay.AutoSave != "" {
		c.AutoSave = overlay.AutoSave
	}
}

func (c *SessionConfig) loadDefaults() {
	if c.Limit == "" {
		c.Limit = "30m"
	}
	if c.WarnAt == "" {
		c.WarnAt = "5m"
	}
	if c.AutoSave == "" {
		c.AutoSave = "2m"
	}
}

func (c *SessionConfig) loadEnv() {
	if v := os.Getenv(EnvSessionLimit); v != "" {
		c.Limit = v
	}
	if v := os.Getenv(EnvSessionWarnAt); v != "" {
		c.WarnAt = v
	}
	if v := os.Getenv(EnvSessionAutoSave); v != "" {
		c.AutoSave = v
	}
}

func (c *SessionConfig) validate() error {
	for name, value := range map[string]string{
		"limit":     c.Limit,
		"warn_at":   c.WarnAt,
		"auto_save": c.AutoSave,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
