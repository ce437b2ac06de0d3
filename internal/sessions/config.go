package sessions

import "time"

// Config holds the session timing policy. Zero values fall back to the
// defaults via Finalize.
type Config struct {
	// Limit is the platform-imposed session lifetime.
	Limit time.Duration
	// WarnAt is the remaining time at which timeout warnings begin.
	WarnAt time.Duration
	// UrgentAt and CriticalAt escalate the warning as time runs out.
	UrgentAt   time.Duration
	CriticalAt time.Duration
	// Suppression mutes warnings after detected user activity.
	Suppression time.Duration
	// AutoSave is the interval between timer-driven draft saves.
	AutoSave time.Duration
}

// DefaultConfig returns the standard 30-minute session policy.
func DefaultConfig() Config {
	return Config{
		Limit:       30 * time.Minute,
		WarnAt:      5 * time.Minute,
		UrgentAt:    3 * time.Minute,
		CriticalAt:  time.Minute,
		Suppression: time.Minute,
		AutoSave:    2 * time.Minute,
	}
}

// Finalize fills zero fields with defaults.
func (c *Config) Finalize() {
	d := DefaultConfig()

	if c.Limit <= 0 {
		c.Limit = d.Limit
	}
	if c.WarnAt <= 0 {
		c.WarnAt = d.WarnAt
	}
	if c.UrgentAt <= 0 {
		c.UrgentAt = d.UrgentAt
	}
	if c.CriticalAt <= 0 {
		c.CriticalAt = d.CriticalAt
	}
	if c.Suppression <= 0 {
		c.Suppression = d.Suppression
	}
	if c.AutoSave <= 0 {
		c.AutoSave = d.AutoSave
	}
}
