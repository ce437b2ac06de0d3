// Package sessions implements the editing-session state machine consumed by
// the form layer: a wall-clock timer driving auto-save and timeout warnings,
// and a controller coordinating draft save/resume/discard, submission, and
// the follow-up answering flow.
package sessions

import (
	"fmt"
	"time"
)

// WarningLevel grades a session-timeout warning by remaining time.
type WarningLevel int

const (
	WarningNone WarningLevel = iota
	WarningNotice
	WarningUrgent
	WarningCritical
)

// Timer tracks session age, user activity, and auto-save cadence. The clock
// is injectable for tests; a nil clock uses time.Now.
type Timer struct {
	cfg          Config
	now          func() time.Time
	started      time.Time
	lastActivity time.Time
	lastSaved    time.Time
}

// NewTimer starts a session timer with the given policy.
func NewTimer(cfg Config, now func() time.Time) *Timer {
	cfg.Finalize()
	if now == nil {
		now = time.Now
	}

	t := &Timer{cfg: cfg, now: now}
	start := now()
	t.started = start
	t.lastActivity = start
	t.lastSaved = start
	return t
}

// Touch records user activity, suppressing warnings for the configured window.
func (t *Timer) Touch() {
	t.lastActivity = t.now()
}

// MarkSaved resets the auto-save interval after a successful save.
func (t *Timer) MarkSaved() {
	t.lastSaved = t.now()
}

// Remaining returns the time left before the session limit, floored at zero.
func (t *Timer) Remaining() time.Duration {
	remaining := t.cfg.Limit - t.now().Sub(t.started)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the session limit has elapsed.
func (t *Timer) Expired() bool {
	return t.Remaining() == 0
}

// ShouldAutoSave reports whether the auto-save interval has elapsed since
// the last save.
func (t *Timer) ShouldAutoSave() bool {
	return t.now().Sub(t.lastSaved) >= t.cfg.AutoSave
}

// Warning returns the current timeout warning level. Warnings are suppressed
// while the user has been active within the suppression window, reappearing
// once they go idle.
func (t *Timer) Warning() WarningLevel {
	remaining := t.Remaining()
	if remaining > t.cfg.WarnAt {
		return WarningNone
	}

	if t.now().Sub(t.lastActivity) < t.cfg.Suppression {
		return WarningNone
	}

	switch {
	case remaining <= t.cfg.CriticalAt:
		return WarningCritical
	case remaining <= t.cfg.UrgentAt:
		return WarningUrgent
	default:
		return WarningNotice
	}
}

// FormatRemaining renders a duration as M:SS for warning banners.
func FormatRemaining(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
