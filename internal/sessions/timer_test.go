package sessions_test

import (
	"testing"
	"time"

	"github.com/pathlight-health/casebook/internal/sessions"
)

// clock is a manually-advanced time source for timer tests.
type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTimerRemaining(t *testing.T) {
	c := newClock()
	timer := sessions.NewTimer(sessions.Config{}, c.now)

	if got := timer.Remaining(); got != 30*time.Minute {
		t.Errorf("expected 30m remaining, got %v", got)
	}

	c.advance(12 * time.Minute)
	if got := timer.Remaining(); got != 18*time.Minute {
		t.Errorf("expected 18m remaining, got %v", got)
	}

	c.advance(40 * time.Minute)
	if got := timer.Remaining(); got != 0 {
		t.Errorf("expected 0 remaining, got %v", got)
	}
	if !timer.Expired() {
		t.Error("expected expired session")
	}
}

func TestTimerWarningLevels(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    sessions.WarningLevel
	}{
		{name: "early session", elapsed: 10 * time.Minute, want: sessions.WarningNone},
		{name: "just inside warning zone", elapsed: 25*time.Minute + time.Second, want: sessions.WarningNotice},
		{name: "urgent zone", elapsed: 27*time.Minute + 30*time.Second, want: sessions.WarningUrgent},
		{name: "critical zone", elapsed: 29*time.Minute + 30*time.Second, want: sessions.WarningCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClock()
			timer := sessions.NewTimer(sessions.Config{}, c.now)

			// Move past the suppression window without touching the timer.
			c.advance(tt.elapsed)

			if got := timer.Warning(); got != tt.want {
				t.Errorf("Warning() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimerWarningSuppressedByActivity(t *testing.T) {
	c := newClock()
	timer := sessions.NewTimer(sessions.Config{}, c.now)

	c.advance(26 * time.Minute)
	if timer.Warning() == sessions.WarningNone {
		t.Fatal("expected warning in warning zone")
	}

	timer.Touch()
	if got := timer.Warning(); got != sessions.WarningNone {
		t.Errorf("expected suppression right after activity, got %v", got)
	}

	c.advance(30 * time.Second)
	if got := timer.Warning(); got != sessions.WarningNone {
		t.Errorf("expected suppression within the window, got %v", got)
	}

	c.advance(31 * time.Second)
	if got := timer.Warning(); got == sessions.WarningNone {
		t.Error("expected warning to reappear after idle")
	}
}

func TestTimerAutoSaveInterval(t *testing.T) {
	c := newClock()
	timer := sessions.NewTimer(sessions.Config{}, c.now)

	if timer.ShouldAutoSave() {
		t.Error("fresh timer should not auto-save")
	}

	c.advance(2 * time.Minute)
	if !timer.ShouldAutoSave() {
		t.Error("expected auto-save after interval")
	}

	timer.MarkSaved()
	if timer.ShouldAutoSave() {
		t.Error("MarkSaved should reset the interval")
	}

	c.advance(2 * time.Minute)
	if !timer.ShouldAutoSave() {
		t.Error("expected auto-save after interval elapses again")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Minute, "5:00"},
		{90 * time.Second, "1:30"},
		{9 * time.Second, "0:09"},
		{0, "0:00"},
	}

	for _, tt := range tests {
		if got := sessions.FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
