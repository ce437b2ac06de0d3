package intake_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pathlight-health/casebook/internal/intake"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    intake.FormKind
		wantErr bool
	}{
		{name: "abbreviated", input: "abbrev", want: intake.KindAbbreviated},
		{name: "general", input: "abbrev_gen", want: intake.KindAbbreviatedGeneral},
		{name: "full", input: "full", want: intake.KindFull},
		{name: "follow on abbreviated", input: "follow_on_abbrev", want: intake.FormKind("follow_on_abbrev")},
		{name: "follow on full", input: "follow_on_full", want: intake.FormKind("follow_on_full")},
		{name: "unknown", input: "extended", wantErr: true},
		{name: "follow on unknown base", input: "follow_on_extended", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intake.ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, intake.ErrInvalidKind) {
					t.Fatalf("expected ErrInvalidKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormKindUnmarshalJSON(t *testing.T) {
	var kind intake.FormKind
	if err := json.Unmarshal([]byte(`"abbrev_gen"`), &kind); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != intake.KindAbbreviatedGeneral {
		t.Errorf("expected abbrev_gen, got %q", kind)
	}

	if err := json.Unmarshal([]byte(`"bogus"`), &kind); !errors.Is(err, intake.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestFollowOnRoundTrip(t *testing.T) {
	for _, kind := range intake.Kinds() {
		follow := kind.FollowOn()
		if !follow.IsFollowOn() {
			t.Errorf("%q: expected follow-on kind", kind)
		}
		if follow.FollowOn() != follow {
			t.Errorf("%q: FollowOn should be idempotent", kind)
		}
		if follow.Base() != kind {
			t.Errorf("%q: expected base %q, got %q", follow, kind, follow.Base())
		}
		if kind.IsFollowOn() {
			t.Errorf("%q: base kind reported as follow-on", kind)
		}
	}
}

func TestQuestionCatalogs(t *testing.T) {
	tests := []struct {
		kind  intake.FormKind
		count int
		first string
		last  string
	}{
		{kind: intake.KindAbbreviated, count: 8, first: "aq1", last: "aq8"},
		{kind: intake.KindAbbreviatedGeneral, count: 9, first: "gq1", last: "gq9"},
		{kind: intake.KindFull, count: 22, first: "q6", last: "q28"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			qs := intake.Questions(tt.kind)
			if len(qs) != tt.count {
				t.Fatalf("expected %d questions, got %d", tt.count, len(qs))
			}
			if qs[0].ID != tt.first {
				t.Errorf("expected first question %q, got %q", tt.first, qs[0].ID)
			}
			if qs[len(qs)-1].ID != tt.last {
				t.Errorf("expected last question %q, got %q", tt.last, qs[len(qs)-1].ID)
			}

			follow := intake.Questions(tt.kind.FollowOn())
			if len(follow) != tt.count {
				t.Errorf("follow-on catalog should match base: expected %d, got %d", tt.count, len(follow))
			}
		})
	}
}

func TestFullCatalogSkipsRetiredQuestion(t *testing.T) {
	for _, q := range intake.Questions(intake.KindFull) {
		if q.ID == "q24" {
			t.Fatal("q24 is retired and must not appear in the full catalog")
		}
	}
}

func TestLabel(t *testing.T) {
	if got := intake.Label(intake.KindAbbreviated, "aq7"); got != "HHA Involvement" {
		t.Errorf("unexpected label: %q", got)
	}
	if got := intake.Label(intake.KindFull, "q99"); got != "q99" {
		t.Errorf("unknown IDs should fall back to the ID, got %q", got)
	}
}

func TestSectionTitle(t *testing.T) {
	tests := []struct {
		kind   intake.FormKind
		letter string
		want   string
	}{
		{intake.KindAbbreviated, "A", "Reasoning Trace"},
		{intake.KindAbbreviated, "B", "Discharge Timing Dynamics"},
		{intake.KindFull, "C", "SNF Patient State Transitions, Incentives, and Navigator Time Allocation"},
		{intake.KindAbbreviatedGeneral, "B", "Early Warning Signals (LT vs Hospital)"},
		{intake.KindAbbreviatedGeneral, "C", "Decision Points & Triggers"},
		{intake.FormKind("follow_on_abbrev_gen"), "B", "Early Warning Signals (LT vs Hospital)"},
		{intake.KindFull, "D", "D"},
	}

	for _, tt := range tests {
		if got := intake.SectionTitle(tt.kind, tt.letter); got != tt.want {
			t.Errorf("SectionTitle(%q, %q) = %q, want %q", tt.kind, tt.letter, got, tt.want)
		}
	}
}
