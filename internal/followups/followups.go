// Package followups implements the follow-up question ledger for Casebook.
// Generated questions are stored per case, organized into lettered sections
// with per-section ordinals, and answered one at a time by the case owner.
package followups

import (
	"time"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/internal/intake"
)

// Question represents a stored follow-up question for a case. Answer and
// AnsweredAt remain nil until the owner responds.
type Question struct {
	ID         uuid.UUID  `json:"id"`
	CaseID     string     `json:"case_id"`
	Owner      string     `json:"owner"`
	Section    string     `json:"section"`
	Ordinal    int        `json:"ordinal"`
	Text       string     `json:"text"`
	Answer     *string    `json:"answer"`
	CreatedAt  time.Time  `json:"created_at"`
	AnsweredAt *time.Time `json:"answered_at"`
}

// Seed carries one parsed question for batch creation. Section is the
// letter A, B, or C; Ordinal is the 1-based position within the section.
type Seed struct {
	Section string `json:"section"`
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// AnswerCommand carries an owner's response to a single question. The
// literal text "N/A" marks a question the owner declines to answer.
type AnswerCommand struct {
	Answer string `json:"answer"`
}

// CasePending summarizes a case's outstanding follow-up questions for the
// answering workflow's case picker. Unanswered and IsComplete are derived
// from the counts so the picker never recomputes them client-side.
type CasePending struct {
	CaseID     string          `json:"case_id"`
	FormKind   intake.FormKind `json:"form_kind"`
	CreatedAt  time.Time       `json:"created_at"`
	Total      int             `json:"total"`
	Answered   int             `json:"answered"`
	Unanswered int             `json:"unanswered"`
	IsComplete bool            `json:"is_complete"`
}

// derive fills the fields computed from Total and Answered.
func (p *CasePending) derive() {
	p.Unanswered = p.Total - p.Answered
	p.IsComplete = p.Unanswered == 0
}
