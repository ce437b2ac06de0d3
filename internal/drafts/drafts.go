// Package drafts implements the draft domain for Casebook. A draft is the
// single in-progress intake form a navigator holds per form kind: demographic
// fields, service details, and narrative answers saved incrementally before a
// case is finalized. Follow-on form kinds reuse the same storage to hold
// in-progress answers to generated follow-up questions.
package drafts

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/internal/intake"
)

// Draft represents a stored in-progress intake form. It mirrors the drafts
// table schema with answers and audio flags as JSON documents.
type Draft struct {
	ID                uuid.UUID         `json:"id"`
	Owner             string            `json:"owner"`
	FormKind          intake.FormKind   `json:"form_kind"`
	CaseID            *string           `json:"case_id"`
	Age               *int              `json:"age"`
	Gender            *string           `json:"gender"`
	Race              *string           `json:"race"`
	Region            *string           `json:"region"`
	Facility          *string           `json:"facility"`
	StayDays          *int              `json:"stay_days"`
	ServicesDiscussed *string           `json:"services_discussed"`
	ServicesAccepted  *string           `json:"services_accepted"`
	ServicesUtilized  *string           `json:"services_utilized"`
	Answers           map[string]string `json:"answers"`
	AudioFlags        map[string]bool   `json:"audio_flags"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// SaveCommand carries the full draft state for an upsert. Saving replaces the
// owner's existing draft for the form kind in its entirety.
type SaveCommand struct {
	FormKind          intake.FormKind   `json:"form_kind"`
	CaseID            *string           `json:"case_id"`
	Age               *int              `json:"age"`
	Gender            *string           `json:"gender"`
	Race              *string           `json:"race"`
	Region            *string           `json:"region"`
	Facility          *string           `json:"facility"`
	StayDays          *int              `json:"stay_days"`
	ServicesDiscussed *string           `json:"services_discussed"`
	ServicesAccepted  *string           `json:"services_accepted"`
	ServicesUtilized  *string           `json:"services_utilized"`
	Answers           map[string]string `json:"answers"`
	AudioFlags        map[string]bool   `json:"audio_flags"`
}

// Empty reports whether the command carries no content worth persisting.
// Whitespace-only answers do not count as content.
func (c SaveCommand) Empty() bool {
	if c.Age != nil || c.StayDays != nil {
		return false
	}
	for _, v := range []*string{
		c.Gender, c.Race, c.Region, c.Facility,
		c.ServicesDiscussed, c.ServicesAccepted, c.ServicesUtilized,
	} {
		if v != nil && strings.TrimSpace(*v) != "" {
			return false
		}
	}
	for _, answer := range c.Answers {
		if strings.TrimSpace(answer) != "" {
			return false
		}
	}
	return len(c.AudioFlags) == 0
}
