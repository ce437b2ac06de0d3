// Package cases implements the finalized-case domain for Casebook. A case is
// an immutable record of a completed intake form: validated demographics,
// service details, and narrative answers, keyed by a human-readable case ID
// derived from the owner's name and a per-owner sequence number.
package cases

import (
	"fmt"
	"strings"
	"time"

	"github.com/pathlight-health/casebook/internal/intake"
)

// Case represents a finalized intake record. It mirrors the cases table
// schema with narrative answers as a JSON document.
type Case struct {
	CaseID            string            `json:"case_id"`
	Owner             string            `json:"owner"`
	FormKind          intake.FormKind   `json:"form_kind"`
	Age               int               `json:"age"`
	Gender            string            `json:"gender"`
	Race              string            `json:"race"`
	Region            string            `json:"region"`
	Facility          *string           `json:"facility"`
	StayDays          *int              `json:"stay_days"`
	ServicesDiscussed *string           `json:"services_discussed"`
	ServicesAccepted  *string           `json:"services_accepted"`
	ServicesUtilized  *string           `json:"services_utilized"`
	Answers           map[string]string `json:"answers"`
	CreatedAt         time.Time         `json:"created_at"`
}

// NumberedCase pairs a case with its display number: the case's 1-based
// position among the cases of the same form kind, oldest first.
type NumberedCase struct {
	Case
	Number int `json:"number"`
}

// FinalizeCommand carries the complete form content for finalization.
// Age, Gender, Race, and Region are required; everything else is optional.
type FinalizeCommand struct {
	FormKind          intake.FormKind   `json:"form_kind"`
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
}

// Validate checks the required demographic fields and returns a
// ValidationError naming every missing field, or nil when complete.
func (c FinalizeCommand) Validate() error {
	var missing []string

	if c.Age == nil {
		missing = append(missing, "age")
	}
	if c.Gender == nil || strings.TrimSpace(*c.Gender) == "" {
		missing = append(missing, "gender")
	}
	if c.Race == nil || strings.TrimSpace(*c.Race) == "" {
		missing = append(missing, "race")
	}
	if c.Region == nil || strings.TrimSpace(*c.Region) == "" {
		missing = append(missing, "region")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// NormalizeOwner lowercases an owner name and collapses whitespace runs into
// single underscores, producing the case ID prefix.
func NormalizeOwner(owner string) string {
	return strings.Join(strings.Fields(strings.ToLower(owner)), "_")
}

// BuildCaseID composes a case ID from an owner name and sequence number.
func BuildCaseID(owner string, seq int) string {
	return fmt.Sprintf("%s_%d", NormalizeOwner(owner), seq)
}

// Numbered assigns display numbers to cases already sorted oldest first.
// Numbering restarts at 1 for each form kind.
func Numbered(cases []Case) []NumberedCase {
	counts := make(map[intake.FormKind]int)
	numbered := make([]NumberedCase, len(cases))

	for i, c := range cases {
		counts[c.FormKind]++
		numbered[i] = NumberedCase{Case: c, Number: counts[c.FormKind]}
	}

	return numbered
}
