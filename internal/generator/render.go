package generator

import (
	"fmt"
	"strings"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/intake"
)

const notProvided = "Not provided"

// BuildCasePrompt renders a finalized case into the user message sent to the
// model: demographics, service details, and every narrative question in
// catalog order with unanswered questions marked explicitly.
func BuildCasePrompt(c cases.Case) string {
	var lines []string

	lines = append(lines,
		"=== PATIENT DEMOGRAPHICS ===",
		fmt.Sprintf("Age at SNF Stay: %d", c.Age),
		fmt.Sprintf("Gender: %s", c.Gender),
		fmt.Sprintf("Race: %s", c.Race),
		fmt.Sprintf("Region: %s", c.Region),
		"",
	)

	lines = append(lines,
		"=== SERVICE & DURATION INFORMATION ===",
		fmt.Sprintf("SNF Days: %s", orNotProvidedInt(c.StayDays)),
		fmt.Sprintf("Services Discussed: %s", orNotProvided(c.ServicesDiscussed)),
		fmt.Sprintf("Services Accepted: %s", orNotProvided(c.ServicesAccepted)),
		"",
	)

	lines = append(lines, "=== CASE NARRATIVE ANSWERS ===")
	for _, q := range intake.Questions(c.FormKind) {
		answer := strings.TrimSpace(c.Answers[q.ID])
		if answer == "" {
			lines = append(lines, "", fmt.Sprintf("%s (%s): [No answer provided]", q.Label, q.ID))
			continue
		}
		lines = append(lines, "", fmt.Sprintf("%s (%s):", q.Label, q.ID), answer)
	}

	return strings.Join(lines, "\n")
}

func orNotProvided(s *string) string {
	if s == nil || *s == "" {
		return notProvided
	}
	return *s
}

func orNotProvidedInt(n *int) string {
	if n == nil {
		return notProvided
	}
	return fmt.Sprintf("%d", *n)
}
