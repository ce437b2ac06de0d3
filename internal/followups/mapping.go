package followups

import (
	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "follow_up_questions", "f").
	Project("id", "ID").
	Project("case_id", "CaseID").
	Project("owner_name", "Owner").
	Project("section", "Section").
	Project("ordinal", "Ordinal").
	Project("question_text", "Text").
	Project("answer_text", "Answer").
	Project("created_at", "CreatedAt").
	Project("answered_at", "AnsweredAt")

var defaultSort = []query.SortField{
	{Field: "Section", Descending: false},
	{Field: "Ordinal", Descending: false},
}

func scanQuestion(s repository.Scanner) (Question, error) {
	var q Question

	err := s.Scan(
		&q.ID,
		&q.CaseID,
		&q.Owner,
		&q.Section,
		&q.Ordinal,
		&q.Text,
		&q.Answer,
		&q.CreatedAt,
		&q.AnsweredAt,
	)

	return q, err
}

func scanPending(s repository.Scanner) (CasePending, error) {
	var p CasePending
	var kindRaw string

	err := s.Scan(
		&p.CaseID,
		&kindRaw,
		&p.CreatedAt,
		&p.Total,
		&p.Answered,
	)

	p.FormKind = intake.FormKind(kindRaw)
	p.derive()
	return p, err
}
