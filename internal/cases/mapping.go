package cases

import (
	"encoding/json"
	"fmt"

	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "cases", "c").
	Project("case_id", "CaseID").
	Project("owner_name", "Owner").
	Project("form_kind", "FormKind").
	Project("age", "Age").
	Project("gender", "Gender").
	Project("race", "Race").
	Project("region", "Region").
	Project("facility", "Facility").
	Project("stay_days", "StayDays").
	Project("services_discussed", "ServicesDiscussed").
	Project("services_accepted", "ServicesAccepted").
	Project("services_utilized", "ServicesUtilized").
	Project("answers", "Answers").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: false,
}

func scanCase(s repository.Scanner) (Case, error) {
	var c Case
	var kindRaw string
	var answersRaw []byte

	err := s.Scan(
		&c.CaseID,
		&c.Owner,
		&kindRaw,
		&c.Age,
		&c.Gender,
		&c.Race,
		&c.Region,
		&c.Facility,
		&c.StayDays,
		&c.ServicesDiscussed,
		&c.ServicesAccepted,
		&c.ServicesUtilized,
		&answersRaw,
		&c.CreatedAt,
	)

	if err != nil {
		return c, err
	}

	c.FormKind = intake.FormKind(kindRaw)

	if len(answersRaw) > 0 {
		if err := json.Unmarshal(answersRaw, &c.Answers); err != nil {
			return c, fmt.Errorf("unmarshal answers: %w", err)
		}
	}
	if c.Answers == nil {
		c.Answers = map[string]string{}
	}

	return c, nil
}
