package drafts

import (
	"encoding/json"
	"fmt"

	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "drafts", "d").
	Project("id", "ID").
	Project("owner_name", "Owner").
	Project("form_kind", "FormKind").
	Project("case_id", "CaseID").
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
	Project("audio_flags", "AudioFlags").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanDraft(s repository.Scanner) (Draft, error) {
	var d Draft
	var kindRaw string
	var answersRaw, flagsRaw []byte

	err := s.Scan(
		&d.ID,
		&d.Owner,
		&kindRaw,
		&d.CaseID,
		&d.Age,
		&d.Gender,
		&d.Race,
		&d.Region,
		&d.Facility,
		&d.StayDays,
		&d.ServicesDiscussed,
		&d.ServicesAccepted,
		&d.ServicesUtilized,
		&answersRaw,
		&flagsRaw,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	if err != nil {
		return d, err
	}

	d.FormKind = intake.FormKind(kindRaw)

	if len(answersRaw) > 0 {
		if err := json.Unmarshal(answersRaw, &d.Answers); err != nil {
			return d, fmt.Errorf("unmarshal answers: %w", err)
		}
	}
	if d.Answers == nil {
		d.Answers = map[string]string{}
	}

	if len(flagsRaw) > 0 {
		if err := json.Unmarshal(flagsRaw, &d.AudioFlags); err != nil {
			return d, fmt.Errorf("unmarshal audio_flags: %w", err)
		}
	}
	if d.AudioFlags == nil {
		d.AudioFlags = map[string]bool{}
	}

	return d, nil
}
