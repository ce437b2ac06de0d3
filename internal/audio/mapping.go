package audio

import (
	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "audio_responses", "a").
	Project("id", "ID").
	Project("case_id", "CaseID").
	Project("question_id", "QuestionID").
	Project("owner_name", "Owner").
	Project("storage_key", "StorageKey").
	Project("content_type", "ContentType").
	Project("content_length", "Size").
	Project("transcript", "Transcript").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "QuestionID",
	Descending: false,
}

func scanRecording(s repository.Scanner) (Recording, error) {
	var rec Recording

	err := s.Scan(
		&rec.ID,
		&rec.CaseID,
		&rec.QuestionID,
		&rec.Owner,
		&rec.StorageKey,
		&rec.ContentType,
		&rec.Size,
		&rec.Transcript,
		&rec.CreatedAt,
	)

	return rec, err
}
