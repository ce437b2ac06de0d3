// Package audio implements spoken-answer storage for Casebook. Navigators
// may answer narrative questions by voice; recordings are streamed to blob
// storage with a metadata row per question for later transcription review.
package audio

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Recording represents a stored voice answer for one question of a case.
// Transcript is nil until a transcription is supplied; transcription
// itself happens outside this service.
type Recording struct {
	ID          uuid.UUID `json:"id"`
	CaseID      string    `json:"case_id"`
	QuestionID  string    `json:"question_id"`
	Owner       string    `json:"owner"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Transcript  *string   `json:"transcript"`
	CreatedAt   time.Time `json:"created_at"`
}

// Upload carries one recording stream for storage, with an optional
// pre-computed transcript.
type Upload struct {
	QuestionID  string
	ContentType string
	Size        int64
	Transcript  *string
	Body        io.Reader
}
