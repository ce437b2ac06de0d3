package followups

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for follow-up question operations.
type System interface {
	Handler() *Handler

	// CreateBatch stores every seed for the case in one transaction.
	// Either all questions are recorded or none are.
	CreateBatch(ctx context.Context, caseID, owner string, seeds []Seed) ([]Question, error)

	// List returns the case's questions ordered by section then ordinal.
	List(ctx context.Context, caseID string) ([]Question, error)

	// Unanswered returns the subset of the case's questions with no
	// recorded answer, in the same order as List.
	Unanswered(ctx context.Context, caseID string) ([]Question, error)

	// Answer records the owner's response to a question. The literal text
	// "N/A" is stored verbatim. An unknown ID is a stale reference, not a
	// failure: the result is nil with no error and the caller re-fetches.
	Answer(ctx context.Context, id uuid.UUID, cmd AnswerCommand) (*Question, error)

	// Pending summarizes answer progress per case for the owner, oldest
	// case first. Matching on owner is case-insensitive.
	Pending(ctx context.Context, owner string) ([]CasePending, error)

	// IsComplete reports whether every question for the case is answered.
	// A case with no questions counts as complete.
	IsComplete(ctx context.Context, caseID string) (bool, error)
}
