package cases

import (
	"context"

	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/pagination"
)

// System defines the public contract for case domain operations.
type System interface {
	Handler() *Handler

	// Finalize validates the command, removes the owner's draft for the
	// form kind, and inserts an immutable case record with a freshly
	// assigned case ID.
	Finalize(ctx context.Context, owner string, cmd FinalizeCommand) (*Case, error)

	// Find returns a case by its case ID, or ErrNotFound.
	Find(ctx context.Context, caseID string) (*Case, error)

	// List returns cases oldest first. A nil owner returns every case;
	// otherwise matching on owner is case-insensitive.
	List(ctx context.Context, owner *string, kind *intake.FormKind) ([]Case, error)

	// Page returns a page of every case for review across navigators.
	// Search matches against owner name and case ID.
	Page(ctx context.Context, req pagination.PageRequest) (pagination.PageResult[Case], error)
}
