package drafts

import (
	"context"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/internal/intake"
)

// System defines the public contract for draft domain operations. All
// operations are scoped to an owner; matching on owner is case-insensitive.
type System interface {
	Handler() *Handler

	// Save upserts the owner's draft for the command's form kind, replacing
	// any existing draft content. Empty commands are a no-op and return
	// uuid.Nil with no error.
	Save(ctx context.Context, owner string, cmd SaveCommand) (uuid.UUID, error)

	// Get returns the owner's draft for the form kind, or ErrNotFound.
	Get(ctx context.Context, owner string, kind intake.FormKind) (*Draft, error)

	// Has reports whether the owner holds a draft for the form kind.
	Has(ctx context.Context, owner string, kind intake.FormKind) (bool, error)

	// Delete removes the owner's draft for the form kind. The boolean
	// reports whether a draft existed.
	Delete(ctx context.Context, owner string, kind intake.FormKind) (bool, error)
}
