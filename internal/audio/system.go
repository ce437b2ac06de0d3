package audio

import (
	"context"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/pkg/storage"
)

// System defines the public contract for voice-answer operations.
type System interface {
	Handler() *Handler

	// Save streams one recording to blob storage and records its metadata.
	Save(ctx context.Context, owner, caseID string, up Upload) (*Recording, error)

	// SaveBatch stores several recordings concurrently. The first failure
	// cancels the remaining uploads.
	SaveBatch(ctx context.Context, owner, caseID string, ups []Upload) ([]Recording, error)

	// List returns a case's recordings ordered by question ID.
	List(ctx context.Context, caseID string) ([]Recording, error)

	// Download streams a recording's audio content.
	Download(ctx context.Context, id uuid.UUID) (*storage.DownloadResult, error)
}
