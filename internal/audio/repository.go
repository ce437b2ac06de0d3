package audio

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
	"github.com/pathlight-health/casebook/pkg/storage"
)

const uploadWorkers = 4

type repo struct {
	db     *sql.DB
	blobs  storage.System
	logger *slog.Logger
}

// New creates an audio repository implementing the System interface.
func New(db *sql.DB, blobs storage.System, logger *slog.Logger) System {
	return &repo{
		db:     db,
		blobs:  blobs,
		logger: logger.With("system", "audio"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Save(ctx context.Context, owner, caseID string, up Upload) (*Recording, error) {
	if up.Body == nil {
		return nil, ErrNoBody
	}

	id := uuid.New()
	key := fmt.Sprintf("%s/%s/%s", caseID, up.QuestionID, id)

	if err := r.blobs.Upload(ctx, key, up.Body, up.ContentType); err != nil {
		return nil, fmt.Errorf("upload recording: %w", err)
	}

	insertQ := `
		INSERT INTO audio_responses(
			id, case_id, question_id, owner_name, storage_key,
			content_type, content_length, transcript
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, case_id, question_id, owner_name, storage_key,
				  content_type, content_length, transcript, created_at`

	args := []any{id, caseID, up.QuestionID, owner, key, up.ContentType, up.Size, up.Transcript}

	rec, err := repository.QueryOne(ctx, r.db, insertQ, args, scanRecording)
	if err != nil {
		// Best-effort cleanup of the orphaned blob.
		if delErr := r.blobs.Delete(ctx, key); delErr != nil {
			r.logger.Warn("orphaned recording blob", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("recording saved",
		"id", rec.ID,
		"case_id", caseID,
		"question_id", up.QuestionID,
	)
	return &rec, nil
}

func (r *repo) SaveBatch(ctx context.Context, owner, caseID string, ups []Upload) ([]Recording, error) {
	if len(ups) == 0 {
		return []Recording{}, nil
	}

	var mu sync.Mutex
	recordings := make([]Recording, 0, len(ups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadWorkers)

	for _, up := range ups {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			rec, err := r.Save(gctx, owner, caseID, up)
			if err != nil {
				return fmt.Errorf("question %s: %w", up.QuestionID, err)
			}

			mu.Lock()
			recordings = append(recordings, *rec)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return recordings, nil
}

func (r *repo) List(ctx context.Context, caseID string) ([]Recording, error) {
	listSQL, listArgs := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("CaseID", caseID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, listSQL, listArgs, scanRecording)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	return items, nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*storage.DownloadResult, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecording)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	result, err := r.blobs.Download(ctx, rec.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("download recording: %w", err)
	}
	return result, nil
}
