package followups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a follow-up question repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "followups"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) CreateBatch(ctx context.Context, caseID, owner string, seeds []Seed) ([]Question, error) {
	if len(seeds) == 0 {
		return []Question{}, nil
	}

	insertQ := `
		INSERT INTO follow_up_questions(case_id, owner_name, section, ordinal, question_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, case_id, owner_name, section, ordinal, question_text,
				  answer_text, created_at, answered_at`

	questions, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Question, error) {
		created := make([]Question, 0, len(seeds))

		for _, seed := range seeds {
			q, err := repository.QueryOne(ctx, tx, insertQ,
				[]any{caseID, owner, seed.Section, seed.Ordinal, seed.Text},
				scanQuestion,
			)
			if err != nil {
				return nil, fmt.Errorf("insert question %s%d: %w", seed.Section, seed.Ordinal, err)
			}
			created = append(created, q)
		}

		return created, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("follow-up questions recorded",
		"case_id", caseID,
		"count", len(questions),
	)
	return questions, nil
}

func (r *repo) List(ctx context.Context, caseID string) ([]Question, error) {
	listSQL, listArgs := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals("CaseID", caseID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, listSQL, listArgs, scanQuestion)
	if err != nil {
		return nil, fmt.Errorf("query follow-up questions: %w", err)
	}
	return items, nil
}

func (r *repo) Unanswered(ctx context.Context, caseID string) ([]Question, error) {
	unansweredSQL, unansweredArgs := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals("CaseID", caseID).
		WhereNullable("Answer", nil).
		Build()

	items, err := repository.QueryMany(ctx, r.db, unansweredSQL, unansweredArgs, scanQuestion)
	if err != nil {
		return nil, fmt.Errorf("query unanswered questions: %w", err)
	}
	return items, nil
}

func (r *repo) Answer(ctx context.Context, id uuid.UUID, cmd AnswerCommand) (*Question, error) {
	if strings.TrimSpace(cmd.Answer) == "" {
		return nil, ErrEmptyAnswer
	}

	answerQ := `
		UPDATE follow_up_questions
		SET answer_text = $1, answered_at = NOW()
		WHERE id = $2
		RETURNING id, case_id, owner_name, section, ordinal, question_text,
				  answer_text, created_at, answered_at`

	q, err := repository.QueryOne(ctx, r.db, answerQ, []any{cmd.Answer, id}, scanQuestion)
	if errors.Is(err, sql.ErrNoRows) {
		// Stale reference: the question list the caller holds is out of
		// date. Not an error; the caller re-fetches.
		r.logger.Debug("answer for unknown question", "id", id)
		return nil, nil
	}
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Debug("follow-up question answered",
		"id", q.ID,
		"case_id", q.CaseID,
	)
	return &q, nil
}

func (r *repo) Pending(ctx context.Context, owner string) ([]CasePending, error) {
	pendingQ := `
		SELECT f.case_id, c.form_kind, c.created_at,
			   COUNT(*) AS total,
			   COUNT(f.answer_text) AS answered
		FROM follow_up_questions f
		JOIN cases c ON c.case_id = f.case_id
		WHERE LOWER(f.owner_name) = LOWER($1)
		GROUP BY f.case_id, c.form_kind, c.created_at
		ORDER BY c.created_at ASC`

	items, err := repository.QueryMany(ctx, r.db, pendingQ, []any{owner}, scanPending)
	if err != nil {
		return nil, fmt.Errorf("query pending cases: %w", err)
	}
	return items, nil
}

func (r *repo) IsComplete(ctx context.Context, caseID string) (bool, error) {
	n, err := repository.Count(ctx, r.db,
		"SELECT COUNT(*) FROM follow_up_questions WHERE case_id = $1 AND answer_text IS NULL",
		caseID,
	)
	if err != nil {
		return false, fmt.Errorf("count unanswered questions: %w", err)
	}
	return n == 0, nil
}
