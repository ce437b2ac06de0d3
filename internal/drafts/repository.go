package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a draft repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "drafts"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Save(ctx context.Context, owner string, cmd SaveCommand) (uuid.UUID, error) {
	if _, err := intake.ParseKind(string(cmd.FormKind)); err != nil {
		return uuid.Nil, err
	}

	if cmd.Empty() {
		return uuid.Nil, nil
	}

	answersJSON, err := json.Marshal(orEmptyAnswers(cmd.Answers))
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal answers: %w", err)
	}

	flagsJSON, err := json.Marshal(orEmptyFlags(cmd.AudioFlags))
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal audio_flags: %w", err)
	}

	upsertQ := `
		INSERT INTO drafts(
			owner_name, form_kind, case_id, age, gender, race, region,
			facility, stay_days, services_discussed, services_accepted,
			services_utilized, answers, audio_flags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (LOWER(owner_name), form_kind) DO UPDATE SET
			owner_name = EXCLUDED.owner_name,
			case_id = EXCLUDED.case_id,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			race = EXCLUDED.race,
			region = EXCLUDED.region,
			facility = EXCLUDED.facility,
			stay_days = EXCLUDED.stay_days,
			services_discussed = EXCLUDED.services_discussed,
			services_accepted = EXCLUDED.services_accepted,
			services_utilized = EXCLUDED.services_utilized,
			answers = EXCLUDED.answers,
			audio_flags = EXCLUDED.audio_flags,
			updated_at = NOW()
		RETURNING id`

	args := []any{
		owner,
		string(cmd.FormKind),
		cmd.CaseID,
		cmd.Age,
		cmd.Gender,
		cmd.Race,
		cmd.Region,
		cmd.Facility,
		cmd.StayDays,
		cmd.ServicesDiscussed,
		cmd.ServicesAccepted,
		cmd.ServicesUtilized,
		answersJSON,
		flagsJSON,
	}

	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, upsertQ, args...).Scan(&id); err != nil {
		return uuid.Nil, repository.MapError(fmt.Errorf("upsert draft: %w", err), ErrNotFound, ErrDuplicate)
	}

	r.logger.Debug("draft saved",
		"id", id,
		"owner", owner,
		"form_kind", cmd.FormKind,
	)
	return id, nil
}

func (r *repo) Get(ctx context.Context, owner string, kind intake.FormKind) (*Draft, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEqualsFold("Owner", &owner).
		WhereEquals("FormKind", string(kind)).
		BuildSingleOrNull()

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDraft)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Has(ctx context.Context, owner string, kind intake.FormKind) (bool, error) {
	qb := query.
		NewBuilder(projection).
		WhereEqualsFold("Owner", &owner).
		WhereEquals("FormKind", string(kind))

	countSQL, countArgs := qb.BuildCount()
	n, err := repository.Count(ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return false, fmt.Errorf("count drafts: %w", err)
	}
	return n > 0, nil
}

func (r *repo) Delete(ctx context.Context, owner string, kind intake.FormKind) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM drafts WHERE LOWER(owner_name) = LOWER($1) AND form_kind = $2",
		owner, string(kind),
	)
	if err != nil {
		return false, fmt.Errorf("delete draft: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete draft: %w", err)
	}

	if rows > 0 {
		r.logger.Debug("draft deleted", "owner", owner, "form_kind", kind)
	}
	return rows > 0, nil
}

func orEmptyAnswers(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptyFlags(m map[string]bool) map[string]bool {
	if m == nil {
		return map[string]bool{}
	}
	return m
}
