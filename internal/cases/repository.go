package cases

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pathlight-health/casebook/internal/drafts"
	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/pagination"
	"github.com/pathlight-health/casebook/pkg/query"
	"github.com/pathlight-health/casebook/pkg/repository"
)

type repo struct {
	db     *sql.DB
	drafts drafts.System
	logger *slog.Logger
}

// New creates a case repository implementing the System interface. The draft
// system is used to clear the source draft during finalization.
func New(db *sql.DB, drafts drafts.System, logger *slog.Logger) System {
	return &repo{
		db:     db,
		drafts: drafts,
		logger: logger.With("system", "cases"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Finalize(ctx context.Context, owner string, cmd FinalizeCommand) (*Case, error) {
	kind, err := intake.ParseKind(string(cmd.FormKind))
	if err != nil {
		return nil, err
	}
	if kind.IsFollowOn() {
		return nil, intake.ErrInvalidKind
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(cmd.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}
	if cmd.Answers == nil {
		answersJSON = []byte("{}")
	}

	// The draft is cleared before the case insert. A crash between the two
	// loses in-progress state rather than producing a duplicate case.
	if _, err := r.drafts.Delete(ctx, owner, kind); err != nil {
		return nil, fmt.Errorf("clear draft: %w", err)
	}

	insertQ := `
		INSERT INTO cases(
			case_id, owner_name, form_kind, age, gender, race, region,
			facility, stay_days, services_discussed, services_accepted,
			services_utilized, answers
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING case_id, owner_name, form_kind, age, gender, race, region,
				  facility, stay_days, services_discussed, services_accepted,
				  services_utilized, answers, created_at`

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Case, error) {
		count, err := repository.Count(ctx, tx,
			"SELECT COUNT(*) FROM cases WHERE LOWER(owner_name) = LOWER($1)",
			owner,
		)
		if err != nil {
			return Case{}, fmt.Errorf("count owner cases: %w", err)
		}

		caseID := BuildCaseID(owner, count+1)

		args := []any{
			caseID,
			owner,
			string(kind),
			*cmd.Age,
			*cmd.Gender,
			*cmd.Race,
			*cmd.Region,
			cmd.Facility,
			cmd.StayDays,
			cmd.ServicesDiscussed,
			cmd.ServicesAccepted,
			cmd.ServicesUtilized,
			answersJSON,
		}

		inserted, err := repository.QueryOne(ctx, tx, insertQ, args, scanCase)
		if err != nil {
			return Case{}, fmt.Errorf("insert case: %w", err)
		}
		return inserted, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("case finalized",
		"case_id", c.CaseID,
		"owner", owner,
		"form_kind", c.FormKind,
	)
	return &c, nil
}

func (r *repo) Find(ctx context.Context, caseID string) (*Case, error) {
	q, args := query.NewBuilder(projection).BuildSingle("CaseID", caseID)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCase)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, owner *string, kind *intake.FormKind) ([]Case, error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEqualsFold("Owner", owner)

	if kind != nil {
		qb.WhereEquals("FormKind", string(*kind))
	}

	listSQL, listArgs := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, listSQL, listArgs, scanCase)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}
	return items, nil
}

func (r *repo) Page(ctx context.Context, req pagination.PageRequest) (pagination.PageResult[Case], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(req.Search, "Owner", "CaseID")

	if len(req.Sort) > 0 {
		qb.OrderByFields(req.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return pagination.PageResult[Case]{}, fmt.Errorf("count cases: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(req.Page, req.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCase)
	if err != nil {
		return pagination.PageResult[Case]{}, fmt.Errorf("query case page: %w", err)
	}

	return pagination.NewPageResult(items, total, req.Page, req.PageSize), nil
}
