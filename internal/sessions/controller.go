package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/drafts"
	"github.com/pathlight-health/casebook/internal/followups"
	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/internal/workflow"
)

// State identifies where an editing session sits in its lifecycle.
type State string

const (
	StateFresh           State = "fresh"
	StateEditing         State = "editing"
	StateDraftSaved      State = "draft_saved"
	StateFinalizing      State = "finalizing"
	StateFinalized       State = "finalized"
	// Generation runs synchronously inside Submit, so the session jumps
	// from finalized straight to ready_for_answers; there is no
	// observable generating state.
	StateReadyForAnswers State = "ready_for_answers"
	StateAnswering       State = "answering"
	StateComplete        State = "complete"
)

// Controller drives one owner's editing session for a single form kind. It
// coordinates draft persistence, submission, and the follow-up answering
// flow. Controllers are not safe for concurrent use; the model is a single
// active editor per (owner, form kind).
type Controller struct {
	owner  string
	kind   intake.FormKind
	state  State
	timer  *Timer
	drafts drafts.System
	ledger followups.System
	rt     *workflow.Runtime
	logger *slog.Logger
}

// NewController creates a session controller in the Fresh state. A nil now
// function uses the wall clock.
func NewController(
	owner string,
	kind intake.FormKind,
	cfg Config,
	draftSys drafts.System,
	ledger followups.System,
	rt *workflow.Runtime,
	logger *slog.Logger,
	now func() time.Time,
) *Controller {
	return &Controller{
		owner:  owner,
		kind:   kind,
		state:  StateFresh,
		timer:  NewTimer(cfg, now),
		drafts: draftSys,
		ledger: ledger,
		rt:     rt,
		logger: logger.With("session", owner, "form_kind", kind),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Timer exposes the session timer for warning and auto-save checks.
func (c *Controller) Timer() *Timer {
	return c.timer
}

// Enter checks for an existing draft on page entry. When one exists the
// caller must present a Resume / Start Fresh choice; the draft is never
// auto-loaded.
func (c *Controller) Enter(ctx context.Context) (bool, error) {
	exists, err := c.drafts.Has(ctx, c.owner, c.kind)
	if err != nil {
		return false, fmt.Errorf("check draft: %w", err)
	}
	return exists, nil
}

// Resume loads the stored draft back into the session exactly as stored.
func (c *Controller) Resume(ctx context.Context) (*drafts.Draft, error) {
	d, err := c.drafts.Get(ctx, c.owner, c.kind)
	if err != nil {
		return nil, err
	}

	c.state = StateDraftSaved
	c.timer.Touch()
	return d, nil
}

// StartFresh discards the stored draft and begins with a clean form.
func (c *Controller) StartFresh(ctx context.Context) error {
	if _, err := c.drafts.Delete(ctx, c.owner, c.kind); err != nil {
		return err
	}

	c.state = StateFresh
	c.timer.Touch()
	return nil
}

// Edit records a field change. Intake forms persist on the auto-save timer,
// not per edit, so this only advances state and activity.
func (c *Controller) Edit() {
	c.timer.Touch()
	if c.state == StateFresh || c.state == StateDraftSaved {
		c.state = StateEditing
	}
}

// Tick runs the periodic auto-save check. The draft is persisted only when
// the interval has elapsed and there are unsaved edits.
func (c *Controller) Tick(ctx context.Context, cmd drafts.SaveCommand) (bool, error) {
	if c.state != StateEditing || !c.timer.ShouldAutoSave() {
		return false, nil
	}

	if err := c.SaveDraft(ctx, cmd); err != nil {
		return false, err
	}
	return true, nil
}

// SaveDraft persists the draft immediately, bypassing the timer.
func (c *Controller) SaveDraft(ctx context.Context, cmd drafts.SaveCommand) error {
	cmd.FormKind = c.kind

	if _, err := c.drafts.Save(ctx, c.owner, cmd); err != nil {
		return err
	}

	c.timer.MarkSaved()
	if c.state == StateEditing || c.state == StateFresh {
		c.state = StateDraftSaved
	}
	return nil
}

// Submit finalizes the form and synchronously attempts question generation.
// Validation failures preserve the session state so the form can be
// corrected and resubmitted. A generation failure leaves the session
// Finalized with the case intact.
func (c *Controller) Submit(ctx context.Context, cmd cases.FinalizeCommand) (*workflow.SubmitResult, error) {
	prev := c.state
	c.state = StateFinalizing

	cmd.FormKind = c.kind

	result, err := workflow.Execute(ctx, c.rt, workflow.SubmitCommand{
		Owner:   c.owner,
		Command: cmd,
	})
	if err != nil {
		c.state = prev
		return nil, err
	}

	if len(result.Questions) > 0 {
		c.state = StateReadyForAnswers
	} else {
		c.state = StateFinalized
	}

	c.timer.MarkSaved()
	return result, nil
}

// BeginAnswering opens the follow-up answering sub-flow for a case.
func (c *Controller) BeginAnswering() {
	c.state = StateAnswering
	c.timer.Touch()
}

// EditAnswer persists the answering mini-draft on every edit. Answer boxes
// have no next field to blur into, so each change saves immediately rather
// than waiting for the timer.
func (c *Controller) EditAnswer(ctx context.Context, caseID string, cmd drafts.SaveCommand) error {
	c.timer.Touch()

	cmd.FormKind = c.kind.FollowOn()
	cmd.CaseID = &caseID

	if _, err := c.drafts.Save(ctx, c.owner, cmd); err != nil {
		return err
	}

	c.timer.MarkSaved()
	return nil
}

// AnswerQuestion commits one answer to the ledger. When the last question is
// answered the mini-draft is deleted and the session completes.
func (c *Controller) AnswerQuestion(ctx context.Context, id uuid.UUID, cmd followups.AnswerCommand) (*followups.Question, error) {
	c.timer.Touch()

	q, err := c.ledger.Answer(ctx, id, cmd)
	if err != nil {
		return nil, err
	}
	if q == nil {
		// Stale question reference. The caller re-fetches the current
		// list; there is nothing to roll back or complete.
		return nil, nil
	}

	complete, err := c.ledger.IsComplete(ctx, q.CaseID)
	if err != nil {
		return nil, err
	}

	if complete {
		if _, err := c.drafts.Delete(ctx, c.owner, c.kind.FollowOn()); err != nil {
			return nil, fmt.Errorf("clear answering draft: %w", err)
		}
		c.state = StateComplete
		c.logger.Info("follow-up answering complete", "case_id", q.CaseID)
	}

	return q, nil
}
