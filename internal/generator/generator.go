// Package generator produces follow-up questions for finalized cases. It
// renders case content into a prompt, sends it to a configured language model
// agent, and parses the sectioned reply into question seeds. Generation
// failures are retained in a bounded in-memory log for admin review.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/followups"
	"github.com/pathlight-health/casebook/internal/intake"
)

// Completer abstracts the model call so tests can substitute canned replies.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// System defines the public contract for question generation.
type System interface {
	Handler() *Handler

	// Generate produces follow-up question seeds for a finalized case.
	// Returns ErrNoQuestions when the model reply yields no questions.
	Generate(ctx context.Context, c cases.Case) ([]followups.Seed, error)

	// Errors returns recent generation failures, oldest first.
	Errors() []ErrorEntry
}

type generator struct {
	completer Completer
	errors    *ErrorLog
	logger    *slog.Logger
}

// New creates a generation system backed by the given completer.
func New(completer Completer, logger *slog.Logger) System {
	return &generator{
		completer: completer,
		errors:    NewErrorLog(),
		logger:    logger.With("system", "generator"),
	}
}

func (g *generator) Handler() *Handler {
	return NewHandler(g, g.logger)
}

func (g *generator) Generate(ctx context.Context, c cases.Case) ([]followups.Seed, error) {
	system := fullSystemPrompt
	if c.FormKind.Base() == intake.KindAbbreviated {
		system = abbreviatedSystemPrompt
	}

	user := BuildCasePrompt(c)

	reply, err := g.completer.Complete(ctx, system, user)
	if err != nil {
		g.errors.Record(c.CaseID, err.Error())
		return nil, fmt.Errorf("complete case prompt: %w", err)
	}

	seeds := Parse(reply)
	if len(seeds) == 0 {
		g.errors.Record(c.CaseID, ErrNoQuestions.Error())
		return nil, ErrNoQuestions
	}

	g.logger.Info("follow-up questions generated",
		"case_id", c.CaseID,
		"count", len(seeds),
	)
	return seeds, nil
}

func (g *generator) Errors() []ErrorEntry {
	return g.errors.Entries()
}
