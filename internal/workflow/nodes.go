package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/followups"
)

// FinalizeNode returns a state node that validates the submission and
// converts the owner's draft into an immutable case.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		owner, cmd, err := extractSubmitState(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		c, err := rt.Cases.Finalize(ctx, owner, cmd)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		rt.Logger.InfoContext(ctx, "finalize node complete",
			"case_id", c.CaseID,
			"form_kind", c.FormKind,
		)

		return s.Set(KeyCase, *c), nil
	})
}

// GenerateNode returns a state node that asks the model for follow-up
// questions. Failures are recorded in the state bag rather than returned so
// the submission still completes with the finalized case.
func GenerateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("generate: %w", err)
		}

		seeds, err := rt.Generator.Generate(ctx, c)
		if err != nil {
			rt.Logger.WarnContext(ctx, "question generation failed",
				"case_id", c.CaseID,
				"error", err,
			)
			return s.Set(KeyGenError, err.Error()), nil
		}

		rt.Logger.InfoContext(ctx, "generate node complete",
			"case_id", c.CaseID,
			"count", len(seeds),
		)

		return s.Set(KeySeeds, seeds), nil
	})
}

// RecordNode returns a state node that stores the generated questions in the
// ledger. A recording failure keeps the case and surfaces the failure.
func RecordNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("record: %w", err)
		}

		val, ok := s.Get(KeySeeds)
		if !ok {
			return s, fmt.Errorf("record: missing %s in state", KeySeeds)
		}

		seeds, ok := val.([]followups.Seed)
		if !ok {
			return s, fmt.Errorf("record: %s is not []followups.Seed", KeySeeds)
		}

		questions, err := rt.Followups.CreateBatch(ctx, c.CaseID, c.Owner, seeds)
		if err != nil {
			rt.Logger.WarnContext(ctx, "question recording failed",
				"case_id", c.CaseID,
				"error", err,
			)
			return s.Set(KeyGenError, err.Error()), nil
		}

		return s.Set(KeyQuestions, questions), nil
	})
}

// FinishNode returns the terminal node. All result assembly happens from the
// final state; the node only logs completion.
func FinishNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		c, err := extractCase(s)
		if err != nil {
			return s, fmt.Errorf("finish: %w", err)
		}

		rt.Logger.InfoContext(ctx, "submission complete", "case_id", c.CaseID)
		return s, nil
	})
}

func extractSubmitState(s state.State) (string, cases.FinalizeCommand, error) {
	ownerVal, ok := s.Get(KeyOwner)
	if !ok {
		return "", cases.FinalizeCommand{}, fmt.Errorf("missing %s in state", KeyOwner)
	}

	owner, ok := ownerVal.(string)
	if !ok {
		return "", cases.FinalizeCommand{}, fmt.Errorf("%s is not string", KeyOwner)
	}

	cmdVal, ok := s.Get(KeyCommand)
	if !ok {
		return "", cases.FinalizeCommand{}, fmt.Errorf("missing %s in state", KeyCommand)
	}

	cmd, ok := cmdVal.(cases.FinalizeCommand)
	if !ok {
		return "", cases.FinalizeCommand{}, fmt.Errorf("%s is not cases.FinalizeCommand", KeyCommand)
	}

	return owner, cmd, nil
}

func extractCase(s state.State) (cases.Case, error) {
	val, ok := s.Get(KeyCase)
	if !ok {
		return cases.Case{}, fmt.Errorf("missing %s in state", KeyCase)
	}

	c, ok := val.(cases.Case)
	if !ok {
		return cases.Case{}, fmt.Errorf("%s is not cases.Case", KeyCase)
	}

	return c, nil
}
