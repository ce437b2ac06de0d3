package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/followups"
)

// State bag keys shared between submission nodes.
const (
	KeyOwner     = "owner"
	KeyCommand   = "command"
	KeyCase      = "case"
	KeySeeds     = "seeds"
	KeyQuestions = "questions"
	KeyGenError  = "generation_error"
)

// SubmitCommand carries a complete form submission for one owner.
type SubmitCommand struct {
	Owner   string
	Command cases.FinalizeCommand
}

// SubmitResult is the outcome of a submission: the finalized case, any
// recorded follow-up questions, and the generation failure message when
// question generation did not succeed.
type SubmitResult struct {
	Case            *cases.Case          `json:"case"`
	Questions       []followups.Question `json:"questions"`
	GenerationError string               `json:"generation_error,omitempty"`
}

// Execute runs the submission workflow: finalize → generate → record. The
// finalize node failing fails the whole submission; generation and recording
// failures are captured in the result instead.
func Execute(ctx context.Context, rt *Runtime, cmd SubmitCommand) (*SubmitResult, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyOwner, cmd.Owner)
	initialState = initialState.Set(KeyCommand, cmd.Command)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, err
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("casebook-submit")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("generate", GenerateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("record", RecordNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finish", FinishNode(rt)); err != nil {
		return nil, err
	}

	// finalize → generate (unconditional)
	if err := graph.AddEdge("finalize", "generate", nil); err != nil {
		return nil, err
	}

	// generate → record (when questions were produced)
	if err := graph.AddEdge("generate", "record", hasSeeds); err != nil {
		return nil, err
	}

	// generate → finish (when generation produced nothing)
	if err := graph.AddEdge("generate", "finish", state.Not(hasSeeds)); err != nil {
		return nil, err
	}

	// record → finish (unconditional)
	if err := graph.AddEdge("record", "finish", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("finalize"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finish"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*SubmitResult, error) {
	val, ok := s.Get(KeyCase)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyCase)
	}

	c, ok := val.(cases.Case)
	if !ok {
		return nil, fmt.Errorf("%s is not cases.Case", KeyCase)
	}

	result := &SubmitResult{
		Case:      &c,
		Questions: []followups.Question{},
	}

	if qVal, ok := s.Get(KeyQuestions); ok {
		if questions, ok := qVal.([]followups.Question); ok {
			result.Questions = questions
		}
	}

	if eVal, ok := s.Get(KeyGenError); ok {
		if msg, ok := eVal.(string); ok {
			result.GenerationError = msg
		}
	}

	return result, nil
}

func hasSeeds(s state.State) bool {
	val, ok := s.Get(KeySeeds)
	if !ok {
		return false
	}

	seeds, ok := val.([]followups.Seed)
	return ok && len(seeds) > 0
}
