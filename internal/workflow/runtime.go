// Package workflow implements the case submission pipeline as a state graph:
// finalize the draft into a case, generate follow-up questions, and record
// them in the ledger. Generation failures do not fail the submission; the
// case is kept and the failure is reported alongside it.
package workflow

import (
	"log/slog"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/followups"
	"github.com/pathlight-health/casebook/internal/generator"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Domain systems.
type Runtime struct {
	Cases     cases.System
	Followups followups.System
	Generator generator.System
	Logger    *slog.Logger
}
