package api

import (
	"github.com/pathlight-health/casebook/internal/audio"
	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/drafts"
	"github.com/pathlight-health/casebook/internal/followups"
	"github.com/pathlight-health/casebook/internal/generator"
	"github.com/pathlight-health/casebook/internal/users"
	"github.com/pathlight-health/casebook/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users     users.System
	Drafts    drafts.System
	Cases     cases.System
	Followups followups.System
	Generator generator.System
	Audio     audio.System
	Workflow  *workflow.Runtime
}

// NewDomain creates all domain systems from the API runtime. The workflow
// runtime is assembled from the case, follow-up, and generator systems so
// submissions run against the same instances the handlers use.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	usersSystem := users.New(db, runtime.Auth, runtime.Logger)
	draftsSystem := drafts.New(db, runtime.Logger)
	casesSystem := cases.New(db, draftsSystem, runtime.Logger)
	followupsSystem := followups.New(db, runtime.Logger)
	generatorSystem := generator.New(
		generator.NewCompleter(runtime.Agent),
		runtime.Logger,
	)
	audioSystem := audio.New(db, runtime.Storage, runtime.Logger)

	return &Domain{
		Users:     usersSystem,
		Drafts:    draftsSystem,
		Cases:     casesSystem,
		Followups: followupsSystem,
		Generator: generatorSystem,
		Audio:     audioSystem,
		Workflow: &workflow.Runtime{
			Cases:     casesSystem,
			Followups: followupsSystem,
			Generator: generatorSystem,
			Logger:    runtime.Logger,
		},
	}
}
