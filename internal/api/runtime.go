package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/pathlight-health/casebook/internal/config"
	"github.com/pathlight-health/casebook/internal/infrastructure"
	"github.com/pathlight-health/casebook/internal/users"
	"github.com/pathlight-health/casebook/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	Auth       users.Options
	Pagination pagination.Config
	MaxUpload  int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Agent: cfg.Agent,
		Auth: users.Options{
			Secret:   cfg.Auth.SecretBytes(),
			TokenTTL: cfg.Auth.TokenTTLDuration(),
		},
		Pagination: cfg.API.Pagination,
		MaxUpload:  cfg.API.MaxUploadSizeBytes(),
	}
}
