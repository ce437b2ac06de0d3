// Package api assembles the HTTP modules: the authenticated domain API and
// the public authentication surface.
package api

import (
	"net/http"

	"github.com/pathlight-health/casebook/internal/config"
	"github.com/pathlight-health/casebook/internal/infrastructure"
	"github.com/pathlight-health/casebook/pkg/middleware"
	"github.com/pathlight-health/casebook/pkg/module"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// Modules bundles the HTTP modules the service exposes.
type Modules struct {
	API  *module.Module
	Auth *module.Module
}

// NewModules creates both modules from shared domain systems. Every route
// under the API base path requires a bearer token; the auth module serves
// registration and login without one.
func NewModules(cfg *config.Config, infra *infrastructure.Infrastructure) (*Modules, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	apiMux := http.NewServeMux()
	registerRoutes(apiMux, domain, runtime)

	apiModule := module.New(cfg.API.BasePath, apiMux)
	apiModule.Use(middleware.CORS(&cfg.API.CORS))
	apiModule.Use(middleware.Logger(runtime.Logger))
	apiModule.Use(middleware.Auth(runtime.Auth.Secret))

	authMux := http.NewServeMux()
	routes.Register(authMux, domain.Users.Handler().Routes())

	authModule := module.New("/auth", authMux)
	authModule.Use(middleware.CORS(&cfg.API.CORS))
	authModule.Use(middleware.Logger(runtime.Logger))

	return &Modules{
		API:  apiModule,
		Auth: authModule,
	}, nil
}
