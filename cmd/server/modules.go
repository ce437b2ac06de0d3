package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pathlight-health/casebook/internal/api"
	"github.com/pathlight-health/casebook/internal/config"
	"github.com/pathlight-health/casebook/internal/infrastructure"
	"github.com/pathlight-health/casebook/pkg/module"
	"github.com/pathlight-health/casebook/pkg/openapi"
)

type Modules struct {
	API  *module.Module
	Auth *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	mods, err := api.NewModules(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:  mods.API,
		Auth: mods.Auth,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Auth)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) (*module.Router, error) {
	router := module.NewRouter()

	spec, err := api.BuildSpec(cfg)
	if err != nil {
		return nil, fmt.Errorf("build openapi spec: %w", err)
	}
	router.HandleNative("GET /openapi.json", openapi.ServeSpec(spec))

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router, nil
}
