package generator

import (
	"log/slog"
	"net/http"

	"github.com/pathlight-health/casebook/pkg/handlers"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// Handler provides HTTP endpoints for generation diagnostics.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "generator"),
	}
}

// Routes returns the route group definition for generator endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/generator",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/errors", Handler: h.Errors},
		},
	}
}

// Errors returns recent generation failures, oldest first.
func (h *Handler) Errors(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Errors())
}
