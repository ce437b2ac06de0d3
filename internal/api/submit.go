package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pathlight-health/casebook/internal/cases"
	"github.com/pathlight-health/casebook/internal/workflow"
	"github.com/pathlight-health/casebook/pkg/handlers"
	"github.com/pathlight-health/casebook/pkg/middleware"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// submitHandler exposes the case submission workflow over HTTP. It is the
// only handler backed by the workflow runtime rather than a single system.
type submitHandler struct {
	rt     *workflow.Runtime
	logger *slog.Logger
}

func newSubmitHandler(rt *workflow.Runtime, logger *slog.Logger) *submitHandler {
	return &submitHandler{
		rt:     rt,
		logger: logger.With("handler", "submit"),
	}
}

func (h *submitHandler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/submit",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
		},
	}
}

// Submit finalizes the caller's form and generates follow-up questions in
// one request. Returns 201 with the case, recorded questions, and any
// generation failure message.
func (h *submitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, cases.ErrNotFound)
		return
	}

	var cmd cases.FinalizeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := workflow.Execute(r.Context(), h.rt, workflow.SubmitCommand{
		Owner:   owner,
		Command: cmd,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, cases.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
