package followups

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/pkg/handlers"
	"github.com/pathlight-health/casebook/pkg/middleware"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// Handler provides HTTP endpoints for follow-up question operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "followups"),
	}
}

// Routes returns the route group definition for follow-up question endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/questions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/pending", Handler: h.Pending},
			{Method: "GET", Pattern: "/case/{caseId}", Handler: h.List},
			{Method: "GET", Pattern: "/case/{caseId}/unanswered", Handler: h.Unanswered},
			{Method: "GET", Pattern: "/case/{caseId}/complete", Handler: h.Complete},
			{Method: "POST", Pattern: "/{id}/answer", Handler: h.Answer},
		},
	}
}

// Pending summarizes the caller's answer progress per case.
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return
	}

	items, err := h.sys.Pending(r.Context(), owner)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// List returns a case's questions ordered by section then ordinal.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.List(r.Context(), r.PathValue("caseId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Unanswered returns the case's questions that still lack an answer.
func (h *Handler) Unanswered(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Unanswered(r.Context(), r.PathValue("caseId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Complete reports whether every question for a case has been answered.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	complete, err := h.sys.IsComplete(r.Context(), r.PathValue("caseId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"complete": complete})
}

// Answer records a response to a question by decoding an AnswerCommand JSON body.
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var cmd AnswerCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	q, err := h.sys.Answer(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if q == nil {
		// Stale question reference; the client re-fetches its list.
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, q)
}
