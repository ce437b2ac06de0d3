package drafts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/handlers"
	"github.com/pathlight-health/casebook/pkg/middleware"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// Handler provides HTTP endpoints for draft operations. The acting owner is
// resolved from the authenticated request context.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "drafts"),
	}
}

// Routes returns the route group definition for draft endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/drafts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{kind}", Handler: h.Get},
			{Method: "GET", Pattern: "/{kind}/status", Handler: h.Status},
			{Method: "PUT", Pattern: "", Handler: h.Save},
			{Method: "DELETE", Pattern: "/{kind}", Handler: h.Delete},
		},
	}
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (string, intake.FormKind, bool) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return "", "", false
	}

	kind, err := intake.ParseKind(r.PathValue("kind"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return "", "", false
	}

	return owner, kind, true
}

// Get returns the caller's draft for the form kind path parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	owner, kind, ok := h.resolve(w, r)
	if !ok {
		return
	}

	d, err := h.sys.Get(r.Context(), owner, kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, d)
}

// Status reports whether the caller holds a draft for the form kind path parameter.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	owner, kind, ok := h.resolve(w, r)
	if !ok {
		return
	}

	exists, err := h.sys.Has(r.Context(), owner, kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// Save upserts the caller's draft by decoding a SaveCommand JSON body.
// Commands with no content are accepted but not persisted, returning 204.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return
	}

	var cmd SaveCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	id, err := h.sys.Save(r.Context(), owner, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if id == uuid.Nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]uuid.UUID{"id": id})
}

// Delete removes the caller's draft for the form kind path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, kind, ok := h.resolve(w, r)
	if !ok {
		return
	}

	deleted, err := h.sys.Delete(r.Context(), owner, kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if !deleted {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
