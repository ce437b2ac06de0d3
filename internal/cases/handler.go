package cases

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pathlight-health/casebook/internal/intake"
	"github.com/pathlight-health/casebook/pkg/handlers"
	"github.com/pathlight-health/casebook/pkg/middleware"
	"github.com/pathlight-health/casebook/pkg/pagination"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// Handler provides HTTP endpoints for case operations.
type Handler struct {
	sys    System
	paging pagination.Config
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "cases"),
	}
}

// WithPagination sets the pagination bounds applied to the paged listing.
func (h *Handler) WithPagination(cfg pagination.Config) *Handler {
	h.paging = cfg
	return h
}

// Routes returns the route group definition for case endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/cases",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/all", Handler: h.ListAll},
			{Method: "GET", Pattern: "/page", Handler: h.Page},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Finalize},
		},
	}
}

func kindFromQuery(r *http.Request) (*intake.FormKind, error) {
	raw := r.URL.Query().Get("kind")
	if raw == "" {
		return nil, nil
	}
	kind, err := intake.ParseKind(raw)
	if err != nil {
		return nil, err
	}
	return &kind, nil
}

// List returns the caller's cases oldest first with per-form-kind display
// numbers. An optional kind query parameter filters by form kind.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return
	}

	kind, err := kindFromQuery(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	items, err := h.sys.List(r.Context(), &owner, kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Numbered(items))
}

// ListAll returns every case oldest first, for cross-navigator review.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromQuery(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	items, err := h.sys.List(r.Context(), nil, kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Numbered(items))
}

// Page returns a paged view of every case, with optional search and sort
// query parameters.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	req := pagination.PageRequestFromQuery(r.URL.Query(), h.paging)

	result, err := h.sys.Page(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single case by its case ID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	c, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}

// Finalize validates and records the caller's completed form as a case by
// decoding a FinalizeCommand JSON body. Returns 201 with the new case.
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return
	}

	var cmd FinalizeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, err := h.sys.Finalize(r.Context(), owner, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, c)
}
