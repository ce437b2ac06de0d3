package audio

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pathlight-health/casebook/pkg/handlers"
	"github.com/pathlight-health/casebook/pkg/middleware"
	"github.com/pathlight-health/casebook/pkg/routes"
)

// Handler provides HTTP endpoints for voice-answer operations.
type Handler struct {
	sys       System
	logger    *slog.Logger
	maxUpload int64
}

// NewHandler creates a Handler with the given system and logger. maxUpload
// caps the accepted request body size in bytes; zero disables the cap.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "audio"),
	}
}

// WithMaxUpload sets the request body cap in bytes.
func (h *Handler) WithMaxUpload(limit int64) *Handler {
	h.maxUpload = limit
	return h
}

// Routes returns the route group definition for audio endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/audio",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/case/{caseId}/{questionId}", Handler: h.Save},
			{Method: "POST", Pattern: "/case/{caseId}", Handler: h.SaveBatch},
			{Method: "GET", Pattern: "/case/{caseId}", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Download},
		},
	}
}

// Save streams the request body into blob storage as a recording for the
// case and question path parameters.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return
	}

	body := r.Body
	if h.maxUpload > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}

	up := Upload{
		QuestionID:  r.PathValue("questionId"),
		ContentType: r.Header.Get("Content-Type"),
		Size:        r.ContentLength,
		Body:        body,
	}
	if t := r.URL.Query().Get("transcript"); t != "" {
		up.Transcript = &t
	}

	rec, err := h.sys.Save(r.Context(), owner, r.PathValue("caseId"), up)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, rec)
}

// batchFormMemory bounds how much of a multipart batch is held in memory
// before spilling to temp files.
const batchFormMemory = 8 << 20

// SaveBatch accepts a multipart form with one file part per question, the
// part name being the question ID. An optional transcript_<questionId>
// value field attaches a transcript to that question's recording. Uploads
// run concurrently; the first failure cancels the rest.
func (h *Handler) SaveBatch(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Owner(r)
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrNotFound)
		return
	}

	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}

	if err := r.ParseMultipartForm(batchFormMemory); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var ups []Upload
	for questionID, files := range r.MultipartForm.File {
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
				return
			}
			defer f.Close()

			up := Upload{
				QuestionID:  questionID,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
				Body:        f,
			}
			if t := r.FormValue("transcript_" + questionID); t != "" {
				up.Transcript = &t
			}
			ups = append(ups, up)
		}
	}

	recs, err := h.sys.SaveBatch(r.Context(), owner, r.PathValue("caseId"), ups)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, recs)
}

// List returns a case's recordings ordered by question ID.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.List(r.Context(), r.PathValue("caseId"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}

// Download streams a recording's audio content.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	result, err := h.sys.Download(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer result.Body.Close()

	if result.ContentType != "" {
		w.Header().Set("Content-Type", result.ContentType)
	}
	if result.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(result.ContentLength, 10))
	}

	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, result.Body); err != nil {
		h.logger.Error("stream recording", "id", id, "error", err)
	}
}
