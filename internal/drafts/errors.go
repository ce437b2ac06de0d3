package drafts

import (
	"errors"
	"net/http"

	"github.com/pathlight-health/casebook/internal/intake"
)

// Domain errors for draft operations.
var (
	ErrNotFound  = errors.New("draft not found")
	ErrDuplicate = errors.New("draft already exists")
)

// MapHTTPStatus maps draft domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, intake.ErrInvalidKind) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
