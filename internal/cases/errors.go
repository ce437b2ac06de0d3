package cases

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pathlight-health/casebook/internal/intake"
)

// Domain errors for case operations.
var (
	ErrNotFound  = errors.New("case not found")
	ErrDuplicate = errors.New("case already exists")
)

// ValidationError reports every required field missing from a finalize
// command so callers can surface the complete list at once.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// MapHTTPStatus maps case domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
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
