package followups

import (
	"errors"
	"net/http"
)

// Domain errors for follow-up question operations.
var (
	ErrNotFound    = errors.New("follow-up question not found")
	ErrDuplicate   = errors.New("follow-up question already exists")
	ErrEmptyAnswer = errors.New("answer must not be empty")
)

// MapHTTPStatus maps follow-up domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrEmptyAnswer) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
