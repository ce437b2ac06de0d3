package audio

import (
	"errors"
	"net/http"
)

// Domain errors for audio operations.
var (
	ErrNotFound  = errors.New("recording not found")
	ErrDuplicate = errors.New("recording already exists")
	ErrNoBody    = errors.New("recording body is required")
)

// MapHTTPStatus maps audio domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNoBody) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
