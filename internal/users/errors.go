package users

import (
	"errors"
	"net/http"
)

// Domain errors for user operations.
var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicate      = errors.New("user already exists")
	ErrNameRequired   = errors.New("name is required")
	ErrInvalidPIN     = errors.New("pin must be exactly 4 digits")
	ErrBadCredentials = errors.New("invalid name or pin")
)

// MapHTTPStatus maps user domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrInvalidPIN) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrBadCredentials) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
