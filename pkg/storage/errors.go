package storage

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound means no blob exists under the requested key.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey rejects operations with no key at all.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey rejects keys carrying "." or ".." segments.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
)

// MapHTTPStatus translates storage sentinels for handlers that stream
// blobs directly.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrInvalidKey) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
