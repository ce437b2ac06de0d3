package generator

import (
	"errors"
	"net/http"
)

// ErrNoQuestions indicates the model reply contained no parseable questions.
var ErrNoQuestions = errors.New("no follow-up questions parsed from model reply")

// MapHTTPStatus maps generation errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoQuestions) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
