// Package routes declares handler route tables as data: groups of
// method/pattern pairs registered onto a ServeMux in one pass.
package routes

import "net/http"

// Route is one method + pattern bound to a handler. Patterns are
// group-relative.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
