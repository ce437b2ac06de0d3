// Package module groups routes under a single-level path prefix with a
// per-module middleware stack, and dispatches between modules through a
// Router.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pathlight-health/casebook/pkg/middleware"
)

// Module owns everything below one prefix: an inner router and the
// middleware applied to every request that reaches it.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
}

// New builds a Module for a single-level prefix such as "/api".
// An invalid prefix is a programming error and panics.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// Handler wraps the inner router in the module's middleware stack.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Serve dispatches into the module with the prefix stripped, so inner
// routes register prefix-relative patterns.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := extractPath(req.URL.Path, m.prefix)
	request := cloneRequest(req, path)
	m.Handler().ServeHTTP(w, request)
}

// Use appends middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// The request is shallow-copied with a fresh URL; handlers must not see
// the original mutated.
func cloneRequest(req *http.Request, path string) *http.Request {
	request := new(http.Request)
	*request = *req
	request.URL = new(url.URL)
	*request.URL = *req.URL
	request.URL.Path = path
	request.URL.RawPath = ""
	return request
}

func extractPath(fullPath, prefix string) string {
	path := fullPath[len(prefix):]
	if path == "" {
		return "/"
	}
	return path
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
