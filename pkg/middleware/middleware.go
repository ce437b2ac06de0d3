// Package middleware holds the HTTP middleware stack and the standard
// wrappers the service mounts on its modules: CORS, request logging,
// and bearer-token auth.
package middleware

import "net/http"

// System is an ordered middleware stack. Use appends; Apply wraps a
// handler so the first-registered middleware runs outermost.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type mw struct {
	stack []func(http.Handler) http.Handler
}

// New returns an empty stack.
func New() System {
	return &mw{
		stack: []func(http.Handler) http.Handler{},
	}
}

func (m *mw) Use(fn func(http.Handler) http.Handler) {
	m.stack = append(m.stack, fn)
}

func (m *mw) Apply(handler http.Handler) http.Handler {
	// Wrap in reverse so registration order matches execution order.
	for i := len(m.stack) - 1; i >= 0; i-- {
		handler = m.stack[i](handler)
	}
	return handler
}
