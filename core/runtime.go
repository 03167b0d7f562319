package core

// Runtime classifies the execution environment. It is resolved once
// at startup via build tags rather than probed ad hoc at call sites.
type Runtime uint8

const (
	// RuntimeServer is any non-browser build
	RuntimeServer Runtime = iota
	// RuntimeBrowser is a js/wasm build running in a page
	RuntimeBrowser
)

// String returns the runtime name.
func (r Runtime) String() string {
	switch r {
	case RuntimeServer:
		return "server"
	case RuntimeBrowser:
		return "browser"
	default:
		return "unknown"
	}
}

// Scope is the resolved execution environment: the runtime class, the
// ambient query string sources, and the clock. A Scope is built once
// by ResolveScope and threaded through configuration and loggers
// instead of re-detecting the environment everywhere.
type Scope struct {
	Runtime Runtime
	Clock   Clock

	top   func() (string, error)
	local func() string
}

// ResolveScope probes the environment once and returns the resulting
// Scope. The query sources are build-tag specific: the environment on
// server builds, window.location on browser builds.
func ResolveScope() Scope {
	return Scope{
		Runtime: detectRuntime(),
		Clock:   SystemClock,
		top:     topQuery,
		local:   localQuery,
	}
}

// NewScope builds a Scope with explicit parts. Test helper; the query
// string is fixed and never fails.
func NewScope(r Runtime, c Clock, query string) Scope {
	return Scope{
		Runtime: r,
		Clock:   c,
		top:     func() (string, error) { return query, nil },
		local:   func() string { return query },
	}
}

// Query returns the ambient query string. The top-level source is
// preferred; when it is inaccessible (cross-origin on browser builds)
// the local source is used instead. Never fails.
func (s Scope) Query() string {
	if s.top == nil {
		return ""
	}
	q, err := s.top()
	if err != nil {
		if s.local != nil {
			return s.local()
		}
		return ""
	}
	return q
}
