package config

import (
	"strings"
	"sync"

	"github.com/tessira/dlog/core"
)

// Settings is the shared logging configuration. All accessors are
// safe for concurrent use; loggers on other goroutines must observe
// level and flag changes without tearing.
type Settings struct {
	mu        sync.RWMutex
	level     core.Level
	enabled   []string
	overrides map[string]core.Level
	timestamp bool
	scope     core.Scope
}

// New returns an empty Settings for the given scope: global level
// off, no loggers enabled, timestamp prefixing on.
func New(scope core.Scope) *Settings {
	return &Settings{
		level:     core.LevelOff,
		overrides: make(map[string]core.Level),
		timestamp: true,
		scope:     scope,
	}
}

// Scope returns the execution scope the settings were built for.
func (s *Settings) Scope() core.Scope { return s.scope }

// Clock returns the scope's clock.
func (s *Settings) Clock() core.Clock {
	if s.scope.Clock == nil {
		return core.SystemClock
	}
	return s.scope.Clock
}

// GlobalLevel returns the process-wide default threshold.
func (s *Settings) GlobalLevel() core.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

// SetGlobalLevel replaces the process-wide default threshold.
func (s *Settings) SetGlobalLevel(l core.Level) {
	s.mu.Lock()
	s.level = l
	s.mu.Unlock()
}

// Timestamp reports whether timestamp prefixing is on.
func (s *Settings) Timestamp() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timestamp
}

// SetTimestamp toggles timestamp prefixing.
func (s *Settings) SetTimestamp(on bool) {
	s.mu.Lock()
	s.timestamp = on
	s.mu.Unlock()
}

// DefaultEnabled reports whether name should start enabled. Consulted
// at logger creation time.
func (s *Settings) DefaultEnabled(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.enabled {
		if n == name {
			return true
		}
	}
	return false
}

// EnabledNames returns the enabled-set in order. The slice is a copy.
func (s *Settings) EnabledNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.enabled))
	copy(out, s.enabled)
	return out
}

// Override returns the per-name level override, if any.
func (s *Settings) Override(name string) (core.Level, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.overrides[name]
	return l, ok
}

// SetOverride records a per-name level override.
func (s *Settings) SetOverride(name string, l core.Level) {
	s.mu.Lock()
	s.overrides[name] = l
	s.mu.Unlock()
}

// ApplyDirectives folds a comma-separated directives string into the
// enabled-set and overrides. Each token is one of:
//
//	name        enable name
//	!name       remove name from the enabled-set
//	name=level  enable name with a level override
//
// Tokens mutate shared state in order, so "foo,!foo,foo" leaves foo
// enabled. A token with a trailing "=" and no value is treated as a
// bare name; directives are never rejected.
func (s *Settings) ApplyDirectives(directives string) {
	if directives == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tok := range strings.Split(directives, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if name, level, ok := strings.Cut(tok, "="); ok && level != "" {
			s.addEnabled(name)
			s.overrides[name] = core.ParseLevel(level)
			continue
		}
		tok = strings.TrimSuffix(tok, "=")
		if name, ok := strings.CutPrefix(tok, "!"); ok {
			s.removeEnabled(name)
			continue
		}
		s.addEnabled(tok)
	}
}

// addEnabled appends name unless present. Callers hold s.mu or own
// s exclusively (Load, before the Settings is published).
func (s *Settings) addEnabled(name string) {
	for _, n := range s.enabled {
		if n == name {
			return
		}
	}
	s.enabled = append(s.enabled, name)
}

// removeEnabled deletes every occurrence of name. Callers hold s.mu.
func (s *Settings) removeEnabled(name string) {
	kept := s.enabled[:0]
	for _, n := range s.enabled {
		if n != name {
			kept = append(kept, n)
		}
	}
	s.enabled = kept
}
