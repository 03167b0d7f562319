package config

import (
	"sync"

	"github.com/tessira/dlog/core"
)

var (
	currentMu sync.RWMutex
	current   *Settings
)

// Current returns the process-wide Settings, loading them from the
// resolved scope on first use.
func Current() *Settings {
	currentMu.RLock()
	s := current
	currentMu.RUnlock()
	if s != nil {
		return s
	}

	currentMu.Lock()
	defer currentMu.Unlock()
	if current == nil {
		current = Load(core.ResolveScope())
	}
	return current
}

// Replace installs s as the process-wide Settings and returns the
// previous value. Passing nil forces the next Current call to reload
// from the environment. This is the test seam.
func Replace(s *Settings) *Settings {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	current = s
	return prev
}
