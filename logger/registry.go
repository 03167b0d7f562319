package logger

import (
	"sync"

	"github.com/tessira/dlog/config"
	"github.com/tessira/dlog/core"
)

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Logger)
)

// Option configures logger creation.
type Option func(*options)

type options struct {
	level core.Level
}

// WithLevel sets the default level a logger is created with. It only
// applies on first creation; later Get calls return the existing
// instance untouched.
func WithLevel(level core.Level) Option {
	return func(o *options) { o.level = level }
}

// Get returns the logger for name, creating it on first use. Creation
// is idempotent: every caller observes the same instance for a name.
// A new logger starts enabled when the configuration's enabled-set
// names it, and picks up any per-name level override.
func Get(name string, opts ...Option) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()
	if l, ok := registry[name]; ok {
		return l
	}

	o := options{level: core.LevelLog}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := currentConfig()
	l := &Logger{
		name:         name,
		enabled:      cfg.DefaultEnabled(name),
		defaultLevel: o.level,
	}
	if override, ok := cfg.Override(name); ok {
		l.override = override
		l.hasOverride = true
	}
	registry[name] = l
	return l
}

// Create is an alias for Get.
func Create(name string, opts ...Option) *Logger { return Get(name, opts...) }

// GetLogger is an alias for Get.
func GetLogger(name string, opts ...Option) *Logger { return Get(name, opts...) }

// Registry returns a snapshot of every registered logger by name.
// Debugging escape hatch.
func Registry() map[string]*Logger {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make(map[string]*Logger, len(registry))
	for name, l := range registry {
		out[name] = l
	}
	return out
}

// SetLevel replaces the global level applied to loggers without an
// override.
func SetLevel(level core.Level) {
	currentConfig().SetGlobalLevel(level)
}

// GetLevel returns the global level.
func GetLevel() core.Level {
	return currentConfig().GlobalLevel()
}

// currentConfig returns the process-wide settings.
func currentConfig() *config.Settings {
	return config.Current()
}

// resetRegistry drops every registered logger. Test hook.
func resetRegistry() {
	registryMu.Lock()
	registry = make(map[string]*Logger)
	registryMu.Unlock()
}
