package logger

import (
	"sync"

	"github.com/tessira/dlog/console"
	"github.com/tessira/dlog/core"
)

// Logger is the per-name unit of enablement, level threshold and
// output dispatch. Instances are created by Get and shared
// process-wide; all methods are safe for concurrent use.
type Logger struct {
	name string

	mu           sync.Mutex
	enabled      bool
	defaultLevel core.Level
	override     core.Level
	hasOverride  bool
	indent       int
	pending      []*AsyncToken
}

// Name returns the logger's immutable name. The empty string is the
// unnamed default logger.
func (l *Logger) Name() string { return l.name }

// Enable turns the logger on. An optional level argument also sets
// the per-logger override level.
func (l *Logger) Enable(level ...core.Level) {
	l.mu.Lock()
	l.enabled = true
	if len(level) > 0 {
		l.override = level[0]
		l.hasOverride = true
	}
	l.mu.Unlock()
}

// Disable turns the logger off. Level configuration is retained, so a
// later Enable restores the previous threshold.
func (l *Logger) Disable() {
	l.mu.Lock()
	l.enabled = false
	l.mu.Unlock()
}

// IsEnabled reports whether the logger is on.
func (l *Logger) IsEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// SetLogLevel sets the per-logger override level, bypassing the
// global level for this logger from now on.
func (l *Logger) SetLogLevel(level core.Level) {
	l.mu.Lock()
	l.override = level
	l.hasOverride = true
	l.mu.Unlock()
}

// DefaultLevel returns the level the logger was created with.
func (l *Logger) DefaultLevel() core.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.defaultLevel
}

// effectiveLevel is the override when set, else the global level. An
// override parsed from an unknown level name is LevelNone and
// silences the logger rather than falling back to the global level.
func (l *Logger) effectiveLevel() core.Level {
	l.mu.Lock()
	override, has := l.override, l.hasOverride
	l.mu.Unlock()
	if has {
		return override
	}
	return currentConfig().GlobalLevel()
}

// HasLevel reports whether a call at the given level would be
// emitted: the logger is enabled and its effective level is at least
// as verbose as level.
func (l *Logger) HasLevel(level core.Level) bool {
	return l.IsEnabled() && core.Allows(l.effectiveLevel(), level)
}

// LogLeveled emits args at the given level. No-op unless HasLevel
// admits the call. The output function is selected by level, falling
// back to the generic log channel, then to the backend.
func (l *Logger) LogLeveled(level core.Level, args ...any) {
	if !l.HasLevel(level) {
		return
	}
	console.Output(level)(l.transform(args)...)
}

// Log emits at the generic log level. Suppressed in dlog_prod builds.
func (l *Logger) Log(args ...any) {
	if !debugBuild {
		return
	}
	l.LogLeveled(core.LevelLog, args...)
}

// Error emits at the error level. Suppressed in dlog_prod builds,
// except that on server runtimes a render-error diagnostic is always
// reported.
func (l *Logger) Error(args ...any) {
	if l.IsEnabled() && currentConfig().Scope().Runtime == core.RuntimeServer {
		console.RenderError(l.transform(args)...)
	}
	if !debugBuild {
		return
	}
	l.LogLeveled(core.LevelError, args...)
}

// Warn emits at the warn level. Suppressed in dlog_prod builds.
func (l *Logger) Warn(args ...any) {
	if !debugBuild {
		return
	}
	l.LogLeveled(core.LevelWarn, args...)
}

// Info emits at the info level. Suppressed in dlog_prod builds.
func (l *Logger) Info(args ...any) {
	if !debugBuild {
		return
	}
	l.LogLeveled(core.LevelInfo, args...)
}

// Debug emits at the debug level. Suppressed in dlog_prod builds.
func (l *Logger) Debug(args ...any) {
	if !debugBuild {
		return
	}
	l.LogLeveled(core.LevelDebug, args...)
}

// Trace prints args with a stack trace. Gated by enablement and the
// global level, not the per-logger override.
func (l *Logger) Trace(args ...any) {
	if !l.IsEnabled() {
		return
	}
	if !core.Allows(currentConfig().GlobalLevel(), core.LevelTrace) {
		return
	}
	console.Default().Trace(args...)
}

// BeginBlock increases the indentation applied to timestamp prefixes.
func (l *Logger) BeginBlock() {
	l.mu.Lock()
	l.indent++
	l.mu.Unlock()
}

// EndBlock decreases the indentation. Pairing is the caller's
// responsibility; the count may go negative and renders as zero.
func (l *Logger) EndBlock() {
	l.mu.Lock()
	l.indent--
	l.mu.Unlock()
}

// Group opens a console group. Gated by enablement only.
func (l *Logger) Group(args ...any) {
	if !l.IsEnabled() {
		return
	}
	console.Default().Group(args...)
}

// GroupCollapsed opens a collapsed console group. Gated by enablement
// only.
func (l *Logger) GroupCollapsed(args ...any) {
	if !l.IsEnabled() {
		return
	}
	console.Default().GroupCollapsed(args...)
}

// GroupEnd closes the innermost console group. Gated by enablement
// only.
func (l *Logger) GroupEnd() {
	if !l.IsEnabled() {
		return
	}
	console.Default().GroupEnd()
}

// Time starts a named console timer. Gated by enablement only.
func (l *Logger) Time(name string) {
	if !l.IsEnabled() {
		return
	}
	console.Default().Time(name)
}

// TimeEnd stops a named console timer. Gated by enablement only.
func (l *Logger) TimeEnd(name string) {
	if !l.IsEnabled() {
		return
	}
	console.Default().TimeEnd(name)
}
