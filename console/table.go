package console

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/tessira/dlog/core"
)

// Func is an output function. Each call receives the already
// transformed argument list of one logging call.
type Func func(args ...any)

var (
	tableMu sync.Mutex

	// outputs holds explicit level bindings. A level without a
	// binding falls back to the generic log binding, then to the
	// backend.
	outputs = make(map[core.Level]Func)

	// originals snapshots the effective functions before the first
	// SetOutputFunction call. Kept for inspection; there is no
	// built-in restore.
	originals map[core.Level]Func

	backend = NewBackend(os.Stderr)

	stdlogPrev  io.Writer
	stdlogFlags int
)

// loggableLevels are the levels with a bound output channel.
var loggableLevels = []core.Level{core.LevelLog, core.LevelError, core.LevelWarn, core.LevelInfo, core.LevelDebug}

// Default returns the current backend.
func Default() *Backend {
	tableMu.Lock()
	defer tableMu.Unlock()
	return backend
}

// SetBackend replaces the backend and returns the previous one. Used
// by hosts that log to a different stream, and by tests to capture
// output.
func SetBackend(b *Backend) *Backend {
	tableMu.Lock()
	defer tableMu.Unlock()
	prev := backend
	backend = b
	return prev
}

// Output returns the effective output function for level: the
// explicit binding if present, else the generic log binding, else
// the backend.
func Output(level core.Level) Func {
	tableMu.Lock()
	defer tableMu.Unlock()
	return outputLocked(level)
}

func outputLocked(level core.Level) Func {
	if f := outputs[level]; f != nil {
		return f
	}
	if f := outputs[core.LevelLog]; f != nil {
		return f
	}
	return backend.Func(level)
}

// SetOutputFunction binds fn to every loggable level and reroutes the
// standard library's default log output through fn as well, so
// unrelated code paths end up in the same sink. The first call
// preserves the prior effective functions (see Originals); there is
// no built-in restore.
func SetOutputFunction(fn Func) {
	tableMu.Lock()
	defer tableMu.Unlock()
	if originals == nil {
		originals = make(map[core.Level]Func, len(loggableLevels))
		for _, l := range loggableLevels {
			originals[l] = outputLocked(l)
		}
		stdlogPrev = log.Writer()
		stdlogFlags = log.Flags()
	}
	for _, l := range loggableLevels {
		outputs[l] = fn
	}
	log.SetOutput(funcWriter{fn})
	log.SetFlags(0)
}

// resetTable drops every binding and reinstates the stdlib log
// writer. Test hook.
func resetTable() {
	tableMu.Lock()
	defer tableMu.Unlock()
	outputs = make(map[core.Level]Func)
	if originals != nil {
		log.SetOutput(stdlogPrev)
		log.SetFlags(stdlogFlags)
	}
	originals = nil
	stdlogPrev = nil
}

// StdlogOriginal returns the standard library log writer that was in
// place before the first SetOutputFunction call, or nil.
func StdlogOriginal() io.Writer {
	tableMu.Lock()
	defer tableMu.Unlock()
	return stdlogPrev
}

// Originals returns the output functions that were effective before
// the first SetOutputFunction call, or nil if it was never called.
func Originals() map[core.Level]Func {
	tableMu.Lock()
	defer tableMu.Unlock()
	if originals == nil {
		return nil
	}
	out := make(map[core.Level]Func, len(originals))
	for l, f := range originals {
		out[l] = f
	}
	return out
}

// OverrideConsoleLog overrides only the generic log channel with fn.
// While fn runs, the channel is restored to its pre-override state,
// so fn can log through Output without intercepting itself. The
// returned closure restores the original binding and is the only way
// to undo the override.
func OverrideConsoleLog(fn Func) func() {
	tableMu.Lock()
	prev, hadPrev := outputs[core.LevelLog]

	var wrapped Func
	wrapped = func(args ...any) {
		tableMu.Lock()
		setLogBinding(prev, hadPrev)
		tableMu.Unlock()

		fn(args...)

		tableMu.Lock()
		outputs[core.LevelLog] = wrapped
		tableMu.Unlock()
	}
	outputs[core.LevelLog] = wrapped
	tableMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			tableMu.Lock()
			setLogBinding(prev, hadPrev)
			tableMu.Unlock()
		})
	}
}

// setLogBinding reinstates a previous generic-log binding. Callers
// hold tableMu.
func setLogBinding(prev Func, hadPrev bool) {
	if hadPrev {
		outputs[core.LevelLog] = prev
	} else {
		delete(outputs, core.LevelLog)
	}
}

// RenderError emits a server-side render diagnostic through the
// backend's error channel, bypassing output-function overrides.
func RenderError(args ...any) {
	tableMu.Lock()
	b := backend
	tableMu.Unlock()
	b.Write(core.LevelError, append([]any{"render error:"}, args...)...)
}

// funcWriter adapts a Func to io.Writer for the stdlib log package.
type funcWriter struct{ fn Func }

func (w funcWriter) Write(p []byte) (int, error) {
	w.fn(string(trimNewline(p)))
	return len(p), nil
}

func trimNewline(p []byte) []byte {
	if n := len(p); n > 0 && p[n-1] == '\n' {
		return p[:n-1]
	}
	return p
}
