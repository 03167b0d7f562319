package console

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/tessira/dlog/core"
)

// Backend writes log lines to a stream, one line per call, with a
// per-level color when the stream is a terminal. It also provides
// the grouping, timing and stack-trace facilities.
type Backend struct {
	mu     sync.Mutex
	w      io.Writer
	depth  int
	timers map[string]time.Time
	sprint map[core.Level]func(a ...interface{}) string
	clock  core.Clock
}

// NewBackend creates a Backend writing to w. Color is applied only
// when w is a character device.
func NewBackend(w io.Writer) *Backend {
	b := &Backend{
		w:      w,
		timers: make(map[string]time.Time),
		clock:  core.SystemClock,
	}
	b.sprint = map[core.Level]func(a ...interface{}) string{}
	if isTerminal(w) {
		b.sprint[core.LevelError] = color.New(color.FgRed).SprintFunc()
		b.sprint[core.LevelWarn] = color.New(color.FgYellow).SprintFunc()
		b.sprint[core.LevelInfo] = color.New(color.FgCyan).SprintFunc()
		b.sprint[core.LevelDebug] = color.New(color.FgMagenta).SprintFunc()
		b.sprint[core.LevelTrace] = color.New(color.FgHiBlack).SprintFunc()
	}
	return b
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// WithClock replaces the backend's clock. Test helper for the timing
// facility.
func (b *Backend) WithClock(c core.Clock) *Backend {
	b.mu.Lock()
	b.clock = c
	b.mu.Unlock()
	return b
}

// Func returns an output function bound to level.
func (b *Backend) Func(level core.Level) Func {
	return func(args ...any) { b.Write(level, args...) }
}

// Write emits one line at the given level.
func (b *Backend) Write(level core.Level, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeLine(level, args)
}

// writeLine renders args space-separated under the current group
// indentation. Callers hold b.mu.
func (b *Backend) writeLine(level core.Level, args []any) {
	line := strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	if s, ok := b.sprint[level]; ok {
		line = s(line)
	}
	fmt.Fprintln(b.w, b.indentation()+line)
}

func (b *Backend) indentation() string {
	if b.depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", b.depth)
}

// Group opens an indented group, printing args as its heading.
func (b *Backend) Group(args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(args) > 0 {
		b.writeLine(core.LevelLog, args)
	}
	b.depth++
}

// GroupCollapsed behaves like Group; a line stream has no collapsed
// rendering.
func (b *Backend) GroupCollapsed(args ...any) {
	b.Group(args...)
}

// GroupEnd closes the innermost group.
func (b *Backend) GroupEnd() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.depth--
}

// Time starts a named timer. Restarting an existing name resets it.
func (b *Backend) Time(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timers[name] = b.clock.Now()
}

// TimeEnd stops a named timer and prints its elapsed time. Unknown
// names print a diagnostic rather than failing.
func (b *Backend) TimeEnd(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	start, ok := b.timers[name]
	if !ok {
		b.writeLine(core.LevelWarn, []any{"timer", name, "does not exist"})
		return
	}
	delete(b.timers, name)
	b.writeLine(core.LevelLog, []any{name + ":", b.clock.Now().Sub(start)})
}

// Trace prints args followed by the calling goroutine's stack.
func (b *Backend) Trace(args ...any) {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeLine(core.LevelTrace, append([]any{"trace:"}, args...))
	for _, line := range strings.Split(strings.TrimRight(string(buf[:n]), "\n"), "\n") {
		b.writeLine(core.LevelTrace, []any{line})
	}
}
