package console

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessira/dlog/core"
)

func captureBackend(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetBackend(NewBackend(&buf))
	t.Cleanup(func() {
		SetBackend(prev)
		resetTable()
	})
	return &buf
}

func TestBackendWrite(t *testing.T) {
	buf := captureBackend(t)

	Output(core.LevelLog)("hello", 42)
	assert.Equal(t, "hello 42\n", buf.String())
}

func TestBackendGroups(t *testing.T) {
	buf := captureBackend(t)
	b := Default()

	b.Group("outer")
	b.Write(core.LevelLog, "one")
	b.GroupCollapsed("inner")
	b.Write(core.LevelLog, "two")
	b.GroupEnd()
	b.GroupEnd()
	b.Write(core.LevelLog, "three")

	want := "outer\n  one\n  inner\n    two\nthree\n"
	assert.Equal(t, want, buf.String())
}

func TestBackendTimers(t *testing.T) {
	buf := captureBackend(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b := Default().WithClock(core.FixedClock(start))

	b.Time("load")
	b.WithClock(core.FixedClock(start.Add(150 * time.Millisecond)))
	b.TimeEnd("load")
	assert.Equal(t, "load: 150ms\n", buf.String())

	buf.Reset()
	b.TimeEnd("missing")
	assert.Contains(t, buf.String(), "timer missing does not exist")
}

func TestBackendTrace(t *testing.T) {
	buf := captureBackend(t)

	Default().Trace("here")
	out := buf.String()
	assert.Contains(t, out, "trace: here")
	assert.Contains(t, out, "TestBackendTrace")
}

func TestOutputFallback(t *testing.T) {
	buf := captureBackend(t)

	// No bindings: every level reaches the backend.
	Output(core.LevelDebug)("via backend")
	assert.Contains(t, buf.String(), "via backend")
	buf.Reset()

	// A generic log binding catches unbound levels.
	var caught []string
	restore := OverrideConsoleLog(func(args ...any) {
		caught = append(caught, args[0].(string))
	})
	defer restore()

	Output(core.LevelDebug)("routed")
	assert.Equal(t, []string{"routed"}, caught)
	assert.Empty(t, buf.String())
}

func TestSetOutputFunction(t *testing.T) {
	captureBackend(t)

	var lines []string
	SetOutputFunction(func(args ...any) {
		lines = append(lines, args[0].(string))
	})

	for _, level := range loggableLevels {
		Output(level)("at " + level.String())
	}
	assert.Len(t, lines, 5)

	orig := Originals()
	require.NotNil(t, orig)
	assert.Len(t, orig, 5)
	require.NotNil(t, StdlogOriginal())

	// Unrelated stdlib logging routes through the function too.
	log.Print("stray line")
	assert.Equal(t, "stray line", lines[len(lines)-1])
}

func TestOverrideConsoleLog(t *testing.T) {
	buf := captureBackend(t)

	var seen []string
	restore := OverrideConsoleLog(func(args ...any) {
		seen = append(seen, args[0].(string))
		// Calling through must reach the pre-override channel, not
		// re-enter the interceptor.
		Output(core.LevelLog)("passthrough " + args[0].(string))
	})

	Output(core.LevelLog)("first")
	require.Equal(t, []string{"first"}, seen)
	assert.Contains(t, buf.String(), "passthrough first")
	assert.Equal(t, 1, strings.Count(buf.String(), "passthrough"))

	// After fn returns the interceptor is active again.
	Output(core.LevelLog)("second")
	assert.Equal(t, []string{"first", "second"}, seen)

	restore()
	buf.Reset()
	Output(core.LevelLog)("third")
	assert.Equal(t, []string{"first", "second"}, seen)
	assert.Contains(t, buf.String(), "third")

	// Restoring twice is harmless.
	restore()
}

func TestRenderError(t *testing.T) {
	buf := captureBackend(t)

	// RenderError bypasses output-function overrides.
	SetOutputFunction(func(args ...any) {})
	RenderError("boom")
	assert.Contains(t, buf.String(), "render error: boom")
}
