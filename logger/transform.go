package logger

import (
	"fmt"
	"strings"
	"time"
)

// Displayable marks argument values that render themselves for
// output. Arguments implementing it are replaced by their rendered
// text during transformation instead of being passed through raw.
type Displayable interface {
	Render() string
}

// isoFormat matches JavaScript's Date.toISOString: millisecond
// precision, always UTC.
const isoFormat = "2006-01-02T15:04:05.000Z"

// transform applies the timestamp prefix and Displayable conversion.
// When timestamp prefixing is disabled, args pass through unmodified.
func (l *Logger) transform(args []any) []any {
	cfg := currentConfig()
	if !cfg.Timestamp() {
		return args
	}

	out := make([]any, len(args))
	for i, a := range args {
		if d, ok := a.(Displayable); ok {
			out[i] = d.Render()
		} else {
			out[i] = a
		}
	}

	prefix := l.prefix(cfg.Clock().Now())
	if len(out) == 0 {
		return []any{prefix}
	}
	out[0] = prefix + fmt.Sprint(out[0])
	return out
}

// prefix builds "<ISO-8601> [<name>]" followed by two spaces per
// indentation level; a single space separates it from the first
// argument when there is no indentation.
func (l *Logger) prefix(now time.Time) string {
	var b strings.Builder
	b.WriteString(now.UTC().Format(isoFormat))
	if l.name != "" {
		b.WriteString(" [")
		b.WriteString(l.name)
		b.WriteString("]")
	}

	l.mu.Lock()
	indent := l.indent
	l.mu.Unlock()
	if indent <= 0 {
		b.WriteString(" ")
	} else {
		b.WriteString(strings.Repeat("  ", indent))
	}
	return b.String()
}
