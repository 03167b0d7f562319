package logger

import (
	"time"

	"github.com/google/uuid"

	"github.com/tessira/dlog/core"
)

// AsyncToken correlates the start and end of a traced asynchronous
// call. Tokens are compared by identity, not by ID.
type AsyncToken struct {
	ID    uuid.UUID
	Data  any
	Start time.Time
}

// TraceAsyncCall begins tracking an asynchronous call. It returns nil
// unless the logger is enabled and its effective level admits trace;
// a nil token tells the caller that tracing is inactive and nothing
// needs to be tracked.
func (l *Logger) TraceAsyncCall(data any) *AsyncToken {
	if !l.HasLevel(core.LevelTrace) {
		return nil
	}
	tok := &AsyncToken{
		ID:    uuid.New(),
		Data:  data,
		Start: currentConfig().Clock().Now(),
	}
	l.mu.Lock()
	l.pending = append(l.pending, tok)
	l.mu.Unlock()

	l.LogLeveled(core.LevelTrace, "async call begin:", data)
	return tok
}

// TraceAsyncCallEnd completes a traced asynchronous call. A nil token
// is ignored. The pending list is scanned from the end and the first
// identity match is removed; an unknown or already-removed token is a
// silent no-op.
func (l *Logger) TraceAsyncCallEnd(tok *AsyncToken) {
	if tok == nil {
		return
	}
	l.mu.Lock()
	found := false
	for i := len(l.pending) - 1; i >= 0; i-- {
		if l.pending[i] == tok {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			found = true
			break
		}
	}
	l.mu.Unlock()
	if !found {
		return
	}

	elapsed := currentConfig().Clock().Now().Sub(tok.Start)
	l.LogLeveled(core.LevelTrace, "async call end:", tok.Data, elapsed)
}

// PendingAsyncCalls returns the tokens awaiting completion, oldest
// first. The slice is a copy.
func (l *Logger) PendingAsyncCalls() []*AsyncToken {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*AsyncToken, len(l.pending))
	copy(out, l.pending)
	return out
}
