package zapout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tessira/dlog/core"
)

func observed(t *testing.T) (*zap.SugaredLogger, *observer.ObservedLogs) {
	t.Helper()
	zc, logs := observer.New(zapcore.DebugLevel)
	return zap.New(zc).Sugar(), logs
}

func TestLeveled(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.LevelLog, zapcore.InfoLevel},
		{core.LevelError, zapcore.ErrorLevel},
		{core.LevelWarn, zapcore.WarnLevel},
		{core.LevelInfo, zapcore.InfoLevel},
		{core.LevelDebug, zapcore.DebugLevel},
		{core.LevelTrace, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			s, logs := observed(t)
			Leveled(s, tt.level)("message")

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].Level)
			assert.Equal(t, "message", entries[0].Message)
		})
	}
}

func TestNew(t *testing.T) {
	s, logs := observed(t)
	New(s)("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}
