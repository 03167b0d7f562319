// Package zapout routes dlog console output into a zap logger, so
// hosts that already run a zap pipeline get dlog's diagnostics in the
// same sink:
//
//	console.SetOutputFunction(zapout.New(sugar))
package zapout

import (
	"go.uber.org/zap"

	"github.com/tessira/dlog/console"
	"github.com/tessira/dlog/core"
)

// New returns an output function that forwards every call to s at
// info, suitable for console.SetOutputFunction.
func New(s *zap.SugaredLogger) console.Func {
	return Leveled(s, core.LevelInfo)
}

// Leveled returns an output function bound to one zap level. The dlog
// log level maps to zap's info; error, warn and debug map to their
// zap counterparts; trace maps to debug, which is as verbose as zap
// goes.
func Leveled(s *zap.SugaredLogger, level core.Level) console.Func {
	switch level {
	case core.LevelError:
		return func(args ...any) { s.Error(args...) }
	case core.LevelWarn:
		return func(args ...any) { s.Warn(args...) }
	case core.LevelDebug, core.LevelTrace:
		return func(args ...any) { s.Debug(args...) }
	default:
		return func(args ...any) { s.Info(args...) }
	}
}
