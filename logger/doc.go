// Package logger is the public API of dlog. Most users only need to
// import this package.
//
// Loggers are named and live in a process-wide registry; Get returns
// the one instance for a name, creating it on first use:
//
//	log := logger.Get("render")
//	log.Debug("painting", frame)
//
// Whether a logger starts enabled, and at which level, comes from the
// process configuration: the DLOG_* environment variables and the
// ambient query string (see the config package). At runtime any
// caller may Enable, Disable or SetLogLevel a logger; the state is
// shared process-wide.
//
// The convenience methods Log, Error, Warn, Info and Debug compile to
// no-ops in builds tagged dlog_prod; LogLeveled and the tracing,
// grouping and timing facilities stay available in every build. Error
// additionally reports a render diagnostic on server runtimes
// regardless of the build tag.
//
// Output goes through the console package, so hosts can redirect all
// of it with console.SetOutputFunction or tap the generic channel
// with console.OverrideConsoleLog.
package logger
