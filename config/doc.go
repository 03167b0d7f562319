// Package config holds the process-wide logging configuration: the
// global level, the set of logger names enabled by default, per-name
// level overrides, and the timestamp-prefix flag.
//
// A Settings value is assembled once at startup by Load, merging
// deploy-time environment variables with the ambient query string in
// a fixed precedence order. The package-level Current/Replace pair is
// the only singleton; tests swap in their own Settings and restore
// the previous one.
package config
