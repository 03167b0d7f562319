//go:build !dlog_prod

package logger

// debugBuild is true in development builds. Production deployments
// build with -tags dlog_prod, which compiles the Log, Error, Warn,
// Info and Debug wrappers down to no-ops.
const debugBuild = true
