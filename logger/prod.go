//go:build dlog_prod

package logger

// debugBuild is false in production builds; see devel.go.
const debugBuild = false
