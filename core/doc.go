// Package core defines the shared vocabulary used across the dlog module.
//
// It provides the Level type with its fixed severity ordering, the
// Runtime probe that classifies the execution environment once at
// startup, the Scope handle bundling the resolved runtime with the
// ambient query string and clock, and the Clock interface that makes
// timestamps injectable in tests.
//
// The level ordering is intentionally unusual: log ranks below error,
// warn, info, debug and trace, so a threshold of log admits only log
// calls. Changing the order would change observable filtering, so it
// is pinned by tests and must not be "fixed".
package core
