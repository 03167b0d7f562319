// Package console owns the output side of dlog: the process-wide
// table of level-bound output functions and the default backend that
// writes colored lines to a stream.
//
// Hosts that want to capture everything call SetOutputFunction once;
// hosts that only need to intercept the generic log channel use
// OverrideConsoleLog, which returns a restore closure. The grouping
// and timing facilities always go to the backend and are not affected
// by output-function overrides.
package console
