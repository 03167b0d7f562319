package core

import (
	"strconv"
	"strings"
)

// Level represents the severity level of a log call or threshold.
// Levels are ranked 1..7; higher rank means more verbose output.
type Level int8

const (
	// LevelNone is the zero value for unknown level names. It never
	// passes a threshold check in either position.
	LevelNone Level = iota
	// LevelOff suppresses all output when used as a threshold
	LevelOff
	// LevelLog is the generic log channel and the least verbose
	// loggable level
	LevelLog
	// LevelError for error messages
	LevelError
	// LevelWarn for warning messages
	LevelWarn
	// LevelInfo for informational messages
	LevelInfo
	// LevelDebug for debugging messages
	LevelDebug
	// LevelTrace for the most verbose output, including stack traces
	// and async call tracking
	LevelTrace
)

// levelNames contains pre-allocated string representations indexed by rank
var levelNames = [...]string{"", "off", "log", "error", "warn", "info", "debug", "trace"}

// String returns the name of the level, or "" for an unknown rank.
func (l Level) String() string {
	if l > LevelNone && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return ""
}

// Valid reports whether l is a defined rank.
func (l Level) Valid() bool {
	return l >= LevelOff && l <= LevelTrace
}

// ParseLevel converts a level name or a decimal rank to a Level.
// Unknown names and out-of-range ranks yield LevelNone, which filters
// out everything rather than raising an error.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LevelOff
	case "log":
		return LevelLog
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if l := Level(n); l.Valid() {
			return l
		}
	}
	return LevelNone
}

// Allows reports whether a threshold admits a call at the given level.
// LevelNone on either side compares false, so unknown levels degrade
// to silence.
func Allows(threshold, level Level) bool {
	return level != LevelNone && threshold >= level
}
