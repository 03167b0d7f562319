package core

import "time"

// Clock supplies timestamps for prefixes, timers and async trace
// tokens. Injectable so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used outside tests. time.Time values
// it returns carry Go's monotonic reading, so elapsed-time math is
// safe against wall clock adjustments.
var SystemClock Clock = systemClock{}

// FixedClock returns a Clock that always reports t. Test helper.
func FixedClock(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
