// Package clock lets timer-driven code run against real time in production
// and against a manually advanced clock in tests.
package clock

import "time"

// Clock is the subset of the time package used by selectkit.
type Clock interface {
	Now() time.Time

	// AfterFunc calls f once d has elapsed. The returned Timer cancels
	// a call that has not happened yet.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stop func() bool
}

// Stop cancels the call. It reports false if the call already ran or
// was stopped before.
func (t *Timer) Stop() bool { return t.stop() }

// Real returns a Clock backed by the time package. AfterFunc callbacks
// run on their own goroutine.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	t := time.AfterFunc(d, f)
	return &Timer{stop: t.Stop}
}
