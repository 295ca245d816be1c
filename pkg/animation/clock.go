package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations. The default implementation uses
// system time; tests swap in a fake via SetClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = SystemClock{}
)

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it. A nil clock restores SystemClock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = SystemClock{}
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}
