// Package clock abstracts the time source so that time-based code can be
// tested deterministically. Production code depends on the Clock interface
// instead of calling time.Now directly and swaps in a Mock in tests.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the production clock backed by time.Now.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock(t) }

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }

// Mock is a settable clock for tests. The zero value reports the zero time;
// use Set or Advance to move it.
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMock returns a Mock starting at t.
func NewMock(t time.Time) *Mock {
	return &Mock{now: t}
}

// Now returns the mock's current time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the mock to t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the mock forward by d and returns the new time.
func (m *Mock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}
