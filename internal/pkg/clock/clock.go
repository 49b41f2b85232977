package clock

import "time"

// Clock supplies the engine's notion of the current date. Injected everywhere
// so tests and simulations can drive time explicitly.
type Clock interface {
	Now() time.Time
	// Today is Now truncated to midnight UTC; all due-date and expiration
	// arithmetic works on whole days.
	Today() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Today() time.Time {
	return DateOf(time.Now())
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Today() time.Time {
	return DateOf(c.currentTime)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

func (c *MockClock) AdvanceDays(n int) {
	c.currentTime = c.currentTime.AddDate(0, 0, n)
}

// DateOf normalizes a timestamp to midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (negative when b
// precedes a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / (24 * time.Hour))
}
