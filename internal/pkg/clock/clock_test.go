//go:build unit

package clock_test

import (
	"testing"
	"time"

	"circulation-engine/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), clock.DateOf(ts))

	// Non-UTC timestamps normalize to the UTC calendar day.
	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2026, 3, 2, 22, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), clock.DateOf(late))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 8, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 6, clock.DaysBetween(a, b))
	assert.Equal(t, -6, clock.DaysBetween(b, a))
	assert.Equal(t, 0, clock.DaysBetween(a, a))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), c.Today())

	c.AdvanceDays(3)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), c.Today())

	c.Add(20 * time.Hour)
	assert.Equal(t, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), c.Today())
}
