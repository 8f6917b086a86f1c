//go:build unit

package clock_test

import (
	"testing"
	"time"

	"lab-reservation/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	// 2026-03-10 23:30 UTC is already 2026-03-11 in Tokyo.
	c := clock.NewMockClock(time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), clock.Today(c, time.UTC))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), clock.Today(c, tokyo))

	c.Add(time.Hour)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), clock.Today(c, nil))
}
