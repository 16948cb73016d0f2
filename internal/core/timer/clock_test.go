package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClockHasNoMonotonicReading(t *testing.T) {
	now := SystemClock{}.Now()
	assert.NotContains(t, now.String(), "m=")
	assert.True(t, now.Equal(now.Round(0)))
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	assert.Equal(t, start, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())
}
