package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSpent(t *testing.T) {
	tests := []struct {
		name  string
		spent time.Duration
		want  string
	}{
		{name: "seconds only", spent: 37 * time.Second, want: "37 seconds"},
		{name: "one second", spent: time.Second, want: "1 second"},
		{name: "zero", spent: 0, want: "0 seconds"},
		{name: "sub-second truncated", spent: 999 * time.Millisecond, want: "0 seconds"},
		{name: "minutes and seconds", spent: 98 * time.Second, want: "1 minute and 38 seconds"},
		{name: "whole minutes", spent: 25 * time.Minute, want: "25 minutes"},
		{name: "one minute one second", spent: 61 * time.Second, want: "1 minute and 1 second"},
		{name: "hours drop seconds", spent: 7320 * time.Second, want: "2 hours and 2 minutes"},
		{name: "hours and seconds only", spent: time.Hour + 59*time.Second, want: "1 hour"},
		{name: "one hour one minute", spent: time.Hour + time.Minute, want: "1 hour and 1 minute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeSpent(tt.spent))
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{name: "hours and minutes", remaining: 90 * time.Minute, want: "1 hour and 30 minutes remaining"},
		{name: "hours drop seconds", remaining: 2*time.Hour + 5*time.Second, want: "2 hours remaining"},
		{name: "minutes and seconds", remaining: 25*time.Minute + 49*time.Second, want: "25 minutes 49 seconds remaining"},
		{name: "one minute one second", remaining: 61 * time.Second, want: "1 minute 1 second remaining"},
		{name: "whole minutes", remaining: 5 * time.Minute, want: "5 minutes remaining"},
		{name: "seconds", remaining: 56 * time.Second, want: "56 seconds remaining"},
		{name: "one second", remaining: time.Second, want: "1 second remaining"},
		{name: "negative clamps", remaining: -time.Second, want: "0 seconds remaining"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeRemaining(tt.remaining))
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "just now", ago: 45 * time.Second, want: "Just now"},
		{name: "future", ago: -time.Minute, want: "Just now"},
		{name: "one minute", ago: 60 * time.Second, want: "1 minute ago"},
		{name: "minutes", ago: 125 * time.Second, want: "2 minutes ago"},
		{name: "one hour", ago: 61 * time.Minute, want: "1 hour ago"},
		{name: "hours", ago: 23*time.Hour + 59*time.Minute, want: "23 hours ago"},
		{name: "one day", ago: 25 * time.Hour, want: "1 day ago"},
		{name: "days", ago: 80 * time.Hour, want: "3 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestSinceUsesWallClock(t *testing.T) {
	assert.Equal(t, "Just now", Since(time.Now().Add(-45*time.Second)))
	assert.Equal(t, "2 minutes ago", Since(time.Now().Add(-125*time.Second)))
}

func TestSetDuration(t *testing.T) {
	assert.Equal(t, "1 minute", SetDuration(1))
	assert.Equal(t, "30 minutes", SetDuration(30))
	assert.Equal(t, "1 hour", SetDuration(60))
	assert.Equal(t, "1 hour and 30 minutes", SetDuration(90))
	assert.Equal(t, "3 hours", SetDuration(180))
	assert.Equal(t, "2 hours and 1 minute", SetDuration(121))
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, "25:00", Countdown(25*time.Minute))
	assert.Equal(t, "00:56", Countdown(56*time.Second+900*time.Millisecond))
	assert.Equal(t, "90:00", Countdown(90*time.Minute))
	assert.Equal(t, "00:00", Countdown(-time.Second))
}
