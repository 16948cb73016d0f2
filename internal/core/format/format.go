// Package format renders durations and timestamps for display.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSpent renders an elapsed duration.
//
//	98s     -> "1 minute and 38 seconds"
//	2h2m30s -> "2 hours and 2 minutes"
//	37s     -> "37 seconds"
func TimeSpent(spent time.Duration) string {
	hours, minutes, seconds := split(spent)

	var text strings.Builder
	switch {
	case hours > 0:
		text.WriteString(unit(hours, "hour"))
		if minutes > 0 {
			text.WriteString(" and ")
			text.WriteString(unit(minutes, "minute"))
		}
	case minutes > 0:
		text.WriteString(unit(minutes, "minute"))
		if seconds > 0 {
			text.WriteString(" and ")
			text.WriteString(unit(seconds, "second"))
		}
	default:
		text.WriteString(unit(seconds, "second"))
	}
	return text.String()
}

// TimeRemaining renders a countdown value. Minutes and seconds are joined by a
// plain space, hours and minutes by "and".
func TimeRemaining(remaining time.Duration) string {
	hours, minutes, seconds := split(remaining)

	var text strings.Builder
	switch {
	case hours > 0:
		text.WriteString(unit(hours, "hour"))
		if minutes > 0 {
			text.WriteString(" and ")
			text.WriteString(unit(minutes, "minute"))
		}
	case minutes > 0:
		text.WriteString(unit(minutes, "minute"))
		if seconds > 0 {
			text.WriteString(" ")
			text.WriteString(unit(seconds, "second"))
		}
	default:
		text.WriteString(unit(seconds, "second"))
	}
	text.WriteString(" remaining")
	return text.String()
}

// RelativeTime renders how long ago completedAt was, measured at now.
func RelativeTime(completedAt, now time.Time) string {
	delta := now.Sub(completedAt)
	minutes := int64(delta / time.Minute)
	hours := int64(delta / time.Hour)
	days := int64(delta / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return unit(minutes, "minute") + " ago"
	case hours < 24:
		return unit(hours, "hour") + " ago"
	default:
		return unit(days, "day") + " ago"
	}
}

// Since is RelativeTime measured against the current wall clock.
func Since(completedAt time.Time) string {
	return RelativeTime(completedAt, time.Now())
}

// SetDuration renders a configured session length given in minutes.
func SetDuration(minutes int) string {
	if minutes < 60 {
		return unit(int64(minutes), "minute")
	}
	hours := int64(minutes / 60)
	rest := int64(minutes % 60)
	if rest == 0 {
		return unit(hours, "hour")
	}
	return unit(hours, "hour") + " and " + unit(rest, "minute")
}

// Countdown renders a duration as MM:SS. Minutes are not capped at 59.
func Countdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int64(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func split(value time.Duration) (hours, minutes, seconds int64) {
	if value < 0 {
		value = 0
	}
	total := int64(value / time.Second)
	return total / 3600, (total % 3600) / 60, total % 60
}

func unit(value int64, name string) string {
	if value == 1 {
		return "1 " + name
	}
	return strconv.FormatInt(value, 10) + " " + name + "s"
}
