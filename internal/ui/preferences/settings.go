package preferences

import (
	"time"

	"studyfocus/internal/core/timekeeper"
)

const (
	MinGoalMinutes = 5
	MaxGoalMinutes = 180
)

// Settings defines editable user preferences.
type Settings struct {
	GoalMinutes        int
	ExtendBreakMinutes int
	DemoMode           bool
	LogLevel           string
}

// DefaultSettings returns default settings for StudyFocus.
func DefaultSettings() Settings {
	return Settings{
		GoalMinutes:        30,
		ExtendBreakMinutes: 5,
		DemoMode:           false,
		LogLevel:           "info",
	}
}

// TimeKeeperConfig converts settings to a timekeeper.Config.
// Demo mode halves every phase.
func (settings Settings) TimeKeeperConfig() timekeeper.Config {
	scale := 1.0
	if settings.DemoMode {
		scale = 0.5
	}
	return timekeeper.Config{
		TickInterval:    time.Second,
		ExtendIncrement: time.Duration(settings.ExtendBreakMinutes) * time.Minute,
		DurationScale:   scale,
	}
}

// ClampGoalMinutes keeps a goal length inside the selectable range.
func ClampGoalMinutes(minutes int) int {
	if minutes < MinGoalMinutes {
		return MinGoalMinutes
	}
	if minutes > MaxGoalMinutes {
		return MaxGoalMinutes
	}
	return minutes
}
