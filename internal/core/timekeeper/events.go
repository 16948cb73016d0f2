package timekeeper

import (
	"time"

	"studyfocus/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange      EventType = "state_change"
	EventTick             EventType = "tick"
	EventPhaseComplete    EventType = "phase_complete"
	EventSessionCompleted EventType = "session_completed"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type      EventType
	State     model.State
	Phase     model.Phase
	Remaining time.Duration
	Total     time.Duration
	Progress  float64
	Cycle     int
	// Record is set for EventSessionCompleted.
	Record model.CompletedRecord
	At     time.Time
}
