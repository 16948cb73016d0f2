package model

// State is a session lifecycle state.
type State string

const (
	StateIdle        State = "idle"
	StateReady       State = "ready"
	StateActiveWork  State = "active_work"
	StateActiveBreak State = "active_break"
	StatePaused      State = "paused"
	StateCompleted   State = "completed"
)

// Active reports whether a phase timer runs in this state.
func (state State) Active() bool {
	return state == StateActiveWork || state == StateActiveBreak
}

// Phase is one timed interval of a session.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// State returns the active state that runs the phase.
func (phase Phase) State() State {
	if phase == PhaseBreak {
		return StateActiveBreak
	}
	return StateActiveWork
}
