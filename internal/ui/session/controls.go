package session

import "studyfocus/internal/core/model"

var stateTitles = map[model.State]string{
	model.StateIdle:        "Idle",
	model.StateReady:       "Ready",
	model.StateActiveWork:  "WORK SESSION",
	model.StateActiveBreak: "BREAK TIME",
	model.StatePaused:      "PAUSED",
	model.StateCompleted:   "Completed",
}

// Title returns the display name of a state.
func Title(state model.State) string {
	if title, ok := stateTitles[state]; ok {
		return title
	}
	return string(state)
}

// Controls lists which commands the window offers.
type Controls struct {
	Create    bool
	Start     bool
	Pause     bool
	Resume    bool
	SkipBreak bool
	Extend    bool
	MarkDone  bool
	NextCycle bool
	Cancel    bool
}

// ControlsFor returns the commands that are legal in state.
// live reports whether a session is still attached after COMPLETED.
func ControlsFor(state model.State, live bool) Controls {
	switch state {
	case model.StateReady:
		return Controls{Create: true, Start: true, Cancel: true}
	case model.StateActiveWork:
		return Controls{Pause: true, MarkDone: true, Cancel: true}
	case model.StateActiveBreak:
		return Controls{Pause: true, SkipBreak: true, Extend: true, Cancel: true}
	case model.StatePaused:
		return Controls{Resume: true, MarkDone: true, Cancel: true}
	case model.StateCompleted:
		if live {
			return Controls{Create: true, NextCycle: true, MarkDone: true, Cancel: true}
		}
		return Controls{Create: true, Cancel: true}
	default:
		return Controls{Create: true}
	}
}

// NeedsMinutes reports whether a technique takes its work length from the caller.
func NeedsMinutes(technique string) bool {
	return model.DurationsFor(technique).Work <= 0
}
