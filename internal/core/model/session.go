package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput is wrapped by every session validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Session is the single live study session.
type Session struct {
	ID        string
	Technique TechniqueConfig
	Subject   string
	Task      string

	WorkDuration  time.Duration
	BreakDuration time.Duration

	State        State
	Paused       bool
	PausedPhase  Phase
	CurrentCycle int

	StartedAt      time.Time
	CycleStartedAt time.Time

	// Remaining and PhaseTotal describe the current (or frozen) phase.
	Remaining  time.Duration
	PhaseTotal time.Duration
}

// NewSession validates caller input and builds a READY session.
// A zero workMinutes selects the technique's own work length.
func NewSession(technique, subject, task string, workMinutes int) (*Session, error) {
	config := DurationsFor(technique)

	subject = strings.TrimSpace(subject)
	task = strings.TrimSpace(task)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidInput)
	}
	if task == "" {
		return nil, fmt.Errorf("%w: task is empty", ErrInvalidInput)
	}
	if workMinutes < 0 {
		return nil, fmt.Errorf("%w: work duration %d minutes", ErrInvalidInput, workMinutes)
	}

	work := config.Work
	if workMinutes > 0 {
		work = time.Duration(workMinutes) * time.Minute
	}
	if work <= 0 {
		return nil, fmt.Errorf("%w: %s needs a work duration", ErrInvalidInput, config.Name)
	}

	return &Session{
		ID:            uuid.New().String(),
		Technique:     config,
		Subject:       subject,
		Task:          task,
		WorkDuration:  work,
		BreakDuration: config.Break,
		State:         StateReady,
		CurrentCycle:  1,
		Remaining:     work,
		PhaseTotal:    work,
	}, nil
}

// Progress returns the completed fraction of the current phase.
func (session *Session) Progress() float64 {
	if session.PhaseTotal <= 0 {
		return 1
	}
	progress := float64(session.PhaseTotal-session.Remaining) / float64(session.PhaseTotal)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Phase returns the phase the session is in, including a paused one.
func (session *Session) Phase() Phase {
	switch session.State {
	case StateActiveBreak:
		return PhaseBreak
	case StatePaused:
		return session.PausedPhase
	default:
		return PhaseWork
	}
}

// CompletedRecord is an immutable entry of the completed-session log.
type CompletedRecord struct {
	ID               string
	SessionID        string
	Technique        string
	Subject          string
	Task             string
	TimeSpent        time.Duration
	CompletedAt      time.Time
	OriginalDuration time.Duration
	Cycle            int
}

// Complete builds the record for a session finished at now.
// TimeSpent is the wall-clock time since the session started.
func (session *Session) Complete(now time.Time) CompletedRecord {
	spent := now.Sub(session.StartedAt)
	if spent < 0 {
		spent = 0
	}
	return CompletedRecord{
		ID:               uuid.New().String(),
		SessionID:        session.ID,
		Technique:        session.Technique.Name,
		Subject:          session.Subject,
		Task:             session.Task,
		TimeSpent:        spent,
		CompletedAt:      now,
		OriginalDuration: session.WorkDuration,
		Cycle:            session.CurrentCycle,
	}
}
