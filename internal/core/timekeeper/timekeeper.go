package timekeeper

import (
	"errors"
	"strings"
	"sync"
	"time"

	"studyfocus/internal/core/history"
	"studyfocus/internal/core/model"
	"studyfocus/internal/core/timer"

	"github.com/sirupsen/logrus"
)

// ErrSessionLive is returned when a session is created while another one runs.
var ErrSessionLive = errors.New("a session is already running")

// DefaultExtendIncrement is added to a break by ExtendBreak.
const DefaultExtendIncrement = 5 * time.Minute

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval    time.Duration
	ExtendIncrement time.Duration
	// DurationScale multiplies every work and break length. Values outside (0, 1] mean 1.
	DurationScale float64
	Clock         timer.Clock
	Logger        *logrus.Entry
}

// TimeKeeper is the session state machine. All commands and timer events are
// applied under one mutex, in the order they arrive.
type TimeKeeper struct {
	mu      sync.Mutex
	options Config
	clock   timer.Clock
	timer   *timer.Timer
	handle  timer.Handle
	history *history.Log
	logger  *logrus.Entry

	state   model.State
	session *model.Session

	events  []chan Event
	stopCh  chan struct{}
	running bool
}

// New creates a TimeKeeper that appends completed sessions to log.
func New(log *history.Log, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.ExtendIncrement <= 0 {
		options.ExtendIncrement = DefaultExtendIncrement
	}
	if options.DurationScale <= 0 || options.DurationScale > 1 {
		options.DurationScale = 1
	}
	if options.Clock == nil {
		options.Clock = timer.SystemClock{}
	}
	if options.Logger == nil {
		options.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if log == nil {
		log = history.New()
	}

	return &TimeKeeper{
		options: options,
		clock:   options.Clock,
		timer:   timer.New(options.Clock),
		history: log,
		logger:  options.Logger,
		state:   model.StateIdle,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// StartTicking launches the loop that drives the phase timer once per tick interval.
func (keeper *TimeKeeper) StartTicking() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	stopCh := keeper.stopCh
	keeper.mu.Unlock()

	go keeper.run(stopCh)
}

// Stop terminates the ticking loop and closes observers.
// StartTicking may be called again; observers must subscribe again.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// UpdateConfig replaces the break increment and duration scale.
// Phases already running keep their lengths.
func (keeper *TimeKeeper) UpdateConfig(options Config) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if options.ExtendIncrement > 0 {
		keeper.options.ExtendIncrement = options.ExtendIncrement
	}
	if options.DurationScale > 0 && options.DurationScale <= 1 {
		keeper.options.DurationScale = options.DurationScale
	}
}

// State returns the current lifecycle state.
func (keeper *TimeKeeper) State() model.State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Snapshot returns a copy of the live session.
func (keeper *TimeKeeper) Snapshot() (model.Session, bool) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.session == nil {
		return model.Session{}, false
	}
	return *keeper.session, true
}

// History returns the completed-session log the keeper appends to.
func (keeper *TimeKeeper) History() *history.Log {
	return keeper.history
}

// CreateSession validates input and makes a new READY session.
// A READY or COMPLETED session is replaced; a running or paused one is not.
func (keeper *TimeKeeper) CreateSession(technique, subject, task string, workMinutes int) error {
	session, err := model.NewSession(technique, subject, task, workMinutes)
	if err != nil {
		return err
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state.Active() || keeper.state == model.StatePaused {
		return ErrSessionLive
	}

	keeper.cancelTimerLocked()
	session.Remaining = keeper.scaled(session.WorkDuration)
	session.PhaseTotal = session.Remaining
	keeper.session = session
	keeper.setStateLocked(model.StateReady, keeper.clock.Now())
	keeper.logger.WithFields(logrus.Fields{
		"session":   session.ID,
		"technique": session.Technique.Name,
	}).Debug("session created")
	return nil
}

// Start begins the first work phase of a READY session.
func (keeper *TimeKeeper) Start() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != model.StateReady || keeper.session == nil {
		return keeper.rejectLocked("start")
	}

	now := keeper.clock.Now()
	keeper.session.StartedAt = now
	keeper.beginWorkLocked(now)
	return true
}

// Pause freezes the running phase at its last tick.
func (keeper *TimeKeeper) Pause() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.state.Active() {
		return keeper.rejectLocked("pause")
	}

	keeper.cancelTimerLocked()
	keeper.session.PausedPhase = keeper.session.Phase()
	keeper.session.Paused = true
	keeper.setStateLocked(model.StatePaused, keeper.clock.Now())
	return true
}

// Resume restarts the paused phase with its frozen remaining time.
func (keeper *TimeKeeper) Resume() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != model.StatePaused {
		return keeper.rejectLocked("resume")
	}

	keeper.session.Paused = false
	keeper.startTimerLocked(keeper.session.Remaining)
	keeper.setStateLocked(keeper.session.PausedPhase.State(), keeper.clock.Now())
	return true
}

// Cancel discards the session without recording it.
func (keeper *TimeKeeper) Cancel() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state == model.StateIdle {
		return keeper.rejectLocked("cancel")
	}

	keeper.cancelTimerLocked()
	keeper.session = nil
	keeper.setStateLocked(model.StateIdle, keeper.clock.Now())
	return true
}

// MarkDone finishes the session early and records the time actually spent.
// It is also accepted after a break has finished.
func (keeper *TimeKeeper) MarkDone() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	switch {
	case keeper.session == nil:
		return keeper.rejectLocked("mark_done")
	case keeper.state == model.StateActiveWork, keeper.state == model.StatePaused, keeper.state == model.StateCompleted:
	default:
		return keeper.rejectLocked("mark_done")
	}

	keeper.cancelTimerLocked()
	keeper.completeLocked(keeper.clock.Now())
	return true
}

// SkipBreak ends the current break and starts the next work phase.
func (keeper *TimeKeeper) SkipBreak() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != model.StateActiveBreak {
		return keeper.rejectLocked("skip_break")
	}

	keeper.cancelTimerLocked()
	keeper.advanceCycleLocked()
	keeper.beginWorkLocked(keeper.clock.Now())
	return true
}

// ExtendBreak adds the configured increment to the running break.
func (keeper *TimeKeeper) ExtendBreak() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != model.StateActiveBreak {
		return keeper.rejectLocked("extend_break")
	}

	keeper.cancelTimerLocked()
	keeper.session.Remaining += keeper.options.ExtendIncrement
	keeper.session.PhaseTotal += keeper.options.ExtendIncrement
	keeper.startTimerLocked(keeper.session.Remaining)
	keeper.emitLocked(keeper.eventLocked(EventTick, keeper.clock.Now()))
	return true
}

// StartNextCycle begins the next work phase after a finished break.
// Empty subject or task keep the current labels.
func (keeper *TimeKeeper) StartNextCycle(subject, task string) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != model.StateCompleted || keeper.session == nil {
		return keeper.rejectLocked("start_next_cycle")
	}

	if subject = strings.TrimSpace(subject); subject != "" {
		keeper.session.Subject = subject
	}
	if task = strings.TrimSpace(task); task != "" {
		keeper.session.Task = task
	}
	keeper.advanceCycleLocked()
	keeper.beginWorkLocked(keeper.clock.Now())
	return true
}

// Suspend stops ticking while the host is in the background.
func (keeper *TimeKeeper) Suspend() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.timer.Suspend()
}

// Wake charges the running phase with the time spent suspended.
// A phase that ran out while suspended completes now.
func (keeper *TimeKeeper) Wake() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.timer.Wake()
}

// Tick advances the phase timer to the clock's current time.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.state.Active() {
		return
	}
	keeper.timer.Advance()
}

func (keeper *TimeKeeper) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			keeper.Tick()
		}
	}
}

func (keeper *TimeKeeper) beginWorkLocked(now time.Time) {
	session := keeper.session
	session.Paused = false
	session.CycleStartedAt = now
	session.PhaseTotal = keeper.scaled(session.WorkDuration)
	session.Remaining = session.PhaseTotal
	keeper.startTimerLocked(session.Remaining)
	keeper.setStateLocked(model.StateActiveWork, now)
}

func (keeper *TimeKeeper) beginBreakLocked(now time.Time) {
	session := keeper.session
	session.PhaseTotal = keeper.scaled(session.Technique.BreakFor(session.CurrentCycle))
	session.Remaining = session.PhaseTotal
	keeper.startTimerLocked(session.Remaining)
	keeper.setStateLocked(model.StateActiveBreak, now)
}

func (keeper *TimeKeeper) advanceCycleLocked() {
	keeper.session.CurrentCycle = keeper.session.Technique.NextCycle(keeper.session.CurrentCycle)
}

func (keeper *TimeKeeper) startTimerLocked(duration time.Duration) {
	keeper.handle = keeper.timer.Start(duration, keeper.tickLocked, keeper.phaseCompletedLocked)
}

func (keeper *TimeKeeper) cancelTimerLocked() {
	if keeper.handle == 0 {
		return
	}
	keeper.timer.Cancel(keeper.handle)
	keeper.handle = 0
}

// tickLocked runs inside timer.Advance or timer.Wake, with keeper.mu held.
func (keeper *TimeKeeper) tickLocked(handle timer.Handle, remaining time.Duration) {
	if handle != keeper.handle || keeper.session == nil {
		keeper.logger.WithField("handle", handle).Debug("stale tick dropped")
		return
	}
	if remaining > keeper.session.PhaseTotal {
		remaining = keeper.session.PhaseTotal
	}
	keeper.session.Remaining = remaining
	keeper.emitLocked(keeper.eventLocked(EventTick, keeper.clock.Now()))
}

// phaseCompletedLocked runs inside timer.Advance or timer.Wake, with keeper.mu held.
func (keeper *TimeKeeper) phaseCompletedLocked(handle timer.Handle) {
	if handle == 0 || handle != keeper.handle || keeper.session == nil || !keeper.state.Active() {
		keeper.logger.WithField("handle", handle).Debug("stale completion dropped")
		return
	}
	keeper.handle = 0
	now := keeper.clock.Now()
	session := keeper.session
	session.Remaining = 0

	phaseDone := keeper.eventLocked(EventPhaseComplete, now)
	keeper.emitLocked(phaseDone)

	switch keeper.state {
	case model.StateActiveWork:
		if session.BreakDuration > 0 {
			keeper.beginBreakLocked(now)
			return
		}
		keeper.completeLocked(now)
	case model.StateActiveBreak:
		keeper.setStateLocked(model.StateCompleted, now)
	}
}

// completeLocked records the session and discards it.
func (keeper *TimeKeeper) completeLocked(now time.Time) {
	session := keeper.session
	record := session.Complete(now)
	record.OriginalDuration = keeper.scaled(session.WorkDuration)
	keeper.history.Append(record)

	keeper.logger.WithFields(logrus.Fields{
		"session":   session.ID,
		"technique": record.Technique,
		"spent":     record.TimeSpent.String(),
		"cycle":     record.Cycle,
	}).Info("session completed")

	completed := keeper.eventLocked(EventSessionCompleted, now)
	completed.Record = record
	keeper.emitLocked(completed)

	keeper.setStateLocked(model.StateCompleted, now)
	keeper.session = nil
}

func (keeper *TimeKeeper) setStateLocked(state model.State, now time.Time) {
	keeper.state = state
	if keeper.session != nil {
		keeper.session.State = state
	}
	keeper.emitLocked(keeper.eventLocked(EventStateChange, now))
}

func (keeper *TimeKeeper) rejectLocked(command string) bool {
	keeper.logger.WithFields(logrus.Fields{
		"command": command,
		"state":   keeper.state,
	}).Debug("illegal transition ignored")
	return false
}

func (keeper *TimeKeeper) eventLocked(eventType EventType, now time.Time) Event {
	event := Event{
		Type:  eventType,
		State: keeper.state,
		At:    now,
	}
	if session := keeper.session; session != nil {
		event.Phase = session.Phase()
		event.Remaining = session.Remaining
		event.Total = session.PhaseTotal
		event.Progress = session.Progress()
		event.Cycle = session.CurrentCycle
	}
	return event
}

func (keeper *TimeKeeper) scaled(duration time.Duration) time.Duration {
	if keeper.options.DurationScale == 1 {
		return duration
	}
	return time.Duration(float64(duration) * keeper.options.DurationScale)
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	events := append([]chan Event(nil), keeper.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
