package timer

import (
	"sync"
	"time"
)

// Handle identifies one started countdown. The zero Handle is never issued.
type Handle uint64

// TickFunc receives the remaining time of a running countdown.
type TickFunc func(handle Handle, remaining time.Duration)

// CompleteFunc is called once when a countdown reaches zero.
type CompleteFunc func(handle Handle)

type countdown struct {
	handle     Handle
	deadline   time.Time
	remaining  time.Duration
	suspended  bool
	suspendAt  time.Time
	onTick     TickFunc
	onComplete CompleteFunc
}

// Timer runs at most one countdown at a time.
// It does not own a goroutine: the caller drives it with Advance.
type Timer struct {
	mu     sync.Mutex
	clock  Clock
	last   Handle
	active *countdown
}

// New creates a Timer reading time from clock.
func New(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{clock: clock}
}

// Start begins a countdown of duration and returns its handle.
// Any running countdown is cancelled first.
func (timer *Timer) Start(duration time.Duration, onTick TickFunc, onComplete CompleteFunc) Handle {
	if duration < 0 {
		duration = 0
	}
	now := timer.clock.Now()

	timer.mu.Lock()
	timer.last++
	current := &countdown{
		handle:     timer.last,
		deadline:   now.Add(duration),
		remaining:  duration,
		onTick:     onTick,
		onComplete: onComplete,
	}
	timer.active = current
	timer.mu.Unlock()

	return current.handle
}

// Cancel stops the countdown identified by handle.
// Cancelling a finished, cancelled or superseded countdown does nothing.
func (timer *Timer) Cancel(handle Handle) {
	timer.mu.Lock()
	if timer.active != nil && timer.active.handle == handle {
		timer.active = nil
	}
	timer.mu.Unlock()
}

// Active reports whether handle is the running countdown.
func (timer *Timer) Active(handle Handle) bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.active != nil && timer.active.handle == handle
}

// Remaining returns the last computed remaining time of the running countdown.
func (timer *Timer) Remaining() (time.Duration, bool) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.active == nil {
		return 0, false
	}
	return timer.active.remaining, true
}

// Advance recomputes the running countdown against the clock.
// A tick is delivered only when the remaining time decreased; completion follows
// the final zero tick unless the countdown was cancelled in between.
func (timer *Timer) Advance() {
	now := timer.clock.Now()

	timer.mu.Lock()
	current := timer.active
	if current == nil || current.suspended {
		timer.mu.Unlock()
		return
	}
	remaining := current.deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	if remaining >= current.remaining && remaining > 0 {
		timer.mu.Unlock()
		return
	}
	current.remaining = remaining
	timer.mu.Unlock()

	if current.onTick != nil {
		current.onTick(current.handle, remaining)
	}
	if remaining == 0 {
		timer.complete(current)
	}
}

// Suspend stops ticking and records a wall-clock snapshot.
func (timer *Timer) Suspend() {
	now := timer.clock.Now()

	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.active == nil || timer.active.suspended {
		return
	}
	remaining := timer.active.deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	if remaining < timer.active.remaining {
		timer.active.remaining = remaining
	}
	timer.active.suspended = true
	timer.active.suspendAt = now
}

// Wake resumes a suspended countdown, charging it the time spent suspended.
// If that time consumed the countdown, completion fires immediately.
func (timer *Timer) Wake() {
	now := timer.clock.Now()

	timer.mu.Lock()
	current := timer.active
	if current == nil || !current.suspended {
		timer.mu.Unlock()
		return
	}
	previous := current.remaining
	remaining := previous - now.Sub(current.suspendAt)
	if remaining < 0 {
		remaining = 0
	}
	current.suspended = false
	current.remaining = remaining
	current.deadline = now.Add(remaining)
	timer.mu.Unlock()

	if current.onTick != nil && remaining < previous {
		current.onTick(current.handle, remaining)
	}
	if remaining == 0 {
		timer.complete(current)
	}
}

// complete invalidates the countdown before its completion callback runs.
func (timer *Timer) complete(current *countdown) {
	timer.mu.Lock()
	if timer.active != current {
		timer.mu.Unlock()
		return
	}
	timer.active = nil
	timer.mu.Unlock()

	if current.onComplete != nil {
		current.onComplete(current.handle)
	}
}
