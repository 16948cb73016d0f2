package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ticks     []time.Duration
	completed []Handle
}

func (rec *recorder) tick(_ Handle, remaining time.Duration) {
	rec.ticks = append(rec.ticks, remaining)
}

func (rec *recorder) complete(handle Handle) {
	rec.completed = append(rec.completed, handle)
}

func newTestTimer() (*Timer, *ManualClock, *recorder) {
	clock := NewManualClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return New(clock), clock, &recorder{}
}

func TestTimerTicksDecreaseAndComplete(t *testing.T) {
	timer, clock, rec := newTestTimer()
	handle := timer.Start(3*time.Second, rec.tick, rec.complete)

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		timer.Advance()
	}

	assert.Equal(t, []time.Duration{2 * time.Second, time.Second, 0}, rec.ticks)
	assert.Equal(t, []Handle{handle}, rec.completed)
	assert.False(t, timer.Active(handle))
}

func TestTimerNoTickWithoutElapsedTime(t *testing.T) {
	timer, _, rec := newTestTimer()
	timer.Start(time.Minute, rec.tick, rec.complete)

	timer.Advance()
	timer.Advance()

	assert.Empty(t, rec.ticks)
	assert.Empty(t, rec.completed)
}

func TestTimerLateTickClampsToZero(t *testing.T) {
	timer, clock, rec := newTestTimer()
	timer.Start(2*time.Second, rec.tick, rec.complete)

	clock.Advance(10 * time.Second)
	timer.Advance()

	require.Len(t, rec.ticks, 1)
	assert.Equal(t, time.Duration(0), rec.ticks[0])
	assert.Len(t, rec.completed, 1)
}

func TestTimerCancelIsIdempotent(t *testing.T) {
	timer, clock, rec := newTestTimer()
	handle := timer.Start(time.Second, rec.tick, rec.complete)

	timer.Cancel(handle)
	timer.Cancel(handle)
	clock.Advance(5 * time.Second)
	timer.Advance()

	assert.Empty(t, rec.ticks)
	assert.Empty(t, rec.completed)
	assert.False(t, timer.Active(handle))
}

func TestTimerCancelOfStaleHandleKeepsCurrent(t *testing.T) {
	timer, clock, rec := newTestTimer()
	first := timer.Start(time.Minute, rec.tick, rec.complete)
	second := timer.Start(2*time.Second, rec.tick, rec.complete)

	timer.Cancel(first)
	assert.True(t, timer.Active(second))

	clock.Advance(2 * time.Second)
	timer.Advance()
	assert.Equal(t, []Handle{second}, rec.completed)
}

func TestTimerCancelDuringFinalTickDropsCompletion(t *testing.T) {
	timer, clock, rec := newTestTimer()
	var handle Handle
	handle = timer.Start(time.Second, func(h Handle, remaining time.Duration) {
		rec.tick(h, remaining)
		if remaining == 0 {
			timer.Cancel(handle)
		}
	}, rec.complete)

	clock.Advance(time.Second)
	timer.Advance()

	assert.Equal(t, []time.Duration{0}, rec.ticks)
	assert.Empty(t, rec.completed)
}

func TestTimerSuspendChargesElapsedTime(t *testing.T) {
	timer, clock, rec := newTestTimer()
	timer.Start(10*time.Second, rec.tick, rec.complete)

	clock.Advance(2 * time.Second)
	timer.Advance()
	timer.Suspend()

	clock.Advance(3 * time.Second)
	timer.Advance()
	assert.Equal(t, []time.Duration{8 * time.Second}, rec.ticks)

	timer.Wake()
	assert.Equal(t, []time.Duration{8 * time.Second, 5 * time.Second}, rec.ticks)
	remaining, ok := timer.Remaining()
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, remaining)
}

func TestTimerWakeAfterDeadlineCompletesImmediately(t *testing.T) {
	timer, clock, rec := newTestTimer()
	handle := timer.Start(5*time.Second, rec.tick, rec.complete)

	timer.Suspend()
	clock.Advance(time.Hour)
	timer.Wake()

	assert.Equal(t, []time.Duration{0}, rec.ticks)
	assert.Equal(t, []Handle{handle}, rec.completed)
}

func TestTimerWakeWithoutElapsedTimeDoesNotTick(t *testing.T) {
	timer, _, rec := newTestTimer()
	timer.Start(5*time.Second, rec.tick, rec.complete)

	timer.Suspend()
	timer.Wake()

	assert.Empty(t, rec.ticks)
	remaining, ok := timer.Remaining()
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, remaining)
}

func TestTimerStartCallbackMayStartNext(t *testing.T) {
	timer, clock, rec := newTestTimer()
	var next Handle
	timer.Start(time.Second, rec.tick, func(h Handle) {
		rec.complete(h)
		next = timer.Start(time.Second, rec.tick, rec.complete)
	})

	clock.Advance(time.Second)
	timer.Advance()
	require.NotZero(t, next)
	assert.True(t, timer.Active(next))

	clock.Advance(time.Second)
	timer.Advance()
	assert.Len(t, rec.completed, 2)
}
