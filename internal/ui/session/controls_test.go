package session

import (
	"testing"

	"studyfocus/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "WORK SESSION", Title(model.StateActiveWork))
	assert.Equal(t, "BREAK TIME", Title(model.StateActiveBreak))
	assert.Equal(t, "odd", Title(model.State("odd")))
}

func TestControlsFor(t *testing.T) {
	assert.Equal(t, Controls{Create: true}, ControlsFor(model.StateIdle, false))
	assert.Equal(t, Controls{Pause: true, MarkDone: true, Cancel: true}, ControlsFor(model.StateActiveWork, true))

	breakControls := ControlsFor(model.StateActiveBreak, true)
	assert.True(t, breakControls.SkipBreak)
	assert.True(t, breakControls.Extend)
	assert.False(t, breakControls.MarkDone)

	assert.True(t, ControlsFor(model.StateCompleted, true).NextCycle)
	assert.False(t, ControlsFor(model.StateCompleted, false).NextCycle)
	assert.False(t, ControlsFor(model.StateCompleted, false).MarkDone)
}

func TestNeedsMinutes(t *testing.T) {
	assert.False(t, NeedsMinutes(model.TechniquePomodoro))
	assert.True(t, NeedsMinutes(model.TechniqueDeadline))
	assert.True(t, NeedsMinutes(model.TechniqueCustomGoal))
	assert.True(t, NeedsMinutes("Flowtime"))
}
