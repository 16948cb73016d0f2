package tray

import (
	"testing"

	"studyfocus/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestSetStateTogglesItems(t *testing.T) {
	manager := New(nil, Callbacks{})
	assert.True(t, manager.pauseItem.Disabled)
	assert.True(t, manager.cancelItem.Disabled)
	assert.Equal(t, "Status: Idle", manager.statusItem.Label)

	manager.SetState(model.StateActiveBreak, true)
	manager.SetStatus("04:59")
	assert.False(t, manager.skipItem.Disabled)
	assert.False(t, manager.extendItem.Disabled)
	assert.True(t, manager.doneItem.Disabled)
	assert.Equal(t, "Status: BREAK TIME 04:59", manager.statusItem.Label)

	manager.SetState(model.StatePaused, true)
	assert.True(t, manager.Paused())
	assert.Equal(t, "Resume", manager.pauseItem.Label)
	assert.False(t, manager.pauseItem.Disabled)
	assert.Equal(t, "Status: PAUSED", manager.statusItem.Label)

	manager.SetState(model.StateCompleted, false)
	assert.True(t, manager.doneItem.Disabled)
	assert.False(t, manager.cancelItem.Disabled)
}

func TestMenuCallbacksAreInvoked(t *testing.T) {
	toggled := 0
	manager := New(nil, Callbacks{OnTogglePause: func() { toggled++ }})
	manager.pauseItem.Action()
	manager.skipItem.Action()
	assert.Equal(t, 1, toggled)
}
