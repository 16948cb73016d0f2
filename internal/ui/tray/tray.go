package tray

import (
	"fmt"

	"studyfocus/internal/core/model"
	"studyfocus/internal/ui/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpen        func()
	OnHistory     func()
	OnPreferences func()
	OnTogglePause func()
	OnSkipBreak   func()
	OnExtendBreak func()
	OnMarkDone    func()
	OnCancel      func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	skipItem    *fyne.MenuItem
	extendItem  *fyne.MenuItem
	doneItem    *fyne.MenuItem
	cancelItem  *fyne.MenuItem
	callbacks   Callbacks
	state       model.State
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		state:     model.StateIdle,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.skipItem = fyne.NewMenuItem("Skip break", invoke(&manager.callbacks.OnSkipBreak))
	manager.extendItem = fyne.NewMenuItem("Extend break", invoke(&manager.callbacks.OnExtendBreak))
	manager.doneItem = fyne.NewMenuItem("Mark done", invoke(&manager.callbacks.OnMarkDone))
	manager.cancelItem = fyne.NewMenuItem("Cancel session", invoke(&manager.callbacks.OnCancel))

	manager.SetState(model.StateIdle, false)
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
	manager.refreshMenu()
}

// SetState enables the menu items that are legal in state.
// live reports whether a session is still attached.
func (manager *Manager) SetState(state model.State, live bool) {
	manager.state = state
	controls := session.ControlsFor(state, live)

	manager.pauseItem.Disabled = !controls.Pause && !controls.Resume
	if state == model.StatePaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.skipItem.Disabled = !controls.SkipBreak
	manager.extendItem.Disabled = !controls.Extend
	manager.doneItem.Disabled = !controls.MarkDone
	manager.cancelItem.Disabled = !controls.Cancel

	manager.refreshStatus()
	manager.refreshMenu()
}

// Paused reports whether the last state shown was PAUSED.
func (manager *Manager) Paused() bool {
	return manager.state == model.StatePaused
}

func (manager *Manager) refreshStatus() {
	status := session.Title(manager.state)
	if manager.statusLabel != "" && manager.state.Active() {
		status = fmt.Sprintf("%s %s", status, manager.statusLabel)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("StudyFocus",
		manager.statusItem,
		fyne.NewMenuItem("Open", invoke(&manager.callbacks.OnOpen)),
		fyne.NewMenuItem("My Activity", invoke(&manager.callbacks.OnHistory)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		manager.skipItem,
		manager.extendItem,
		manager.doneItem,
		manager.cancelItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	))
}

func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
