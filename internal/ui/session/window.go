package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"studyfocus/internal/core/format"
	"studyfocus/internal/core/model"
	"studyfocus/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Controller is the command surface of the session state machine.
type Controller interface {
	CreateSession(technique, subject, task string, workMinutes int) error
	Start() bool
	Pause() bool
	Resume() bool
	Cancel() bool
	MarkDone() bool
	SkipBreak() bool
	ExtendBreak() bool
	StartNextCycle(subject, task string) bool
	Snapshot() (model.Session, bool)
}

// Window shows the live session and issues commands to the controller.
type Window struct {
	window     fyne.Window
	controller Controller

	technique *widget.Select
	subject   *widget.Entry
	task      *widget.Entry
	minutes   *widget.Entry

	stateLabel     *widget.Label
	labelsLabel    *widget.Label
	remainingLabel *widget.Label
	cycleLabel     *widget.Label
	progress       *widget.ProgressBar

	create    *widget.Button
	start     *widget.Button
	pause     *widget.Button
	resume    *widget.Button
	skip      *widget.Button
	extend    *widget.Button
	done      *widget.Button
	nextCycle *widget.Button
	cancel    *widget.Button
}

// New creates the session window. goalMinutes prefills the work length field.
func New(app fyne.App, controller Controller, goalMinutes, extendMinutes int) *Window {
	window := app.NewWindow("StudyFocus")

	sessionWindow := &Window{
		window:         window,
		controller:     controller,
		subject:        widget.NewEntry(),
		task:           widget.NewEntry(),
		minutes:        widget.NewEntry(),
		stateLabel:     widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		labelsLabel:    widget.NewLabel(""),
		remainingLabel: widget.NewLabel(""),
		cycleLabel:     widget.NewLabel(""),
		progress:       widget.NewProgressBar(),
	}
	sessionWindow.subject.SetPlaceHolder("Subject")
	sessionWindow.task.SetPlaceHolder("Task")
	sessionWindow.minutes.SetText(strconv.Itoa(goalMinutes))
	sessionWindow.technique = widget.NewSelect(model.Techniques(), sessionWindow.handleTechnique)

	sessionWindow.create = widget.NewButton("Set goal", sessionWindow.handleCreate)
	sessionWindow.start = widget.NewButton("Start", func() { controller.Start() })
	sessionWindow.pause = widget.NewButton("Pause", func() { controller.Pause() })
	sessionWindow.resume = widget.NewButton("Resume", func() { controller.Resume() })
	sessionWindow.skip = widget.NewButton("Skip break", func() { controller.SkipBreak() })
	sessionWindow.extend = widget.NewButton(fmt.Sprintf("+%d min break", extendMinutes), func() { controller.ExtendBreak() })
	sessionWindow.done = widget.NewButton("Mark done", func() { controller.MarkDone() })
	sessionWindow.nextCycle = widget.NewButton("Next cycle", sessionWindow.handleNextCycle)
	sessionWindow.cancel = widget.NewButton("Cancel", func() { controller.Cancel() })

	setup := container.NewVBox(
		widget.NewLabelWithStyle("Focus goal", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sessionWindow.technique,
		sessionWindow.subject,
		sessionWindow.task,
		container.NewHBox(widget.NewLabel("Work length"), sessionWindow.minutes, widget.NewLabel("min")),
		sessionWindow.create,
	)
	status := container.NewVBox(
		sessionWindow.stateLabel,
		sessionWindow.labelsLabel,
		sessionWindow.remainingLabel,
		sessionWindow.progress,
		sessionWindow.cycleLabel,
	)
	buttons := container.NewGridWithColumns(4,
		sessionWindow.start, sessionWindow.pause, sessionWindow.resume, sessionWindow.done,
		sessionWindow.skip, sessionWindow.extend, sessionWindow.nextCycle, sessionWindow.cancel,
	)

	window.SetContent(container.NewBorder(setup, buttons, nil, nil, status))
	window.Resize(fyne.NewSize(460, 420))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	sessionWindow.technique.SetSelected(model.TechniquePomodoro)
	sessionWindow.Apply(timekeeper.Event{Type: timekeeper.EventStateChange, State: model.StateIdle})
	return sessionWindow
}

// Show displays the window.
func (sessionWindow *Window) Show() {
	sessionWindow.window.Show()
	sessionWindow.window.RequestFocus()
}

// SetExtendMinutes relabels the extend-break button.
func (sessionWindow *Window) SetExtendMinutes(minutes int) {
	sessionWindow.extend.SetText(fmt.Sprintf("+%d min break", minutes))
}

// SetGoalMinutes prefills the work length field.
func (sessionWindow *Window) SetGoalMinutes(minutes int) {
	sessionWindow.minutes.SetText(strconv.Itoa(minutes))
}

// Apply renders a keeper event. It must run on the fyne main goroutine.
func (sessionWindow *Window) Apply(event timekeeper.Event) {
	sessionWindow.stateLabel.SetText(Title(event.State))

	session, live := sessionWindow.controller.Snapshot()
	if live {
		sessionWindow.labelsLabel.SetText(fmt.Sprintf("%s · %s (%s)", session.Subject, session.Task, session.Technique.Name))
		sessionWindow.remainingLabel.SetText(format.TimeRemaining(session.Remaining))
		sessionWindow.progress.SetValue(session.Progress())
		if session.Technique.Cyclic() {
			sessionWindow.cycleLabel.SetText(fmt.Sprintf("Cycle %d of %d", session.CurrentCycle, session.Technique.CyclesBeforeLongBreak))
		} else {
			sessionWindow.cycleLabel.SetText("")
		}
	} else {
		sessionWindow.labelsLabel.SetText("")
		sessionWindow.remainingLabel.SetText("")
		sessionWindow.progress.SetValue(0)
		sessionWindow.cycleLabel.SetText("")
	}

	if event.Type == timekeeper.EventSessionCompleted {
		sessionWindow.remainingLabel.SetText("Time spent: " + format.TimeSpent(event.Record.TimeSpent))
	}

	sessionWindow.applyControls(ControlsFor(event.State, live))
}

func (sessionWindow *Window) applyControls(controls Controls) {
	toggle(sessionWindow.create, controls.Create)
	toggle(sessionWindow.start, controls.Start)
	toggle(sessionWindow.pause, controls.Pause)
	toggle(sessionWindow.resume, controls.Resume)
	toggle(sessionWindow.skip, controls.SkipBreak)
	toggle(sessionWindow.extend, controls.Extend)
	toggle(sessionWindow.done, controls.MarkDone)
	toggle(sessionWindow.nextCycle, controls.NextCycle)
	toggle(sessionWindow.cancel, controls.Cancel)
}

func (sessionWindow *Window) handleTechnique(technique string) {
	if NeedsMinutes(technique) {
		sessionWindow.minutes.Enable()
		return
	}
	sessionWindow.minutes.Disable()
}

func (sessionWindow *Window) handleCreate() {
	technique := sessionWindow.technique.Selected
	minutes := 0
	if NeedsMinutes(technique) {
		parsed, err := strconv.Atoi(strings.TrimSpace(sessionWindow.minutes.Text))
		if err != nil {
			dialog.ShowError(errors.New("work length must be a number of minutes"), sessionWindow.window)
			return
		}
		minutes = parsed
	}

	err := sessionWindow.controller.CreateSession(technique, sessionWindow.subject.Text, sessionWindow.task.Text, minutes)
	if err != nil {
		dialog.ShowError(err, sessionWindow.window)
	}
}

func (sessionWindow *Window) handleNextCycle() {
	sessionWindow.controller.StartNextCycle(sessionWindow.subject.Text, sessionWindow.task.Text)
}

func toggle(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
