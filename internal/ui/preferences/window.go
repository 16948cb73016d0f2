package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	goal     *widget.Entry
	extend   *widget.Entry
	demo     *widget.Check
	logLevel *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("StudyFocus Settings")

	goal := widget.NewEntry()
	extend := widget.NewEntry()
	demo := widget.NewCheck("Demo mode (halve every phase)", nil)
	logLevel := widget.NewSelect(logLevels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Default goal length"), goal, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Extend break by"), extend, widget.NewLabel("min")),
		demo,
		widget.NewLabelWithStyle("Diagnostics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
		widget.NewLabel(fmt.Sprintf("Goal length must be between %d and %d minutes.", MinGoalMinutes, MaxGoalMinutes)),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 280))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		goal:     goal,
		extend:   extend,
		demo:     demo,
		logLevel: logLevel,
	}
	prefs.UpdateSettings(settings)
	saveButton.OnTapped = prefs.handleSave

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.goal.SetText(strconv.Itoa(settings.GoalMinutes))
	prefs.extend.SetText(strconv.Itoa(settings.ExtendBreakMinutes))
	prefs.demo.SetChecked(settings.DemoMode)
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.goal.Text); ok {
		settings.GoalMinutes = ClampGoalMinutes(minutes)
	}
	if minutes, ok := parsePositiveInt(prefs.extend.Text); ok {
		settings.ExtendBreakMinutes = minutes
	}
	settings.DemoMode = prefs.demo.Checked
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
