// Package history renders the completed-session log.
package history

import (
	"time"

	corehistory "studyfocus/internal/core/history"
	"studyfocus/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Window lists completed sessions, newest first.
type Window struct {
	window  fyne.Window
	log     *corehistory.Log
	summary *widget.Label
	list    *widget.List
	records []model.CompletedRecord
}

// New creates the history window backed by log.
func New(app fyne.App, log *corehistory.Log) *Window {
	historyWindow := &Window{
		window:  app.NewWindow("My Activity"),
		log:     log,
		summary: widget.NewLabel(""),
	}

	historyWindow.list = widget.NewList(
		func() int {
			return len(historyWindow.records)
		},
		func() fyne.CanvasObject {
			return container.NewVBox(
				widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel(""),
				container.NewHBox(widget.NewLabel(""), widget.NewLabel("")),
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(historyWindow.records) {
				return
			}
			row := RowFor(historyWindow.records[id], time.Now())
			box := item.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(row.Title)
			box.Objects[1].(*widget.Label).SetText(row.Task)
			footer := box.Objects[2].(*fyne.Container)
			footer.Objects[0].(*widget.Label).SetText(row.TimeSpent)
			footer.Objects[1].(*widget.Label).SetText(row.When)
		},
	)

	historyWindow.window.SetContent(container.NewBorder(historyWindow.summary, nil, nil, nil, historyWindow.list))
	historyWindow.window.Resize(fyne.NewSize(420, 480))
	historyWindow.window.SetCloseIntercept(func() {
		historyWindow.window.Hide()
	})
	historyWindow.Refresh()
	return historyWindow
}

// Show refreshes and displays the window.
func (historyWindow *Window) Show() {
	historyWindow.Refresh()
	historyWindow.window.Show()
	historyWindow.window.RequestFocus()
}

// Refresh reloads the log. Relative times are recomputed on every render.
func (historyWindow *Window) Refresh() {
	historyWindow.records = historyWindow.log.Snapshot()
	historyWindow.summary.SetText(Summary(historyWindow.log.Len(), historyWindow.log.TotalTimeSpent()))
	historyWindow.list.Refresh()
}
