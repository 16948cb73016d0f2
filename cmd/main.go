package main

import (
	"fmt"

	"studyfocus/internal/core/format"
	"studyfocus/internal/core/history"
	"studyfocus/internal/core/model"
	"studyfocus/internal/core/timekeeper"
	"studyfocus/internal/logging"
	"studyfocus/internal/platform"
	"studyfocus/internal/storage"
	uihistory "studyfocus/internal/ui/history"
	"studyfocus/internal/ui/preferences"
	"studyfocus/internal/ui/session"
	"studyfocus/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"
)

const appName = "StudyFocus"

func main() {
	settings, settingsErr := storage.LoadSettings(appName)
	logger := logging.New("app", logging.Options{Level: settings.LogLevel})
	if settingsErr != nil {
		logger.WithError(settingsErr).Warn("using default settings")
	}

	lock, err := platform.Lock(appName)
	if err != nil {
		logger.WithError(err).Error("single instance")
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID("com.studyfocus.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	completed := history.New()
	keeperConfig := settings.TimeKeeperConfig()
	keeperConfig.Logger = logging.New("timekeeper", logging.Options{Level: settings.LogLevel})
	keeper := timekeeper.New(completed, keeperConfig)

	sessionWindow := session.New(fyneApp, keeper, settings.GoalMinutes, settings.ExtendBreakMinutes)
	historyWindow := uihistory.New(fyneApp, completed)
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		keeper.UpdateConfig(settings.TimeKeeperConfig())
		sessionWindow.SetGoalMinutes(settings.GoalMinutes)
		sessionWindow.SetExtendMinutes(settings.ExtendBreakMinutes)
		if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
			keeperConfig.Logger.Logger.SetLevel(level)
			logger.Logger.SetLevel(level)
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.WithError(err).Warn("save settings")
		}
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnOpen:        sessionWindow.Show,
			OnHistory:     historyWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnTogglePause: func() {
				if keeper.State() == model.StatePaused {
					keeper.Resume()
				} else {
					keeper.Pause()
				}
			},
			OnSkipBreak:   func() { keeper.SkipBreak() },
			OnExtendBreak: func() { keeper.ExtendBreak() },
			OnMarkDone:    func() { keeper.MarkDone() },
			OnCancel:      func() { keeper.Cancel() },
			OnQuit: func() {
				keeper.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.MediaPlayIcon())
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	// Only mobile hosts stop running the app in the background.
	if fyne.CurrentDevice().IsMobile() {
		fyneApp.Lifecycle().SetOnExitedForeground(keeper.Suspend)
		fyneApp.Lifecycle().SetOnEnteredForeground(keeper.Wake)
	}

	events := keeper.Subscribe(64)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				handleEvent(fyneApp, event, keeper, sessionWindow, historyWindow, trayManager)
			})
		}
	}()

	keeper.StartTicking()
	sessionWindow.Show()
	fyneApp.Run()
	keeper.Stop()
}

func handleEvent(fyneApp fyne.App, event timekeeper.Event, keeper *timekeeper.TimeKeeper, sessionWindow *session.Window, historyWindow *uihistory.Window, trayManager *tray.Manager) {
	sessionWindow.Apply(event)

	switch event.Type {
	case timekeeper.EventTick:
		if trayManager != nil {
			trayManager.SetStatus(format.Countdown(event.Remaining))
		}
	case timekeeper.EventStateChange:
		if trayManager != nil {
			_, live := keeper.Snapshot()
			trayManager.SetState(event.State, live)
			if desktopApp, ok := fyneApp.(desktop.App); ok {
				if event.State == model.StatePaused {
					desktopApp.SetSystemTrayIcon(theme.MediaPauseIcon())
				} else {
					desktopApp.SetSystemTrayIcon(theme.MediaPlayIcon())
				}
			}
		}
	case timekeeper.EventPhaseComplete:
		if event.Phase == model.PhaseWork {
			fyneApp.SendNotification(fyne.NewNotification("Work phase finished", fmt.Sprintf("Cycle %d is done.", event.Cycle)))
		} else {
			fyneApp.SendNotification(fyne.NewNotification("Break is over", "Start the next cycle when you are ready."))
		}
	case timekeeper.EventSessionCompleted:
		historyWindow.Refresh()
		fyneApp.SendNotification(fyne.NewNotification("Session complete",
			fmt.Sprintf("%s: %s", event.Record.Subject, format.TimeSpent(event.Record.TimeSpent))))
	}
}
