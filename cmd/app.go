package main

import (
	"errors"
	"log"

	"timetimer/internal/chime"
	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"
	"timetimer/internal/platform"
	"timetimer/internal/ui/animation"
	"timetimer/internal/ui/timerwindow"
	"timetimer/internal/ui/tray"
	"timetimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

func runApp(cmd *cobra.Command, args []string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v, raised the running window", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()
	log.Printf("single instance lock held on %s", guard.Address())

	config := loadConfig()

	fyneApp := app.NewWithID("com.timetimer.app")
	fyneApp.SetIcon(resources.MustIcon("icon.svg"))

	engine := countdown.New(config.DefaultMinutes)
	runner, err := countdown.NewRunner(engine, countdown.Config{
		TickInterval: config.TickInterval,
		Dispatch:     fyne.Do,
	})
	if err != nil {
		return err
	}
	player := chime.NewPlayer(chime.Config{Volume: config.ChimeVolume}, chime.NewSpeaker(chime.SampleRate))

	var timerWindow *timerwindow.Window
	blinker := animation.New(animation.DefaultConfig(), func(visible bool) {
		fyne.Do(func() {
			timerWindow.SetReadoutVisible(visible)
		})
	})
	var trayManager *tray.Manager
	timerWindow = timerwindow.New(fyneApp, config, runner, timerwindow.Callbacks{
		OnStyleChange: func(style model.Style) {
			if trayManager != nil {
				trayManager.SetStyle(style)
			}
		},
		OnReplayChime: func() {
			player.Play(timerWindow.Style())
		},
	}, blinker)

	engine.Observe(timerWindow.HandleEvent)
	chime.PlayOnComplete(engine, config.ChimeDelay, timerWindow.Style, player)

	quit := func() {
		runner.Close()
		blinker.Stop()
		fyneApp.Quit()
	}

	mainWindow := timerWindow.Window()
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, config.Presets, timerWindow.Style(), tray.Callbacks{
			OnShow:   timerWindow.Show,
			OnToggle: runner.Toggle,
			OnReset:  runner.Reset,
			OnQuickStart: func(minutes int) {
				runner.Reset()
				runner.SetDuration(minutes)
				runner.Start()
			},
			OnReplayChime: func() {
				player.Play(timerWindow.Style())
			},
			OnQuit: quit,
		})
		trayManager.Update(runner.Snapshot())
		events := engine.Subscribe(16)
		go func() {
			for event := range events {
				snapshot := event.Snapshot
				fyne.Do(func() {
					trayManager.Update(snapshot)
				})
			}
		}()
		desktopApp.SetSystemTrayIcon(resources.MustIcon("tray.svg"))
		mainWindow.SetCloseIntercept(mainWindow.Hide)
	} else {
		log.Printf("system tray unsupported on this platform")
		mainWindow.SetMaster()
		mainWindow.SetOnClosed(quit)
	}

	guard.SetOnActivate(func() {
		fyne.Do(timerWindow.Show)
	})

	timerWindow.Show()
	fyneApp.Run()
	return nil
}
