package tray

import (
	"fmt"
	"strconv"

	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"

	"fyne.io/fyne/v2"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnQuickStart  func(minutes int)
	OnReplayChime func()
	OnQuit        func()
}

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Manager handles system tray state.
type Manager struct {
	app        MenuSetter
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	quickStart *fyne.MenuItem
	chimeItem  *fyne.MenuItem
	lastStatus string
	lastToggle string
}

// New creates a tray manager with the provided callbacks and presets.
func New(app MenuSetter, presets []int, style model.Style, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	var presetItems []*fyne.MenuItem
	for _, minutes := range presets {
		minutes := minutes
		presetItems = append(presetItems, fyne.NewMenuItem(strconv.Itoa(minutes)+" minutes", func() {
			if manager.callbacks.OnQuickStart != nil {
				manager.callbacks.OnQuickStart(minutes)
			}
		}))
	}
	manager.quickStart = fyne.NewMenuItem("Quick start", nil)
	manager.quickStart.ChildMenu = fyne.NewMenu("", presetItems...)

	manager.chimeItem = fyne.NewMenuItem(chimeLabel(style), func() {
		if manager.callbacks.OnReplayChime != nil {
			manager.callbacks.OnReplayChime()
		}
	})

	manager.refreshMenu()
	return manager
}

// Update refreshes the status and toggle labels from snapshot. The menu is
// rebuilt only when a label changes.
func (manager *Manager) Update(snapshot countdown.Snapshot) {
	status, toggle := Labels(snapshot)
	if status == manager.lastStatus && toggle == manager.lastToggle {
		return
	}
	manager.lastStatus = status
	manager.lastToggle = toggle
	manager.statusItem.Label = status
	manager.toggleItem.Label = toggle
	manager.refreshMenu()
}

// SetStyle updates the chime item to name style.
func (manager *Manager) SetStyle(style model.Style) {
	label := chimeLabel(style)
	if manager.chimeItem.Label == label {
		return
	}
	manager.chimeItem.Label = label
	manager.refreshMenu()
}

func chimeLabel(style model.Style) string {
	return fmt.Sprintf("Play chime (%s)", style.DisplayName())
}

// Labels returns the status line and the toggle item label for snapshot.
func Labels(snapshot countdown.Snapshot) (string, string) {
	switch snapshot.State() {
	case countdown.StateRunning:
		return fmt.Sprintf("Status: %s running", snapshot.Clock()), "Pause"
	case countdown.StateExpired:
		return "Status: time's up", "Start"
	default:
		if snapshot.Paused {
			return fmt.Sprintf("Status: %s paused", snapshot.Clock()), "Resume"
		}
		return fmt.Sprintf("Status: %s ready", snapshot.Clock()), "Start"
	}
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("TimeTimer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.quickStart,
		manager.chimeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
