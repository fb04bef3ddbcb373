package timerwindow

import (
	"context"
	"image/color"
	"strconv"
	"strings"

	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"
	"timetimer/internal/ui/animation"
	"timetimer/internal/ui/dial"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the countdown surface the window drives.
type Controller interface {
	Toggle()
	Reset()
	SetDuration(minutes int)
	Snapshot() countdown.Snapshot
}

// Callbacks defines window action handlers.
type Callbacks struct {
	OnStyleChange func(model.Style)
	OnReplayChime func()
}

var (
	lightText = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xff}
	darkText  = color.NRGBA{R: 0xF9, G: 0xFA, B: 0xFB, A: 0xff}
	readoutBg = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xff}
)

// Window is the main timer window.
type Window struct {
	window     fyne.Window
	controller Controller
	callbacks  Callbacks
	face       model.Face
	style      model.Style
	blinker    *animation.Blinker

	background   *canvas.Rectangle
	title        *canvas.Text
	subtitle     *canvas.Text
	styleLabel   *canvas.Text
	styleButtons map[model.Style]*widget.Button
	dial         *dial.Dial
	readout      *canvas.Text
	minus        *widget.Button
	plus         *widget.Button
	minutes      *widget.Entry
	presetLabel  *canvas.Text
	presets      []*widget.Button
	toggle       *widget.Button
	reset        *widget.Button
	status       *canvas.Text
	replay       *widget.Button
}

// New creates the timer window. blinker may be nil to disable the expiry blink.
func New(app fyne.App, config model.Config, controller Controller, callbacks Callbacks, blinker *animation.Blinker) *Window {
	timer := &Window{
		window:       app.NewWindow("Time Timer"),
		controller:   controller,
		callbacks:    callbacks,
		face:         config.Face,
		style:        config.Style,
		blinker:      blinker,
		styleButtons: make(map[model.Style]*widget.Button),
	}
	if !timer.style.Valid() {
		timer.style = model.StyleClassic
	}
	palette := dial.PaletteFor(timer.style)

	timer.background = canvas.NewRectangle(palette.Background)
	timer.title = newText("Time Timer", 28, true)
	timer.subtitle = newText("Visual time management", 14, false)
	timer.styleLabel = newText("Choose Style", 13, true)
	timer.presetLabel = newText("Quick Presets", 13, true)

	var styleRow []fyne.CanvasObject
	for _, style := range model.Styles() {
		style := style
		button := widget.NewButton(style.DisplayName(), func() {
			timer.SetStyle(style)
			if timer.callbacks.OnStyleChange != nil {
				timer.callbacks.OnStyleChange(style)
			}
		})
		timer.styleButtons[style] = button
		styleRow = append(styleRow, button)
	}

	timer.dial = dial.New(palette)

	timer.readout = canvas.NewText("--:--", palette.Readout)
	timer.readout.TextSize = 32
	timer.readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timer.readout.Alignment = fyne.TextAlignCenter
	readoutBox := container.NewStack(canvas.NewRectangle(readoutBg), container.NewPadded(timer.readout))

	timer.minutes = widget.NewEntry()
	timer.minutes.OnChanged = timer.handleMinutesChanged
	timer.minutes.OnSubmitted = timer.handleMinutesEntry
	timer.minus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		timer.controller.SetDuration(timer.controller.Snapshot().Minutes() - 1)
	})
	timer.plus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		timer.controller.SetDuration(timer.controller.Snapshot().Minutes() + 1)
	})
	minutesBox := container.NewGridWrap(fyne.NewSize(80, timer.minutes.MinSize().Height), timer.minutes)

	presets := config.Presets
	if len(presets) == 0 {
		presets = model.DefaultPresets()
	}
	var presetRow []fyne.CanvasObject
	for _, minutes := range presets {
		minutes := minutes
		button := widget.NewButton(strconv.Itoa(minutes)+"m", func() {
			timer.controller.SetDuration(minutes)
		})
		timer.presets = append(timer.presets, button)
		presetRow = append(presetRow, button)
	}

	timer.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		timer.controller.Toggle()
	})
	timer.reset = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		timer.controller.Reset()
	})

	timer.status = newText("Time's Up!", 22, true)
	timer.replay = widget.NewButtonWithIcon("Play Chime Again", theme.VolumeUpIcon(), func() {
		if timer.callbacks.OnReplayChime != nil {
			timer.callbacks.OnReplayChime()
		}
	})

	content := container.NewVBox(
		timer.title,
		timer.subtitle,
		timer.styleLabel,
		centered(styleRow...),
		container.NewGridWrap(fyne.NewSize(340, 340), timer.dial.Object()),
		centered(readoutBox),
		centered(timer.minus, minutesBox, timer.plus),
		centered(timer.toggle, timer.reset),
		timer.status,
		centered(timer.replay),
		timer.presetLabel,
		centered(presetRow...),
	)
	timer.window.SetContent(container.NewStack(timer.background, container.NewPadded(centered(content))))
	timer.window.Resize(fyne.NewSize(560, 820))

	timer.applyStyle()
	timer.Update(controller.Snapshot())
	return timer
}

// Show displays the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// Window returns the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// Style returns the selected style.
func (timer *Window) Style() model.Style {
	return timer.style
}

// SetStyle switches the visual theme.
func (timer *Window) SetStyle(style model.Style) {
	if !style.Valid() {
		return
	}
	timer.style = style
	timer.applyStyle()
}

// HandleEvent reacts to a countdown event. It must run on the UI goroutine.
func (timer *Window) HandleEvent(event countdown.Event) {
	timer.Update(event.Snapshot)
	if timer.blinker == nil {
		return
	}
	switch {
	case event.Type == countdown.EventComplete:
		timer.blinker.Start(context.Background())
	case event.Snapshot.State() != countdown.StateExpired && timer.blinker.Active():
		timer.blinker.Stop()
	}
}

// SetReadoutVisible shows or hides the digital readout text.
func (timer *Window) SetReadoutVisible(visible bool) {
	if visible {
		timer.readout.Show()
	} else {
		timer.readout.Hide()
	}
}

// Update refreshes every widget from snapshot.
func (timer *Window) Update(snapshot countdown.Snapshot) {
	timer.dial.SetFraction(snapshot.Fraction(timer.face))

	timer.readout.Text = snapshot.Clock()
	timer.readout.Refresh()

	minutes := strconv.Itoa(snapshot.Minutes())
	if timer.minutes.Text != minutes {
		timer.minutes.SetText(minutes)
	}
	setEnabled(timer.minutes, !snapshot.Running)
	setEnabled(timer.minus, snapshot.Minutes() > model.MinMinutes)
	setEnabled(timer.plus, snapshot.Minutes() < model.MaxMinutes)
	for _, preset := range timer.presets {
		setEnabled(preset, !snapshot.Running)
	}

	if snapshot.Running {
		timer.toggle.SetText("Pause")
		timer.toggle.SetIcon(theme.MediaPauseIcon())
		timer.toggle.Importance = widget.DangerImportance
	} else {
		timer.toggle.SetText("Start")
		timer.toggle.SetIcon(theme.MediaPlayIcon())
		timer.toggle.Importance = widget.SuccessImportance
	}
	timer.toggle.Refresh()

	if snapshot.State() == countdown.StateExpired {
		timer.status.Show()
		timer.replay.Show()
	} else {
		timer.status.Hide()
		timer.replay.Hide()
	}
}

// handleMinutesChanged applies whole numbers as they are typed. Empty or
// partial input waits for submit.
func (timer *Window) handleMinutesChanged(text string) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || minutes <= 0 {
		return
	}
	if model.ClampMinutes(minutes) == timer.controller.Snapshot().Minutes() {
		return
	}
	timer.controller.SetDuration(minutes)
	timer.Update(timer.controller.Snapshot())
}

func (timer *Window) handleMinutesEntry(text string) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || minutes == 0 {
		minutes = model.MinMinutes
	}
	timer.controller.SetDuration(minutes)
	timer.Update(timer.controller.Snapshot())
}

func (timer *Window) applyStyle() {
	palette := dial.PaletteFor(timer.style)
	timer.background.FillColor = palette.Background
	timer.background.Refresh()
	timer.dial.SetPalette(palette)
	timer.readout.Color = palette.Readout
	timer.readout.Refresh()

	textColor := lightText
	if palette.Dark {
		textColor = darkText
	}
	for _, text := range []*canvas.Text{timer.title, timer.subtitle, timer.styleLabel, timer.presetLabel, timer.status} {
		text.Color = textColor
		text.Refresh()
	}

	for style, button := range timer.styleButtons {
		button.Importance = widget.MediumImportance
		if style == timer.style {
			button.Importance = widget.HighImportance
		}
		button.Refresh()
	}
}

type enabler interface {
	Enable()
	Disable()
}

func setEnabled(target enabler, enabled bool) {
	if enabled {
		target.Enable()
		return
	}
	target.Disable()
}

func newText(text string, size float32, bold bool) *canvas.Text {
	label := canvas.NewText(text, lightText)
	label.TextSize = size
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: bold}
	return label
}

func centered(objects ...fyne.CanvasObject) *fyne.Container {
	row := []fyne.CanvasObject{layout.NewSpacer()}
	row = append(row, objects...)
	row = append(row, layout.NewSpacer())
	return container.NewHBox(row...)
}
