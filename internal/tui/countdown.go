package tui

import (
	"fmt"

	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 30
	minBarWidth     = 10
)

// --- Messages ---
type startMsg struct{}

// DispatchMsg carries an engine closure into the program's update loop.
type DispatchMsg func()

// Dispatch returns a countdown dispatch func that sends closures through send,
// usually (*tea.Program).Send.
func Dispatch(send func(tea.Msg)) func(func()) {
	return func(fn func()) {
		send(DispatchMsg(fn))
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	clockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 1)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// CountdownModel renders one countdown driven by a countdown.Runner. Every
// runner call happens inside Update.
type CountdownModel struct {
	runner   *countdown.Runner
	face     model.Face
	style    model.Style
	progress progress.Model
	snapshot countdown.Snapshot
	done     bool
	stopped  bool
}

// NewCountdownModel creates the model. The countdown starts with the program.
func NewCountdownModel(runner *countdown.Runner, face model.Face, style model.Style) CountdownModel {
	m := CountdownModel{
		runner:   runner,
		face:     face,
		style:    style,
		progress: progress.New(progress.WithDefaultGradient()),
		snapshot: runner.Snapshot(),
	}
	m.progress.Width = defaultBarWidth
	return m
}

// Completed reports whether the countdown reached zero.
func (m CountdownModel) Completed() bool {
	return m.done
}

// Snapshot returns the last observed engine state.
func (m CountdownModel) Snapshot() countdown.Snapshot {
	return m.snapshot
}

func (m CountdownModel) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		m.runner.Start()
	case DispatchMsg:
		msg()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.stopped = true
			m.runner.Close()
			return m, tea.Quit
		case " ", "p":
			m.runner.Toggle()
		case "r":
			m.runner.Reset()
		}
	case tea.WindowSizeMsg:
		width := msg.Width - 20
		if width > defaultBarWidth*2 {
			width = defaultBarWidth * 2
		}
		if width < minBarWidth {
			width = minBarWidth
		}
		m.progress.Width = width
		return m, nil
	default:
		return m, nil
	}

	m.snapshot = m.runner.Snapshot()
	if m.snapshot.State() == countdown.StateExpired {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m CountdownModel) View() string {
	bar := m.progress.ViewAs(m.snapshot.Fraction(m.face))
	line := fmt.Sprintf("%s %s", bar, clockStyle.Render(m.snapshot.Clock()))
	if m.snapshot.Paused {
		line += pausedStyle.Render(" paused")
	}

	header := titleStyle.Render(fmt.Sprintf("Time Timer · %s", m.style.DisplayName()))
	switch {
	case m.done:
		return header + "\n" + line + "\n" + doneStyle.Render("Time's up!") + "\n"
	case m.stopped:
		return header + "\n" + line + "\n" + helpStyle.Render("stopped") + "\n"
	}
	return header + "\n" + line + "\n" + helpStyle.Render("space: pause/resume  r: reset  q: quit") + "\n"
}
