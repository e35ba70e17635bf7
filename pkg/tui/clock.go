package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

const clockInterval = 100 * time.Millisecond

// timerModel counts down from a duration
type timerModel struct {
	timer    timer.Model
	help     help.Model
	keys     keyMap
	quitting bool
}

func newTimerModel(d time.Duration) timerModel {
	return timerModel{
		timer: timer.NewWithInterval(d, clockInterval),
		help:  help.New(),
		keys:  newKeyMap(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.timer.Toggle()
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	if m.quitting {
		return ""
	}
	label := "Time remaining"
	if !m.timer.Running() {
		label = "Paused"
	}
	return ContainerStyle.Render(
		SubtitleStyle.Render(label) + "\n\n" +
			ClockStyle.Render(m.timer.View()) + "\n\n" +
			m.help.View(bindings{m.keys.Toggle, m.keys.Quit}),
	)
}

// Timer counts down d and returns when it reaches zero or the user quits.
// A non-positive d has nothing to count and returns at once.
func Timer(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if _, err := run(newTimerModel(d)); err != nil {
		return fmt.Errorf("timer: %w", err)
	}
	return nil
}

// stopwatchModel counts up from zero
type stopwatchModel struct {
	stopwatch stopwatch.Model
	help      help.Model
	keys      keyMap
	quitting  bool
}

func newStopwatchModel() stopwatchModel {
	return stopwatchModel{
		stopwatch: stopwatch.NewWithInterval(clockInterval),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

func (m stopwatchModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

func (m stopwatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.stopwatch.Toggle()
		case key.Matches(msg, m.keys.Reset):
			return m, m.stopwatch.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m stopwatchModel) View() string {
	if m.quitting {
		return ""
	}
	return ContainerStyle.Render(
		SubtitleStyle.Render("Elapsed") + "\n\n" +
			ClockStyle.Render(m.stopwatch.View()) + "\n\n" +
			m.help.View(bindings{m.keys.Toggle, m.keys.Reset, m.keys.Quit}),
	)
}

// Stopwatch counts up until the user quits
func Stopwatch() error {
	if _, err := run(newStopwatchModel()); err != nil {
		return fmt.Errorf("stopwatch: %w", err)
	}
	return nil
}
