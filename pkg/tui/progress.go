package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Progress advances one step of progressStep every progressInterval
const (
	progressStep     = 0.01
	progressInterval = 10 * time.Millisecond
)

// ProgressOptions configures the timed progress bar
type ProgressOptions struct {
	Prefix     string
	Start      float64 // starting fraction, 0 to 1
	Length     int     // bar width in cells
	StartColor string  // gradient start, hex
	EndColor   string  // gradient end, hex
}

type progressTickMsg struct{}

// progressModel is the Bubble Tea model for the timed progress bar
type progressModel struct {
	bar     progress.Model
	prefix  string
	percent float64
	keys    keyMap
	done    bool
	aborted bool
}

func newProgressModel(o ProgressOptions) progressModel {
	startColor, endColor := o.StartColor, o.EndColor
	if startColor == "" {
		startColor = DefaultProgressStart
	}
	if endColor == "" {
		endColor = DefaultProgressEnd
	}
	width := o.Length
	if width <= 0 {
		width = 40
	}

	return progressModel{
		bar:     progress.New(progress.WithGradient(startColor, endColor), progress.WithWidth(width)),
		prefix:  o.Prefix,
		percent: clampPercent(o.Start),
		keys:    newKeyMap(),
	}
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

func progressTick() tea.Cmd {
	return tea.Tick(progressInterval, func(time.Time) tea.Msg { return progressTickMsg{} })
}

func (m progressModel) Init() tea.Cmd {
	return progressTick()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressTickMsg:
		if m.percent >= 1 {
			m.done = true
			return m, tea.Quit
		}
		m.percent = clampPercent(m.percent + progressStep)
		return m, progressTick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return ContainerStyle.Render(MessageStyle.Render(m.prefix) + " " + m.bar.ViewAs(m.percent))
}

// TimedProgress fills a progress bar from Start to 100% in fixed steps
// and returns when it is full.
func TimedProgress(o ProgressOptions) error {
	if _, err := run(newProgressModel(o)); err != nil {
		return fmt.Errorf("progress bar: %w", err)
	}
	return nil
}
