package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLoaderDuration is how long the loader spins when no duration is set
const DefaultLoaderDuration = 3 * time.Second

// spinnerStyles maps loader style names to spinner animations
var spinnerStyles = map[string]spinner.Spinner{
	"line":      spinner.Line,
	"dots":      spinner.Dot,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"monkey":    spinner.Monkey,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
	"ellipsis":  spinner.Ellipsis,
}

// SpinnerStyleNames returns the accepted loader style names, sorted
func SpinnerStyleNames() []string {
	names := make([]string, 0, len(spinnerStyles))
	for name := range spinnerStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoaderOptions configures the loader
type LoaderOptions struct {
	Message  string
	Style    string        // one of SpinnerStyleNames; unknown names use "dots"
	Duration time.Duration // defaults to DefaultLoaderDuration
}

// loaderDoneMsg is sent when the loader's duration has elapsed
type loaderDoneMsg struct{}

// loaderModel is the Bubble Tea model for the loader
type loaderModel struct {
	spinner  spinner.Model
	message  string
	duration time.Duration
	keys     keyMap
	done     bool
	aborted  bool
}

func newLoaderModel(o LoaderOptions) loaderModel {
	style, ok := spinnerStyles[strings.ToLower(o.Style)]
	if !ok {
		style = spinner.Dot
	}
	duration := o.Duration
	if duration <= 0 {
		duration = DefaultLoaderDuration
	}

	return loaderModel{
		spinner:  spinner.New(spinner.WithSpinner(style), spinner.WithStyle(SpinnerStyle)),
		message:  o.Message,
		duration: duration,
		keys:     newKeyMap(),
	}
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.duration, func(time.Time) tea.Msg { return loaderDoneMsg{} }),
	)
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loaderDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m loaderModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return ContainerStyle.Render(m.spinner.View() + " " + MessageStyle.Render(m.message))
}

// Loader shows a spinner with message for the configured duration, then
// prints "Operation completed.".
func Loader(o LoaderOptions) error {
	final, err := run(newLoaderModel(o))
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	if final.(loaderModel).aborted {
		fmt.Fprintln(stdout, "Operation aborted.")
		return nil
	}
	fmt.Fprintln(stdout, "Operation completed.")
	return nil
}
