// Package tui provides the full-screen widgets bubblers commands run: text
// input, text area, loader, table, progress bar, timer, stopwatch, viewport,
// item list and menu list. Each widget blocks until the user leaves it.
package tui

import (
	"errors"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when a widget is started without a terminal
var ErrNotInteractive = errors.New("this command requires an interactive terminal")

// Options configures how widgets are run
type Options struct {
	// AltScreen runs widgets in the terminal's alternate screen buffer
	AltScreen bool
	Logger    *slog.Logger
}

var (
	opts = Options{AltScreen: true, Logger: slog.Default()}

	// stdout receives the lines widgets print after their session ends
	stdout io.Writer = os.Stdout
)

// Configure replaces the options used by subsequent widgets
func Configure(o Options) {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	opts = o
}

// terminalSession owns the terminal for the duration of one widget.
// The state captured on acquire is restored by release.
type terminalSession interface {
	release()
}

type ttySession struct {
	fd    int
	state *term.State
}

// acquire checks that in is a terminal and snapshots its state
func acquire(in, out *os.File) (terminalSession, error) {
	// Anything printed before the widget must reach the terminal first
	if err := out.Sync(); err != nil {
		// Terminals reject fsync with EINVAL
		opts.Logger.Debug("sync before widget failed", "error", err)
	}

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotInteractive
	}

	state, err := term.GetState(fd)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("terminal acquired", "fd", fd)
	return &ttySession{fd: fd, state: state}, nil
}

func (s *ttySession) release() {
	if err := term.Restore(s.fd, s.state); err != nil {
		opts.Logger.Warn("failed to restore terminal", "error", err)
		return
	}
	opts.Logger.Debug("terminal restored", "fd", s.fd)
}

// openSession and runProgram are replaced in tests
var (
	openSession = func() (terminalSession, error) {
		return acquire(os.Stdin, os.Stdout)
	}

	runProgram = func(m tea.Model, options ...tea.ProgramOption) (tea.Model, error) {
		return tea.NewProgram(m, options...).Run()
	}
)

// run executes m inside a terminal session. The session is released on
// every path out of run, including panics raised by the model.
func run(m tea.Model) (tea.Model, error) {
	s, err := openSession()
	if err != nil {
		return nil, err
	}
	defer s.release()

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	return runProgram(m, programOpts...)
}
