package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/require"

	"github.com/iheanyi/bubblers/internal/logging"
)

// fakeSession counts releases
type fakeSession struct {
	released *int
}

func (f fakeSession) release() { *f.released++ }

// fakeTerminal replaces the terminal and program runner for one test.
// The program runner feeds msgs to the model in order; commands are dropped.
func fakeTerminal(t *testing.T, msgs ...tea.Msg) *int {
	t.Helper()

	origSession, origRun, origStdout := openSession, runProgram, stdout
	t.Cleanup(func() {
		openSession, runProgram, stdout = origSession, origRun, origStdout
	})

	released := new(int)
	openSession = func() (terminalSession, error) {
		return fakeSession{released: released}, nil
	}
	runProgram = func(m tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		for _, msg := range msgs {
			m, _ = m.Update(msg)
		}
		return m, nil
	}
	return released
}

// isQuit reports whether cmd produces tea.QuitMsg
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func noTerminal(t *testing.T) {
	t.Helper()
	orig := openSession
	t.Cleanup(func() { openSession = orig })
	openSession = func() (terminalSession, error) {
		return nil, ErrNotInteractive
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAcquireRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = acquire(r, w)
	require.ErrorIs(t, err, ErrNotInteractive)
}

func TestAcquireLogsSyncFailure(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	origOpts := opts
	t.Cleanup(func() { opts = origOpts })
	var logs bytes.Buffer
	Configure(Options{Logger: logging.New(&logs, "", true)})

	_, err = acquire(r, w)
	require.ErrorIs(t, err, ErrNotInteractive)
	require.Contains(t, logs.String(), "sync before widget failed")
}

func TestInputSubmit(t *testing.T) {
	released := fakeTerminal(t, keyMsg(" Ada"), keyMsg("enter"))

	value, ok, err := Input(InputOptions{Label: "Your Name", InitialText: "Hi"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Hi Ada", value)
	require.Equal(t, 1, *released)
}

func TestInputCancel(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			released := fakeTerminal(t, keyMsg("typed"), keyMsg(k))

			value, ok, err := Input(InputOptions{})
			require.NoError(t, err)
			require.False(t, ok)
			require.Empty(t, value)
			require.Equal(t, 1, *released)
		})
	}
}

func TestInputNotInteractive(t *testing.T) {
	noTerminal(t)

	_, _, err := Input(InputOptions{})
	require.ErrorIs(t, err, ErrNotInteractive)
}

func TestSessionReleasedOnProgramError(t *testing.T) {
	released := fakeTerminal(t)
	boom := errors.New("program failed")
	runProgram = func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
		return nil, boom
	}

	err := Stopwatch()
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, *released)
}

func TestSessionReleasedOnPanic(t *testing.T) {
	released := fakeTerminal(t)
	runProgram = func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
		panic("model exploded")
	}

	require.Panics(t, func() { _ = Stopwatch() })
	require.Equal(t, 1, *released)
}

func TestRunUsesAltScreenOption(t *testing.T) {
	fakeTerminal(t)
	origOpts := opts
	t.Cleanup(func() { opts = origOpts })

	var got int
	runProgram = func(m tea.Model, options ...tea.ProgramOption) (tea.Model, error) {
		got = len(options)
		return m, nil
	}

	Configure(Options{AltScreen: true})
	_, err := run(newStopwatchModel())
	require.NoError(t, err)
	require.Equal(t, 1, got)

	Configure(Options{AltScreen: false})
	_, err = run(newStopwatchModel())
	require.NoError(t, err)
	require.Equal(t, 0, got)
	require.NotNil(t, opts.Logger)
}

func TestInputView(t *testing.T) {
	m := newInputModel(InputOptions{Label: "Your Name", Placeholder: "Your name"})
	view := m.View()
	require.Contains(t, view, "Your Name")
	require.Contains(t, view, "enter to submit")

	m = newInputModel(InputOptions{Helper: "Ctrl+C to exit", Prompt: "$ "})
	require.Contains(t, m.View(), "Ctrl+C to exit")
	require.Contains(t, m.View(), "$ ")
}

func TestTextAreaSubmit(t *testing.T) {
	fakeTerminal(t, keyMsg("why not"), keyMsg("ctrl+s"))

	value, ok, err := TextArea("Write why do you like this TUI", 6)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "why not", value)
}

func TestTextAreaEscape(t *testing.T) {
	fakeTerminal(t, keyMsg("draft"), keyMsg("esc"))

	_, ok, err := TextArea("Notes", 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTextAreaEnterDoesNotSubmit(t *testing.T) {
	m := newTextAreaModel("Notes", 3)
	updated, cmd := m.Update(keyMsg("enter"))
	require.False(t, isQuit(cmd))
	require.False(t, updated.(textAreaModel).submitted)
}

func TestLoader(t *testing.T) {
	fakeTerminal(t, loaderDoneMsg{})
	var buf bytes.Buffer
	stdout = &buf

	require.NoError(t, Loader(LoaderOptions{Message: "Loading", Style: "moon"}))
	require.Equal(t, "Operation completed.\n", buf.String())
}

func TestLoaderAbort(t *testing.T) {
	fakeTerminal(t, keyMsg("ctrl+c"))
	var buf bytes.Buffer
	stdout = &buf

	require.NoError(t, Loader(LoaderOptions{Message: "Loading"}))
	require.Equal(t, "Operation aborted.\n", buf.String())
}

func TestLoaderDefaults(t *testing.T) {
	m := newLoaderModel(LoaderOptions{Style: "unknown"})
	require.Equal(t, DefaultLoaderDuration, m.duration)
	require.NotNil(t, m.Init())
	require.NotEmpty(t, m.View())
}

func TestSpinnerStyleNames(t *testing.T) {
	names := SpinnerStyleNames()
	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, "dots")
	require.Len(t, names, len(spinnerStyles))
}

func TestTableColumns(t *testing.T) {
	cols := tableColumns([]string{"Name", "Occupation"}, [][]string{
		{"Ada Lovelace", "Mathematician"},
		{"Bob", "Builder"},
	})
	require.Len(t, cols, 2)
	require.Equal(t, len("Ada Lovelace"), cols[0].Width)
	require.Equal(t, len("Mathematician"), cols[1].Width)
}

func TestTableRowsPadded(t *testing.T) {
	rows := tableRows([]string{"A", "B"}, [][]string{{"1"}, {"1", "2", "3"}})
	require.Equal(t, 2, len(rows[0]))
	require.Equal(t, "", rows[0][1])
	require.Equal(t, 2, len(rows[1]))
}

func TestTableQuit(t *testing.T) {
	released := fakeTerminal(t, keyMsg("down"), keyMsg("q"))
	require.NoError(t, Table([]string{"Name"}, [][]string{{"a"}, {"b"}}))
	require.Equal(t, 1, *released)
}

func TestTableView(t *testing.T) {
	m := newTableModel([]string{"Name", "Age"}, [][]string{{"Ada", "36"}})
	view := m.View()
	require.Contains(t, view, "Name")
	require.Contains(t, view, "Ada")
	require.Contains(t, view, "quit")
}

func TestTableViewShowsEveryRow(t *testing.T) {
	rows := [][]string{{"Ada", "36"}, {"Bob", "41"}, {"Cy", "29"}}
	view := newTableModel([]string{"Name", "Age"}, rows).View()
	for _, row := range rows {
		require.Contains(t, view, row[0])
	}
	require.NotContains(t, view, "NameAge")
}

func TestTableViewSingleRow(t *testing.T) {
	view := newTableModel([]string{"Name"}, [][]string{{"Ada"}}).View()
	require.Contains(t, view, "Ada")
}

func TestTimerWithoutDurationReturns(t *testing.T) {
	released := fakeTerminal(t)
	opened := false
	openSession = func() (terminalSession, error) {
		opened = true
		return fakeSession{released: released}, nil
	}

	require.NoError(t, Timer(0))
	require.NoError(t, Timer(-time.Second))
	require.False(t, opened)
}

func TestTableFallsBackToText(t *testing.T) {
	noTerminal(t)
	origStdout := stdout
	t.Cleanup(func() { stdout = origStdout })
	var buf bytes.Buffer
	stdout = &buf

	require.NoError(t, Table([]string{"Name", "Age"}, [][]string{{"Ada", "36"}}))
	require.Equal(t, "NAME  AGE\nAda   36\n", buf.String())
}

func TestProgressCompletes(t *testing.T) {
	m := newProgressModel(ProgressOptions{Prefix: "Downloading", Start: 0.95})

	var model tea.Model = m
	for i := 0; i < 20; i++ {
		var cmd tea.Cmd
		model, cmd = model.Update(progressTickMsg{})
		p := model.(progressModel)
		require.LessOrEqual(t, p.percent, 1.0)
		if isQuit(cmd) {
			require.True(t, p.done)
			return
		}
	}
	t.Fatal("progress bar never completed")
}

func TestProgressOptions(t *testing.T) {
	m := newProgressModel(ProgressOptions{Start: 2, Length: 0})
	require.Equal(t, 1.0, m.percent)
	require.Equal(t, 40, m.bar.Width)

	m = newProgressModel(ProgressOptions{Start: -1, Length: 25})
	require.Equal(t, 0.0, m.percent)
	require.Equal(t, 25, m.bar.Width)
	require.Contains(t, m.View(), "0%")
}

func TestTimedProgress(t *testing.T) {
	released := fakeTerminal(t, progressTickMsg{}, progressTickMsg{})
	require.NoError(t, TimedProgress(ProgressOptions{Start: 1}))
	require.Equal(t, 1, *released)
}

func TestProgressAbort(t *testing.T) {
	m := newProgressModel(ProgressOptions{})
	updated, cmd := m.Update(keyMsg("esc"))
	require.True(t, isQuit(cmd))
	require.True(t, updated.(progressModel).aborted)
}

func TestTimerTimeout(t *testing.T) {
	m := newTimerModel(0)
	updated, cmd := m.Update(timer.TimeoutMsg{ID: m.timer.ID()})
	require.True(t, isQuit(cmd))
	require.True(t, updated.(timerModel).quitting)
	require.Empty(t, updated.View())
}

func TestTimerQuit(t *testing.T) {
	released := fakeTerminal(t, keyMsg("q"))
	require.NoError(t, Timer(time.Minute))
	require.Equal(t, 1, *released)
}

func TestStopwatchQuit(t *testing.T) {
	m := newStopwatchModel()
	require.Contains(t, m.View(), "Elapsed")

	updated, cmd := m.Update(keyMsg("q"))
	require.True(t, isQuit(cmd))
	require.True(t, updated.(stopwatchModel).quitting)
}

func TestViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("first line\nsecond line\n"), 0644))

	released := fakeTerminal(t, keyMsg("q"))
	require.NoError(t, Viewport(path))
	require.Equal(t, 1, *released)
}

func TestViewportView(t *testing.T) {
	m := newViewportModel("notes.txt", "first line\nsecond line")
	view := m.View()
	require.Contains(t, view, "notes.txt")
	require.Contains(t, view, "first line")
}

func TestViewportMissingFileSkipsTerminal(t *testing.T) {
	released := fakeTerminal(t)
	opened := false
	openSession = func() (terminalSession, error) {
		opened = true
		return fakeSession{released: released}, nil
	}

	err := Viewport(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.False(t, opened)
}

func TestItemListSelect(t *testing.T) {
	items := []Item{{Name: "Apples", Desc: "Red"}, {Name: "Pears", Desc: "Green"}}

	fakeTerminal(t, tea.WindowSizeMsg{Width: 80, Height: 24}, keyMsg("down"), keyMsg("enter"))
	value, ok, err := ItemList(items, "Fruit")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Pears", value)
}

func TestItemListCancel(t *testing.T) {
	fakeTerminal(t, keyMsg("ctrl+c"))
	_, ok, err := ItemList([]Item{{Name: "Apples"}}, "Fruit")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestItemListEmptyEnter(t *testing.T) {
	fakeTerminal(t, keyMsg("enter"))
	_, ok, err := ItemList(nil, "Nothing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestItemInterfaces(t *testing.T) {
	i := Item{Name: "Apples", Desc: "Red"}
	require.Equal(t, "Apples", i.Title())
	require.Equal(t, "Red", i.Description())
	require.Equal(t, "Apples", i.FilterValue())
}

func TestMenuList(t *testing.T) {
	tests := []struct {
		name    string
		formErr error
		wantOK  bool
		wantErr bool
	}{
		{name: "submitted", wantOK: true},
		{name: "aborted", formErr: huh.ErrUserAborted},
		{name: "failed", formErr: errors.New("tty gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			released := fakeTerminal(t)
			origForm := runForm
			t.Cleanup(func() { runForm = origForm })
			runForm = func(*huh.Form) error { return tt.formErr }

			_, ok, err := MenuList([]string{"Start", "Stop"}, "Menu", "Choose one")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, 1, *released)
		})
	}
}

func TestMenuListNoItems(t *testing.T) {
	noTerminal(t)
	_, ok, err := MenuList(nil, "Menu", "")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestViewsEmptyAfterQuit(t *testing.T) {
	in := newInputModel(InputOptions{Label: "x"})
	in.submitted = true
	require.Empty(t, in.View())

	ta := newTextAreaModel("x", 2)
	ta.cancelled = true
	require.Empty(t, ta.View())

	require.True(t, strings.TrimSpace(newLoaderModel(LoaderOptions{Message: "spin"}).View()) != "")
}
