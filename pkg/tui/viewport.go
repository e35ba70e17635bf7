package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Visible size of the file viewer
const (
	viewportWidth  = 100
	viewportHeight = 20
)

// viewportModel is the Bubble Tea model for the read-only file viewer
type viewportModel struct {
	viewport viewport.Model
	header   string
	help     help.Model
	keys     keyMap
	quitting bool
}

func newViewportModel(header, content string) viewportModel {
	vp := viewport.New(viewportWidth, viewportHeight)
	vp.SetContent(content)

	return viewportModel{
		viewport: vp,
		header:   header,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

func (m viewportModel) Init() tea.Cmd {
	return nil
}

func (m viewportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewportModel) View() string {
	if m.quitting {
		return ""
	}
	footer := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	return ContainerStyle.Render(
		TitleStyle.Render(m.header) + "\n" +
			FrameStyle.Render(m.viewport.View()) + "\n" +
			SubtitleStyle.Render(footer) + "  " +
			m.help.View(bindings{m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown, m.keys.Quit}),
	)
}

// Viewport shows the UTF-8 text file at path, read-only, titled with the
// file's base name. Read errors are returned before the terminal is touched.
func Viewport(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("viewport: failed to read %s: %w", path, err)
	}

	if _, err := run(newViewportModel(filepath.Base(path), string(content))); err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	return nil
}
