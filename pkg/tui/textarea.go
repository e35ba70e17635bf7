package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultVisibleLines = 6

// textAreaModel is the Bubble Tea model for the multi-line text area
type textAreaModel struct {
	area      textarea.Model
	label     string
	keys      keyMap
	submitted bool
	cancelled bool
}

func newTextAreaModel(label string, visibleLines int) textAreaModel {
	if visibleLines <= 0 {
		visibleLines = defaultVisibleLines
	}

	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(visibleLines)
	ta.Focus()

	return textAreaModel{
		area:  ta,
		label: label,
		keys:  newKeyMap(),
	}
}

func (m textAreaModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m textAreaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.SubmitArea):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m textAreaModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.label != "" {
		b.WriteString(LabelStyle.Render(m.label))
		b.WriteString("\n\n")
	}
	b.WriteString(m.area.View())
	b.WriteString("\n\n")
	b.WriteString(HelperStyle.Render("ctrl+s to submit • esc to exit"))
	return ContainerStyle.Render(b.String())
}

// TextArea shows a multi-line editor with visibleLines rows and returns the
// submitted text. ok is false when the user left with esc.
func TextArea(label string, visibleLines int) (value string, ok bool, err error) {
	final, err := run(newTextAreaModel(label, visibleLines))
	if err != nil {
		return "", false, fmt.Errorf("text area: %w", err)
	}
	m := final.(textAreaModel)
	if !m.submitted {
		return "", false, nil
	}
	return m.area.Value(), true, nil
}
