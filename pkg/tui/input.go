package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputOptions configures the single-line text input
type InputOptions struct {
	Label       string
	Placeholder string
	InitialText string
	Helper      string // shown under the input; defaults to the key hints
	Prompt      string // defaults to "> "
}

// inputModel is the Bubble Tea model for the text input widget
type inputModel struct {
	input     textinput.Model
	label     string
	helper    string
	keys      keyMap
	submitted bool
	cancelled bool
}

func newInputModel(o InputOptions) inputModel {
	ti := textinput.New()
	ti.Placeholder = o.Placeholder
	ti.Prompt = o.Prompt
	if ti.Prompt == "" {
		ti.Prompt = "> "
	}
	ti.PromptStyle = PromptStyle
	ti.PlaceholderStyle = PlaceholderStyle
	ti.Width = 48
	ti.SetValue(o.InitialText)
	ti.CursorEnd()
	ti.Focus()

	helper := o.Helper
	if helper == "" {
		helper = "enter to submit • esc to cancel"
	}

	return inputModel{
		input:  ti,
		label:  o.Label,
		helper: helper,
		keys:   newKeyMap(),
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.label != "" {
		b.WriteString(LabelStyle.Render(m.label))
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(HelperStyle.Render(m.helper))
	return ContainerStyle.Render(b.String())
}

// Input shows a single-line text input and returns the submitted text.
// ok is false when the user cancelled.
func Input(o InputOptions) (value string, ok bool, err error) {
	final, err := run(newInputModel(o))
	if err != nil {
		return "", false, fmt.Errorf("input: %w", err)
	}
	m := final.(inputModel)
	if !m.submitted {
		return "", false, nil
	}
	return m.input.Value(), true, nil
}
