package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iheanyi/bubblers/pkg/output"
)

const maxTableHeight = 10

// tableModel is the Bubble Tea model for the table viewer
type tableModel struct {
	table table.Model
	help  help.Model
	keys  keyMap
	done  bool
}

// tableColumns sizes each column to its widest cell
func tableColumns(headers []string, rows [][]string) []table.Column {
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, row := range rows {
			if i < len(row) && lipgloss.Width(row[i]) > width {
				width = lipgloss.Width(row[i])
			}
		}
		cols[i] = table.Column{Title: h, Width: width}
	}
	return cols
}

// tableRows pads or truncates every row to the header count
func tableRows(headers []string, rows [][]string) []table.Row {
	out := make([]table.Row, len(rows))
	for i, row := range rows {
		r := make(table.Row, len(headers))
		copy(r, row)
		out[i] = r
	}
	return out
}

func newTableModel(headers []string, rows [][]string) tableModel {
	height := len(rows)
	if height > maxTableHeight {
		height = maxTableHeight
	}
	if height < 1 {
		height = 1
	}

	t := table.New(
		table.WithColumns(tableColumns(headers, rows)),
		table.WithRows(tableRows(headers, rows)),
		table.WithFocused(true),
		// The header line counts against the table height
		table.WithHeight(height+1),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	s.Cell = TableCellStyle
	t.SetStyles(s)

	return tableModel{table: t, help: help.New(), keys: newKeyMap()}
}

func (m tableModel) Init() tea.Cmd {
	return nil
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Quit) {
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m tableModel) View() string {
	if m.done {
		return ""
	}
	return ContainerStyle.Render(
		FrameStyle.Render(m.table.View()) + "\n" +
			m.help.View(bindings{m.keys.Up, m.keys.Down, m.keys.Quit}),
	)
}

// Table shows rows under headers in a scrollable table. Without a terminal
// the table is printed as plain text instead.
func Table(headers []string, rows [][]string) error {
	_, err := run(newTableModel(headers, rows))
	if errors.Is(err, ErrNotInteractive) {
		t := output.NewTable(headers...)
		t.Out = stdout
		for _, row := range rows {
			t.AddRow(row...)
		}
		t.Render()
		return nil
	}
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	return nil
}
