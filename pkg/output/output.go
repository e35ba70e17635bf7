// Package output writes diagnostics and plain-text tables for bubblers
// applications.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Writer handles formatted output (inspired by gh CLI's iostreams)
type Writer struct {
	Out    io.Writer
	Err    io.Writer
	IsaTTY bool
}

// DefaultWriter creates a writer for stdout/stderr
func DefaultWriter() *Writer {
	return &Writer{
		Out:    os.Stdout,
		Err:    os.Stderr,
		IsaTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Success prints a success message with a checkmark
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w.Out, "✓ %s\n", msg)
}

// Error prints an error message with an X
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w.Err, "✗ %s\n", msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w.Out, "• %s\n", msg)
}

// Println prints a message with newline
func (w *Writer) Println(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w.Out, msg)
}

// Table represents a simple table for output
type Table struct {
	Headers []string
	Rows    [][]string
	Out     io.Writer
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Rows:    [][]string{},
		Out:     os.Stdout,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// pad left-aligns s in a field of width display cells
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Render outputs the table. Cells beyond the header count are dropped.
func (t *Table) Render() {
	if len(t.Headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	// Print header
	var headerParts []string
	for i, h := range t.Headers {
		headerParts = append(headerParts, pad(strings.ToUpper(h), widths[i]))
	}
	fmt.Fprintln(t.Out, strings.TrimRight(strings.Join(headerParts, "  "), " "))

	// Print rows
	for _, row := range t.Rows {
		var rowParts []string
		for i, cell := range row {
			if i < len(widths) {
				rowParts = append(rowParts, pad(cell, widths[i]))
			}
		}
		fmt.Fprintln(t.Out, strings.TrimRight(strings.Join(rowParts, "  "), " "))
	}
}
