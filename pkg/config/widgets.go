package config

import (
	"time"

	"github.com/iheanyi/bubblers/pkg/tui"
)

// The Add* builders register commands backed by a tui widget. The widget is
// configured here, at registration time; the resulting commands take no
// command-line arguments.

// AddInput registers a single-line text input. The submitted text is printed.
func (c *CliConfig) AddInput(name, description, placeholder, initialText, label string) *CliConfig {
	opts := tui.InputOptions{
		Label:       label,
		Placeholder: placeholder,
		InitialText: initialText,
	}
	return c.AddCommand(NewUIWithReturn(name, description, func() (string, bool, error) {
		return tui.Input(opts)
	}))
}

// AddTextArea registers a multi-line text area showing visibleLines rows.
// The submitted text is printed.
func (c *CliConfig) AddTextArea(name, description, label string, visibleLines int) *CliConfig {
	return c.AddCommand(NewUIWithReturn(name, description, func() (string, bool, error) {
		return tui.TextArea(label, visibleLines)
	}))
}

// AddLoader registers a spinner showing message in the given style
func (c *CliConfig) AddLoader(name, description, message, style string) *CliConfig {
	return c.AddLoaderFor(name, description, message, style, tui.DefaultLoaderDuration)
}

// AddLoaderFor is AddLoader with an explicit spin duration
func (c *CliConfig) AddLoaderFor(name, description, message, style string, d time.Duration) *CliConfig {
	opts := tui.LoaderOptions{Message: message, Style: style, Duration: d}
	return c.AddCommand(NewUI(name, description, func() error {
		return tui.Loader(opts)
	}))
}

// AddTable registers a scrollable table
func (c *CliConfig) AddTable(name, description string, headers []string, rows [][]string) *CliConfig {
	return c.AddCommand(NewUI(name, description, func() error {
		return tui.Table(headers, rows)
	}))
}

// AddProgressBar registers a progress bar that fills from progress (0 to 1)
// to completion. Colors are hex strings; empty strings use the theme colors.
func (c *CliConfig) AddProgressBar(name, description, prefix string, progress float64, length int, startColor, endColor string) *CliConfig {
	opts := tui.ProgressOptions{
		Prefix:     prefix,
		Start:      progress,
		Length:     length,
		StartColor: startColor,
		EndColor:   endColor,
	}
	return c.AddCommand(NewUI(name, description, func() error {
		return tui.TimedProgress(opts)
	}))
}

// AddTimer registers a countdown of d
func (c *CliConfig) AddTimer(name, description string, d time.Duration) *CliConfig {
	return c.AddCommand(NewUI(name, description, func() error {
		return tui.Timer(d)
	}))
}

// AddStopwatch registers a stopwatch
func (c *CliConfig) AddStopwatch(name, description string) *CliConfig {
	return c.AddCommand(NewUI(name, description, tui.Stopwatch))
}

// AddViewport registers a read-only viewer for the text file at filePath
func (c *CliConfig) AddViewport(name, description, filePath string) *CliConfig {
	return c.AddCommand(NewUI(name, description, func() error {
		return tui.Viewport(filePath)
	}))
}

// AddItemList registers a filterable list. The chosen item's title is printed.
func (c *CliConfig) AddItemList(name, description string, items []tui.Item, title string) *CliConfig {
	return c.AddCommand(NewUIWithReturn(name, description, func() (string, bool, error) {
		return tui.ItemList(items, title)
	}))
}

// AddMenuList registers a single-choice menu. The chosen entry is printed.
func (c *CliConfig) AddMenuList(name, description string, items []string, title, subtitle string) *CliConfig {
	return c.AddCommand(NewUIWithReturn(name, description, func() (string, bool, error) {
		return tui.MenuList(items, title, subtitle)
	}))
}
