package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Poimandres color palette
// Reference: https://github.com/drcmda/poimandres-theme
var (
	// Base colors
	colorBg       = lipgloss.Color("#1b1e28")
	colorFg       = lipgloss.Color("#a6accd")
	colorFgMuted  = lipgloss.Color("#767c9d")
	colorFgSubtle = lipgloss.Color("#506477")
	colorPanel    = lipgloss.Color("#303340")

	// Accent colors
	colorTeal   = lipgloss.Color("#5DE4c7")
	colorCyan   = lipgloss.Color("#89ddff")
	colorPink   = lipgloss.Color("#f087bd")
	colorYellow = lipgloss.Color("#fffac2")
)

// Default progress gradient endpoints
const (
	DefaultProgressStart = "#5DE4c7"
	DefaultProgressEnd   = "#f087bd"
)

// Widget styles
var (
	// Label above an input or text area
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	// Title of lists, menus, and the viewport header
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorTeal).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorFgMuted)

	// Helper text shown under a widget
	HelperStyle = lipgloss.NewStyle().
			Foreground(colorFgSubtle).
			Italic(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorFgSubtle)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	MessageStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Large digits of the timer and stopwatch
	ClockStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorPink)

	// Frame drawn around the viewport and table
	FrameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorFgSubtle)

	// Positions widgets away from the top-left corner
	ContainerStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorFgSubtle).
				BorderBottom(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorBg).
				Background(colorTeal)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)
)

// SetNoColor turns colour output on or off for every widget
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// formTheme returns a Poimandres-inspired theme for huh forms
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused styles
	t.Focused.Base = t.Focused.Base.BorderForeground(colorTeal)
	t.Focused.Title = t.Focused.Title.Foreground(colorTeal)
	t.Focused.Description = t.Focused.Description.Foreground(colorFgMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(colorPink)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(colorPink)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(colorTeal)
	t.Focused.Option = t.Focused.Option.Foreground(colorFg)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(colorTeal)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(colorTeal)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(colorFgMuted)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(colorFgSubtle)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(colorBg).Background(colorTeal)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(colorFg).Background(colorPanel)

	// Blurred styles
	t.Blurred.Base = t.Blurred.Base.BorderForeground(colorFgSubtle)
	t.Blurred.Title = t.Blurred.Title.Foreground(colorFgMuted)
	t.Blurred.Description = t.Blurred.Description.Foreground(colorFgSubtle)

	return t
}
