package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iheanyi/bubblers/pkg/tui"
)

// Widget kinds accepted in an application file
const (
	WidgetInput       = "input"
	WidgetTextArea    = "text_area"
	WidgetLoader      = "loader"
	WidgetTable       = "table"
	WidgetProgressBar = "progress_bar"
	WidgetTimer       = "timer"
	WidgetStopwatch   = "stopwatch"
	WidgetViewport    = "viewport"
	WidgetItemList    = "item_list"
	WidgetMenuList    = "menu_list"
)

// Handlers maps handler names used in an application file to the Standard
// actions they run
type Handlers map[string]StandardFunc

// AppFile is the YAML form of a CliConfig
type AppFile struct {
	Name     string        `yaml:"name"`
	Version  string        `yaml:"version"`
	About    string        `yaml:"about,omitempty"`
	Commands []CommandFile `yaml:"commands"`
}

// CommandFile is one command of an AppFile. Exactly one of Handler and
// Widget is set; the remaining fields configure the widget.
type CommandFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Handler     string      `yaml:"handler,omitempty"`
	Args        []ArgConfig `yaml:"args,omitempty"`

	Widget string `yaml:"widget,omitempty"`

	// input, text_area
	Label        string `yaml:"label,omitempty"`
	Placeholder  string `yaml:"placeholder,omitempty"`
	InitialText  string `yaml:"initial_text,omitempty"`
	VisibleLines int    `yaml:"visible_lines,omitempty"`

	// loader
	Message string `yaml:"message,omitempty"`
	Style   string `yaml:"style,omitempty"`

	// table
	Headers []string   `yaml:"headers,omitempty"`
	Rows    [][]string `yaml:"rows,omitempty"`

	// progress_bar
	Prefix     string  `yaml:"prefix,omitempty"`
	Progress   float64 `yaml:"progress,omitempty"`
	Length     int     `yaml:"length,omitempty"`
	StartColor string  `yaml:"start_color,omitempty"`
	EndColor   string  `yaml:"end_color,omitempty"`

	// loader, timer
	Duration string `yaml:"duration,omitempty"`

	// viewport
	File string `yaml:"file,omitempty"`

	// item_list, menu_list
	Title     string     `yaml:"title,omitempty"`
	Subtitle  string     `yaml:"subtitle,omitempty"`
	Items     []tui.Item `yaml:"items,omitempty"`
	MenuItems []string   `yaml:"menu_items,omitempty"`
}

// LoadFile reads an application description from a YAML file
func LoadFile(path string, handlers Handlers) (*CliConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app file: %w", err)
	}

	cfg, err := Parse(data, handlers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded app file", "path", path, "commands", len(cfg.Commands))
	return cfg, nil
}

// Parse builds a CliConfig from YAML data and validates it
func Parse(data []byte, handlers Handlers) (*CliConfig, error) {
	var f AppFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse app file: %w", err)
	}

	cfg := New(f.Name, f.Version, f.About)
	for i, cf := range f.Commands {
		if err := cf.addTo(cfg, handlers); err != nil {
			name := cf.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("command %s: %w", name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDuration parses s, returning def when s is empty
func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %q", s)
	}
	return d, nil
}

// addTo appends the command described by cf to cfg
func (cf CommandFile) addTo(cfg *CliConfig, handlers Handlers) error {
	switch {
	case cf.Handler != "" && cf.Widget != "":
		return errors.New("handler and widget are mutually exclusive")
	case cf.Handler != "":
		fn, ok := handlers[cf.Handler]
		if !ok {
			return fmt.Errorf("unknown handler %q", cf.Handler)
		}
		cmd := NewStandard(cf.Name, cf.Description, fn)
		for _, arg := range cf.Args {
			cmd.AddArg(arg)
		}
		cfg.AddCommand(cmd)
		return nil
	case cf.Widget == "":
		return errors.New("one of handler or widget is required")
	}

	if len(cf.Args) > 0 {
		return fmt.Errorf("%s widgets do not accept args", cf.Widget)
	}

	switch cf.Widget {
	case WidgetInput:
		cfg.AddInput(cf.Name, cf.Description, cf.Placeholder, cf.InitialText, cf.Label)
	case WidgetTextArea:
		cfg.AddTextArea(cf.Name, cf.Description, cf.Label, cf.VisibleLines)
	case WidgetLoader:
		d, err := parseDuration(cf.Duration, tui.DefaultLoaderDuration)
		if err != nil {
			return err
		}
		cfg.AddLoaderFor(cf.Name, cf.Description, cf.Message, cf.Style, d)
	case WidgetTable:
		if len(cf.Headers) == 0 {
			return errors.New("table requires headers")
		}
		cfg.AddTable(cf.Name, cf.Description, cf.Headers, cf.Rows)
	case WidgetProgressBar:
		cfg.AddProgressBar(cf.Name, cf.Description, cf.Prefix, cf.Progress, cf.Length, cf.StartColor, cf.EndColor)
	case WidgetTimer:
		if cf.Duration == "" {
			return errors.New("timer requires a duration")
		}
		d, err := parseDuration(cf.Duration, 0)
		if err != nil {
			return err
		}
		cfg.AddTimer(cf.Name, cf.Description, d)
	case WidgetStopwatch:
		cfg.AddStopwatch(cf.Name, cf.Description)
	case WidgetViewport:
		if cf.File == "" {
			return errors.New("viewport requires a file")
		}
		cfg.AddViewport(cf.Name, cf.Description, cf.File)
	case WidgetItemList:
		cfg.AddItemList(cf.Name, cf.Description, cf.Items, cf.Title)
	case WidgetMenuList:
		if len(cf.MenuItems) == 0 {
			return errors.New("menu_list requires menu_items")
		}
		cfg.AddMenuList(cf.Name, cf.Description, cf.MenuItems, cf.Title, cf.Subtitle)
	default:
		return fmt.Errorf("unknown widget %q", cf.Widget)
	}
	return nil
}
