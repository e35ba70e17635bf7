// Package settings loads the runtime settings of a bubblers application
// from its settings file and the environment.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings controls logging and terminal behaviour
type Settings struct {
	Debug     bool `yaml:"debug"`
	NoColor   bool `yaml:"no_color"`
	AltScreen bool `yaml:"alt_screen"`

	// Path info (not serialized)
	Path string `yaml:"-"`
}

// Default returns the settings used when no file exists
func Default() *Settings {
	return &Settings{AltScreen: true}
}

// DefaultConfigDir returns the directory holding per-application settings
func DefaultConfigDir() string {
	// Check BUBBLERS_HOME first
	if home := os.Getenv("BUBBLERS_HOME"); home != "" {
		return home
	}

	// Check XDG_CONFIG_HOME
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}

	// Default to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bubblers"
	}
	return filepath.Join(homeDir, ".config")
}

// AppDirName turns an application name into a directory name:
// lowercased, with runs of unsafe characters replaced by a single dash.
func AppDirName(appName string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(appName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	name := strings.Trim(b.String(), "-.")
	if name == "" {
		return "bubblers"
	}
	return name
}

// PathFor returns the settings file path of appName
func PathFor(appName string) string {
	return filepath.Join(DefaultConfigDir(), AppDirName(appName), "settings.yaml")
}

// Load loads the settings of appName from the default location
func Load(appName string) (*Settings, error) {
	return LoadFrom(PathFor(appName))
}

// LoadFrom loads settings from path. A missing file yields the defaults.
// Environment variables override the file.
func LoadFrom(path string) (*Settings, error) {
	s, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFile loads settings from path without applying the environment.
// A missing file yields the defaults.
func ReadFile(path string) (*Settings, error) {
	s := Default()
	s.Path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return s, nil
}

// Keys lists the setting names accepted by Get and Set
var Keys = []string{"debug", "no_color", "alt_screen"}

func (s *Settings) field(key string) (*bool, error) {
	switch key {
	case "debug":
		return &s.Debug, nil
	case "no_color":
		return &s.NoColor, nil
	case "alt_screen":
		return &s.AltScreen, nil
	}
	return nil, fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys, ", "))
}

// Get returns the value of the named setting
func (s *Settings) Get(key string) (bool, error) {
	f, err := s.field(key)
	if err != nil {
		return false, err
	}
	return *f, nil
}

// Set parses value as a boolean and assigns it to the named setting
func (s *Settings) Set(key, value string) error {
	f, err := s.field(key)
	if err != nil {
		return err
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	*f = v
	return nil
}

// applyEnv applies BUBBLERS_DEBUG, NO_COLOR and BUBBLERS_ALT_SCREEN
func (s *Settings) applyEnv() error {
	if v := os.Getenv("BUBBLERS_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BUBBLERS_DEBUG %q: %w", v, err)
		}
		s.Debug = debug
	}

	// https://no-color.org: any non-empty value disables colour
	if os.Getenv("NO_COLOR") != "" {
		s.NoColor = true
	}

	if v := os.Getenv("BUBBLERS_ALT_SCREEN"); v != "" {
		alt, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BUBBLERS_ALT_SCREEN %q: %w", v, err)
		}
		s.AltScreen = alt
	}
	return nil
}

// Save writes the settings to Path
func (s *Settings) Save() error {
	if s.Path == "" {
		return fmt.Errorf("settings path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}
