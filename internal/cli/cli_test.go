package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testApp = `
name: MyCLI
version: "1.0"
about: A simple CLI
commands:
  - name: echo
    description: Echo the input back to the console
    handler: echo
    args:
      - name: message
        help: Message to echo back
        required: true
  - name: lines
    handler: print
    args:
      - name: values
`

// execute runs the root command with args and returns everything written
// to stdout and stderr
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	validateHandlers, widgetsSpinners, configApp = nil, false, "bubblers"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// isolate points the settings directory at a temporary directory
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("BUBBLERS_HOME", home)
	t.Setenv("BUBBLERS_DEBUG", "")
	t.Setenv("BUBBLERS_ALT_SCREEN", "")
	return home
}

func writeApp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if got != "bubblers version dev (unknown)\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRun(t *testing.T) {
	isolate(t)
	path := writeApp(t, testApp)

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "echo",
			args: []string{"echo", "hello", "world"},
			want: "Echo: hello world\n",
		},
		{
			name: "print",
			args: []string{"lines", "a", "b"},
			want: "a\nb\n",
		},
		{
			name: "no subcommand",
			want: "No subcommand was used.\n",
		},
		{
			name:    "unknown subcommand",
			args:    []string{"bogus"},
			wantErr: "unrecognized subcommand 'bogus'",
		},
		{
			name:    "missing argument",
			args:    []string{"echo"},
			wantErr: "<message>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"run", path}, tt.args...)...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	got, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(got, "Load an app file") {
		t.Errorf("expected run help, got %q", got)
	}
}

func TestRunPassesFlagsToApp(t *testing.T) {
	isolate(t)
	path := writeApp(t, testApp)

	got, err := execute(t, "run", path, "--version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(got, "1.0") {
		t.Errorf("expected the app version, got %q", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read app file") {
		t.Errorf("error = %v", err)
	}
}

func TestWidgets(t *testing.T) {
	got, err := execute(t, "widgets")
	if err != nil {
		t.Fatalf("widgets: %v", err)
	}
	if !strings.HasPrefix(got, "WIDGET") {
		t.Errorf("expected header first, got %q", got)
	}
	for _, w := range widgetCatalog {
		if !strings.Contains(got, w.Kind) {
			t.Errorf("missing widget %q", w.Kind)
		}
	}
}

func TestWidgetsSpinners(t *testing.T) {
	got, err := execute(t, "widgets", "--spinners")
	if err != nil {
		t.Fatalf("widgets: %v", err)
	}
	if !strings.Contains(got, "dots") {
		t.Errorf("expected spinner styles, got %q", got)
	}
	if strings.Contains(got, "menu_list") {
		t.Error("spinner listing should not include widgets")
	}
}

func TestConfigSetGet(t *testing.T) {
	home := isolate(t)

	got, err := execute(t, "config", "set", "debug", "true", "--app", "MyCLI")
	if err != nil {
		t.Fatalf("config set: %v", err)
	}
	if got != "✓ Set debug = true\n" {
		t.Errorf("set output = %q", got)
	}

	path := filepath.Join(home, "mycli", "settings.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	got, err = execute(t, "config", "get", "debug", "--app", "MyCLI")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if got != "true\n" {
		t.Errorf("get output = %q", got)
	}

	got, err = execute(t, "config", "path", "--app", "MyCLI")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got != path+"\n" {
		t.Errorf("path output = %q, want %q", got, path)
	}

	got, err = execute(t, "config", "--app", "MyCLI")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(got, "debug: true") || !strings.Contains(got, "alt_screen: true") {
		t.Errorf("summary = %q", got)
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	isolate(t)

	if _, err := execute(t, "config", "set", "colour", "true"); err == nil {
		t.Error("expected error for unknown setting")
	}
	if _, err := execute(t, "config", "set", "debug", "often"); err == nil {
		t.Error("expected error for non-boolean value")
	}
}
