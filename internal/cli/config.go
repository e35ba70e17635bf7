package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/iheanyi/bubblers/pkg/output"
	"github.com/iheanyi/bubblers/pkg/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit application settings",
	Long: `View and edit the settings file of a bubblers application.

Settings: debug, no_color, alt_screen. BUBBLERS_DEBUG, NO_COLOR and
BUBBLERS_ALT_SCREEN override the file at run time.

Examples:
  bubblers config                          # Show settings of the bubblers tool
  bubblers config --app MyCLI              # Show settings of MyCLI
  bubblers config get debug
  bubblers config set alt_screen false --app MyCLI
  bubblers config edit                     # Open in editor`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the settings file in an editor",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the settings file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configApp string

func init() {
	configCmd.PersistentFlags().StringVar(&configApp, "app", "bubblers", "Application name")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
}

// loadAppSettings reads the settings file of the selected app without
// environment overrides, so saving it back never persists them
func loadAppSettings() (*settings.Settings, error) {
	s, err := settings.ReadFile(settings.PathFor(configApp))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := loadAppSettings()
	if err != nil {
		return err
	}

	out := output.DefaultWriter()
	out.Out = cmd.OutOrStdout()

	out.Println("Settings for %s", configApp)
	out.Println("")
	out.Println("  Path: %s", s.Path)
	for _, key := range settings.Keys {
		v, _ := s.Get(key)
		out.Println("  %s: %t", key, v)
	}
	out.Println("")
	out.Info("Use 'bubblers config set <key> <value>' to change a setting")
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	s, err := loadAppSettings()
	if err != nil {
		return err
	}

	v, err := s.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	s, err := loadAppSettings()
	if err != nil {
		return err
	}
	if err := s.Set(key, value); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	out := output.DefaultWriter()
	out.Out = cmd.OutOrStdout()
	v, _ := s.Get(key)
	out.Success("Set %s = %t", key, v)
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	s, err := loadAppSettings()
	if err != nil {
		return err
	}

	// The editor needs a file to open
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		if err := s.Save(); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	// Determine editor
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vim"
	}

	editorCmd := exec.Command(editor, s.Path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	return editorCmd.Run()
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), settings.PathFor(configApp))
	return nil
}
