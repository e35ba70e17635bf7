package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bubblers",
	Short: "Run and check declarative terminal applications",
	Long: `bubblers runs terminal applications described in a YAML app file and
checks app files before they ship.

Examples:
  bubblers run app.yaml echo hello      # Dispatch "echo hello" against app.yaml
  bubblers run app.yaml input_form      # Show the input_form widget
  bubblers validate app.yaml            # Check an app file
  bubblers widgets                      # List widget kinds
  bubblers config set debug true        # Enable debug logging`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(widgetsCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bubblers version %s (%s)\n", Version, Commit)
	},
}
