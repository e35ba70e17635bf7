package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iheanyi/bubblers/pkg/config"
	"github.com/iheanyi/bubblers/pkg/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate <app-file>...",
	Short: "Check app files for errors",
	Long: `Check that each app file parses and describes a valid application.

Handlers other than the built-in ones must be declared with --handler,
since they are bound by the Go program that loads the file.

Examples:
  bubblers validate app.yaml
  bubblers validate app.yaml --handler greet --handler version`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var validateHandlers []string

func init() {
	validateCmd.Flags().StringSliceVarP(&validateHandlers, "handler", "H", nil, "Handler name bound by the loading program (repeatable)")
}

// ValidationResult is the outcome of checking one app file
type ValidationResult struct {
	Path     string
	App      string
	Version  string
	Commands int
	Err      error
}

// validateFile loads path with every handler in names bound to a no-op
func validateFile(path string, names []string) ValidationResult {
	handlers := builtinHandlers(nil)
	for _, name := range names {
		handlers[name] = func([]string) {}
	}

	cfg, err := config.LoadFile(path, handlers)
	if err != nil {
		return ValidationResult{Path: path, Err: err}
	}
	return ValidationResult{
		Path:     path,
		App:      cfg.AppName,
		Version:  cfg.Version,
		Commands: len(cfg.Commands),
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := output.DefaultWriter()
	out.Out = cmd.OutOrStdout()
	out.Err = cmd.ErrOrStderr()

	failed := 0
	for _, path := range args {
		r := validateFile(path, validateHandlers)
		if r.Err != nil {
			failed++
			out.Error("%v", r.Err)
			continue
		}
		out.Success("%s: %s %s, %d commands", r.Path, r.App, r.Version, r.Commands)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d app files failed validation", failed, len(args))
	}
	return nil
}
