package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iheanyi/bubblers/pkg/clibuilder"
	"github.com/iheanyi/bubblers/pkg/config"
)

var runCmd = &cobra.Command{
	Use:   "run <app-file> [args]...",
	Short: "Run an application described by an app file",
	Long: `Load an app file and dispatch the remaining arguments against it.

Every argument after the app file belongs to the application, flags
included. Handlers available to app files run this way:
  echo    prints "Echo: " followed by its arguments
  print   prints each argument on its own line

Examples:
  bubblers run app.yaml --help
  bubblers run app.yaml echo hello world
  bubblers run app.yaml menu`,
	DisableFlagParsing: true,
	RunE:               runRun,
}

// builtinHandlers returns the handlers app files run by bubblers may name
func builtinHandlers(w io.Writer) config.Handlers {
	return config.Handlers{
		"echo": func(args []string) {
			fmt.Fprintf(w, "Echo: %s\n", strings.Join(args, " "))
		},
		"print": func(args []string) {
			for _, arg := range args {
				fmt.Fprintln(w, arg)
			}
		},
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		return cmd.Help()
	}

	out := cmd.OutOrStdout()
	cfg, err := config.LoadFile(args[0], builtinHandlers(out))
	if err != nil {
		return err
	}

	logger := clibuilder.Setup(cfg.AppName)
	return clibuilder.Run(cmd.Context(), cfg, args[1:],
		clibuilder.WithOutput(out, cmd.ErrOrStderr()),
		clibuilder.WithLogger(logger))
}
