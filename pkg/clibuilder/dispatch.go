package clibuilder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iheanyi/bubblers/internal/logging"
	"github.com/iheanyi/bubblers/pkg/config"
	"github.com/iheanyi/bubblers/pkg/output"
	"github.com/iheanyi/bubblers/pkg/settings"
	"github.com/iheanyi/bubblers/pkg/tui"
)

// NoSubcommandMessage is printed when the application runs without a subcommand
const NoSubcommandMessage = "No subcommand was used."

// ErrCommandNotRecognized is matched by the error returned when the parser
// accepts a subcommand the configuration does not contain
var ErrCommandNotRecognized = errors.New("command not recognized")

type notRecognizedError struct {
	name string
}

func (e *notRecognizedError) Error() string {
	return fmt.Sprintf("Command '%s' not recognized.", e.name)
}

func (e *notRecognizedError) Is(target error) bool {
	return target == ErrCommandNotRecognized
}

// Dispatcher parses arguments against a command tree and runs the matching
// command's action
type Dispatcher struct {
	cfg    *config.CliConfig
	out    *output.Writer
	logger *slog.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithOutput sets where results and diagnostics are written
func WithOutput(out, errOut io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = &output.Writer{Out: out, Err: errOut}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// NewDispatcher creates a dispatcher for cfg writing to stdout/stderr
func NewDispatcher(cfg *config.CliConfig, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:    cfg,
		out:    output.DefaultWriter(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run builds the command tree from the configuration and dispatches args
func (d *Dispatcher) Run(ctx context.Context, args []string) error {
	return d.RunTree(ctx, Build(d.cfg), args)
}

// RunTree dispatches args using root for parsing. The matched subcommand is
// resolved by name against the configuration, not the tree.
//
// Usage errors are returned as reported by the parser. A subcommand missing
// from the configuration yields an error matching ErrCommandNotRecognized.
func (d *Dispatcher) RunTree(ctx context.Context, root *cobra.Command, args []string) error {
	var (
		rootRan bool
		matched *cobra.Command
		tokens  []string
	)

	root.RunE = func(*cobra.Command, []string) error {
		rootRan = true
		return nil
	}
	for _, sub := range root.Commands() {
		sub.RunE = func(cmd *cobra.Command, a []string) error {
			matched, tokens = cmd, a
			return nil
		}
	}

	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(d.out.Out)
	root.SetErr(d.out.Err)

	if err := root.ExecuteContext(ctx); err != nil {
		return err
	}

	if matched == nil {
		// --help and --version are answered by the parser itself
		if rootRan {
			d.out.Println(NoSubcommandMessage)
		}
		return nil
	}

	name := matched.Name()
	cmd := d.cfg.Command(name)
	if cmd == nil {
		d.logger.Debug("matched subcommand has no configuration", "command", name)
		return &notRecognizedError{name: name}
	}

	bound, err := BindArgs(cmd.Args, tokens)
	if err != nil {
		return err
	}
	values := Values(cmd.Args, bound)

	d.logger.Debug("dispatching command", "command", name, "kind", cmd.Kind().String(), "args", values)
	if err := cmd.ExecuteAction(d.out.Out, values); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Run dispatches args against cfg
func Run(ctx context.Context, cfg *config.CliConfig, args []string, opts ...Option) error {
	return NewDispatcher(cfg, opts...).Run(ctx, args)
}

// Setup loads the settings of the named application, installs its logger
// as the slog default, and configures the widgets to match. It returns the
// logger.
func Setup(appName string) *slog.Logger {
	s, err := settings.Load(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		s = settings.Default()
	}

	logger := logging.Init(os.Stderr, appName, s.Debug)
	tui.Configure(tui.Options{AltScreen: s.AltScreen, Logger: logger})
	tui.SetNoColor(s.NoColor)
	return logger
}

// Execute is the process entry point for a bubblers application. It sets
// up the application, dispatches os.Args, and exits with status 1 on any
// error.
func Execute(cfg *config.CliConfig) {
	logger := Setup(cfg.AppName)
	if err := Run(context.Background(), cfg, os.Args[1:], WithLogger(logger)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
