// Package clibuilder turns a config.CliConfig into a cobra command tree and
// dispatches parsed invocations to the configured actions.
package clibuilder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iheanyi/bubblers/pkg/config"
)

// Build translates cfg into a cobra command tree with one subcommand per
// configured command. Actions are not consulted; the tree only carries
// names, help text and argument validation.
func Build(cfg *config.CliConfig) *cobra.Command {
	root := &cobra.Command{
		Use:     cfg.AppName,
		Short:   cfg.About,
		Long:    cfg.About,
		Version: cfg.Version,
		Args:    rootArgs,
		RunE:    noop,
		// SuggestionsFor does not default this to 2 on its own
		SuggestionsMinimumDistance: 2,
		// Errors are reported once, by the caller
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	for _, c := range cfg.Commands {
		root.AddCommand(buildCommand(c))
	}
	return root
}

func noop(*cobra.Command, []string) error { return nil }

// rootArgs rejects tokens that did not resolve to a subcommand
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	msg := fmt.Sprintf("unrecognized subcommand '%s'", args[0])
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += "\n\nDid you mean this?\n\t" + strings.Join(suggestions, "\n\t")
	}
	return errors.New(msg)
}

func buildCommand(c *config.CommandConfig) *cobra.Command {
	args := c.Args
	return &cobra.Command{
		Use:   usage(c),
		Short: c.Description,
		Long:  longHelp(c),
		Args: func(cmd *cobra.Command, tokens []string) error {
			_, err := BindArgs(args, tokens)
			return err
		},
		RunE: noop,
	}
}

// argSynopsis renders one argument for a usage line
func argSynopsis(arg config.ArgConfig, last bool) string {
	s := "[" + arg.Name + "]"
	if arg.Required {
		s = "<" + arg.Name + ">"
	}
	if last {
		s += "..."
	}
	return s
}

// usage returns the command's usage line, e.g. "echo <message>..."
func usage(c *config.CommandConfig) string {
	parts := []string{c.Name}
	for i, arg := range c.Args {
		parts = append(parts, argSynopsis(arg, i == len(c.Args)-1))
	}
	return strings.Join(parts, " ")
}

// longHelp appends an argument table to the description
func longHelp(c *config.CommandConfig) string {
	if len(c.Args) == 0 {
		return c.Description
	}

	width := 0
	for i, arg := range c.Args {
		if n := len(argSynopsis(arg, i == len(c.Args)-1)); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(c.Description)
	b.WriteString("\n\nArguments:\n")
	for i, arg := range c.Args {
		help := arg.Help
		if arg.Required {
			help += " (required)"
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", width, argSynopsis(arg, i == len(c.Args)-1), strings.TrimSpace(help))
	}
	return strings.TrimRight(b.String(), "\n")
}

// BindArgs assigns positional tokens to declared arguments. Argument i
// takes token i and the last argument takes every remaining token.
// It fails when a required argument has no token, or when tokens are given
// to a command that declares no arguments.
func BindArgs(args []config.ArgConfig, tokens []string) (map[string][]string, error) {
	bound := make(map[string][]string, len(args))

	if len(args) == 0 {
		if len(tokens) > 0 {
			return nil, fmt.Errorf("unexpected argument '%s' found", tokens[0])
		}
		return bound, nil
	}

	var missing []string
	for i, arg := range args {
		switch {
		case i >= len(tokens):
			if arg.Required {
				missing = append(missing, "<"+arg.Name+">")
			}
		case i == len(args)-1:
			bound[arg.Name] = tokens[i:]
		default:
			bound[arg.Name] = tokens[i : i+1]
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("the following required arguments were not provided: %s", strings.Join(missing, ", "))
	}
	return bound, nil
}

// Values flattens bound values in declaration order. The result is never nil.
func Values(args []config.ArgConfig, bound map[string][]string) []string {
	values := []string{}
	for _, arg := range args {
		values = append(values, bound[arg.Name]...)
	}
	return values
}
