// Package config describes a bubblers application: its name, version,
// subcommands, their positional arguments, and the action each one runs.
package config

import (
	"fmt"
	"io"
)

// ArgConfig describes one positional argument of a command
type ArgConfig struct {
	Name     string `yaml:"name"`
	Help     string `yaml:"help,omitempty"`
	Required bool   `yaml:"required,omitempty"`
}

// CommandConfig describes one subcommand
type CommandConfig struct {
	Name        string
	Description string
	Args        []ArgConfig
	Action      Action
}

// NewStandard creates a command whose action receives the parsed arguments
func NewStandard(name, description string, fn StandardFunc) *CommandConfig {
	return &CommandConfig{Name: name, Description: description, Action: NewStandardAction(fn)}
}

// NewUI creates a command that runs a widget and returns nothing
func NewUI(name, description string, fn UIFunc) *CommandConfig {
	return &CommandConfig{Name: name, Description: description, Action: NewUIAction(fn)}
}

// NewUIWithReturn creates a command that runs a widget and prints its value
func NewUIWithReturn(name, description string, fn UIWithReturnFunc) *CommandConfig {
	return &CommandConfig{Name: name, Description: description, Action: NewUIWithReturnAction(fn)}
}

// AddArg appends a positional argument. Only Standard commands receive
// argument values.
func (c *CommandConfig) AddArg(arg ArgConfig) *CommandConfig {
	c.Args = append(c.Args, arg)
	return c
}

// Kind reports the kind of the command's action
func (c *CommandConfig) Kind() ActionKind {
	return c.Action.Kind()
}

// ExecuteAction runs the command's action with args.
// Values returned by UIWithReturn actions are printed to out, one line,
// with NoValue standing in for an absent value.
func (c *CommandConfig) ExecuteAction(out io.Writer, args []string) error {
	result, err := c.Action.Invoke(args)
	if err != nil {
		return err
	}
	if result.Returned {
		fmt.Fprintln(out, result.String())
	}
	return nil
}

// CliConfig is the top-level application description
type CliConfig struct {
	AppName  string
	Version  string
	About    string
	Commands []*CommandConfig
}

// New creates an empty application description
func New(appName, version, about string) *CliConfig {
	return &CliConfig{
		AppName: appName,
		Version: version,
		About:   about,
	}
}

// AddCommand appends a command and returns the config for chaining
func (c *CliConfig) AddCommand(cmd *CommandConfig) *CliConfig {
	c.Commands = append(c.Commands, cmd)
	return c
}

// CommandsList returns the commands in the order they were added
func (c *CliConfig) CommandsList() []*CommandConfig {
	return c.Commands
}

// Command returns the first command named name, or nil
func (c *CliConfig) Command(name string) *CommandConfig {
	for _, cmd := range c.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}
