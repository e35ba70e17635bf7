package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// namePattern matches safe identifiers for commands and arguments:
// alphanumeric, dash, underscore, and dot, starting with an alphanumeric.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateName checks that name can be used as a command or argument name.
//
// The function:
// - Rejects empty names
// - Rejects names containing whitespace
// - Rejects names starting with a dash (they would parse as flags)
// - Rejects names that don't match the safe character pattern
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("name cannot contain whitespace: %q", name)
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("name cannot start with '-': %q", name)
	}

	if !namePattern.MatchString(name) {
		return fmt.Errorf("name contains invalid characters (must be alphanumeric, dash, underscore, or dot, and start with alphanumeric): %q", name)
	}

	return nil
}

// Validate checks the description for problems that would make dispatch
// ambiguous: bad names, duplicate commands or arguments, and arguments
// declared on UI commands. All problems are reported together.
func (c *CliConfig) Validate() error {
	var errs []error

	if c.AppName == "" {
		errs = append(errs, errors.New("application name cannot be empty"))
	}

	seen := make(map[string]bool)
	for i, cmd := range c.Commands {
		if cmd == nil {
			errs = append(errs, fmt.Errorf("command %d is nil", i))
			continue
		}
		if err := ValidateName(cmd.Name); err != nil {
			errs = append(errs, fmt.Errorf("command %d: %w", i, err))
			continue
		}
		if seen[cmd.Name] {
			errs = append(errs, fmt.Errorf("duplicate command %q", cmd.Name))
		}
		seen[cmd.Name] = true

		if cmd.Kind() != Standard && len(cmd.Args) > 0 {
			errs = append(errs, fmt.Errorf("command %q: %s commands do not accept arguments", cmd.Name, cmd.Kind()))
		}

		argSeen := make(map[string]bool)
		for _, arg := range cmd.Args {
			if err := ValidateName(arg.Name); err != nil {
				errs = append(errs, fmt.Errorf("command %q: argument: %w", cmd.Name, err))
				continue
			}
			if argSeen[arg.Name] {
				errs = append(errs, fmt.Errorf("command %q: duplicate argument %q", cmd.Name, arg.Name))
			}
			argSeen[arg.Name] = true
		}
	}

	return errors.Join(errs...)
}
