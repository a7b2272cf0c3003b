package build

import (
	"errors"
	"strings"
)

// ErrEmptyCommand indicates a runner was asked to run nothing.
var ErrEmptyCommand = errors.New("build: empty command")

// CommandError wraps a failed external invocation with its argv.
type CommandError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return strings.Join(e.Args, " ") + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
