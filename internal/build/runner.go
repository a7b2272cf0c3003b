package build

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes one external command to completion. A non-zero exit is an
// error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as child processes sharing the caller's
// terminal streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if name == "" {
		return ErrEmptyCommand
	}
	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		cerr := &CommandError{Args: append([]string{name}, args...), ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
		}
		return cerr
	}
	return nil
}
