// File: pkg/clangformat/runner.go
package clangformat

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var (
	// ErrProcessFailed marks a formatter process that started but did not exit cleanly.
	ErrProcessFailed = errors.New("formatter process failed")
	// ErrExecutableUnavailable marks a formatter process that could not be started.
	ErrExecutableUnavailable = errors.New("formatter executable unavailable")
)

// Runner runs an external program to completion.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs programs with os/exec. The child inherits the parent's
// standard streams, environment and working directory.
type ExecRunner struct{}

// Run starts name with args and blocks until it exits. A non-zero exit is
// reported as ErrProcessFailed; a failure to start as ErrExecutableUnavailable.
func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %w", ErrProcessFailed, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutableUnavailable, err)
}
