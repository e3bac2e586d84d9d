// Package clangformat runs clang-format in place over a list of files.
package clangformat

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Summary lines printed at the end of a run.
const (
	AppliedMessage = "Clang-format applied to all source and header files."
	NoFilesMessage = "No source or header files found."
)

// Formatter invokes Executable once per file, sequentially.
type Formatter struct {
	Executable string      // Resolved formatter name, see ResolveExecutable.
	Runner     Runner      // Defaults to ExecRunner.
	Out        io.Writer   // Summary destination, defaults to os.Stdout.
	Logger     *zap.Logger // Defaults to a no-op logger.
}

// Apply runs the formatter with InPlaceFlag on every file in order and
// prints one summary line to Out.
//
// A formatter that runs but fails is ignored and the next file is processed.
// Any other runner error, such as a missing executable, stops the run and is
// returned without printing a summary.
func (f *Formatter) Apply(files []string) error {
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := f.Out
	if out == nil {
		out = os.Stdout
	}
	runner := f.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	executable := f.Executable
	if executable == "" {
		executable = DefaultExecutable
	}

	if len(files) == 0 {
		logger.Debug("No files to format")
		_, err := fmt.Fprintln(out, NoFilesMessage)
		return err
	}

	logger.Debug("Formatting files", zap.String("executable", executable), zap.Int("fileCount", len(files)))
	for _, file := range files {
		err := runner.Run(executable, InPlaceFlag, file)
		switch {
		case err == nil:
			logger.Debug("Formatted file", zap.String("filePath", file))
		case errors.Is(err, ErrProcessFailed):
			logger.Debug("Formatter failed, continuing", zap.String("filePath", file), zap.Error(err))
		default:
			logger.Error("Failed to run formatter",
				zap.String("executable", executable),
				zap.String("filePath", file),
				zap.Error(err))
			return fmt.Errorf("failed to run %s on %s: %w", executable, file, err)
		}
	}

	_, err := fmt.Fprintln(out, AppliedMessage)
	return err
}
