// File: cmd/format.go
package cmd

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"srcfmt/pkg/clangformat"
	"srcfmt/pkg/discovery"

	"go.uber.org/zap"
)

// Options holds everything a format run needs. It is built once at start-up
// and passed down explicitly.
type Options struct {
	Roots      []string                 // Directories to walk, relative to the working directory.
	Extensions []string                 // File name suffixes to format.
	GOOS       string                   // Host platform used to resolve the executable.
	LookPath   clangformat.LookPathFunc // Search path lookup used to resolve the executable.
	Runner     clangformat.Runner       // Runs the formatter process.
	Out        io.Writer                // Destination for the summary line; nil means the command's stdout.
}

// DefaultOptions returns the build-time roots and suffixes with host lookups.
func DefaultOptions() Options {
	return Options{
		Roots:      discovery.DefaultRoots,
		Extensions: discovery.DefaultExtensions,
		GOOS:       runtime.GOOS,
		LookPath:   exec.LookPath,
		Runner:     clangformat.ExecRunner{},
	}
}

// RunFormat discovers matching files and runs the formatter over them.
func RunFormat(opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	executable := clangformat.ResolveExecutable(opts.GOOS, opts.LookPath)
	logger.Debug("Resolved formatter executable", zap.String("executable", executable), zap.String("goos", opts.GOOS))

	files, err := discovery.FindFiles(opts.Roots, opts.Extensions, logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	f := &clangformat.Formatter{
		Executable: executable,
		Runner:     opts.Runner,
		Out:        opts.Out,
		Logger:     logger,
	}
	if err := f.Apply(files); err != nil {
		return fmt.Errorf("failed to format files: %w", err)
	}
	return nil
}
