package main

import (
	"log"
	"os"
	"strings"

	"srcfmt/cmd"
	"srcfmt/pkg/logging"
	"srcfmt/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := logging.New(false, "srcfmt", version.Get().Version)
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return 1
	}
	defer syncLogger(logger)

	active, err := cmd.Execute(logger)
	if active != logger {
		defer syncLogger(active)
	}
	if err != nil {
		active.Error("srcfmt execution failed", zap.Error(err))
		return 1
	}
	return 0
}

// syncLogger flushes the logger when stderr is a terminal or a regular file.
// Syncing a pipe reports "invalid argument" on some platforms, which is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
