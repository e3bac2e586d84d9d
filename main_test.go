package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// invocationLog is written by the clang-format stub into the script's working directory.
const invocationLog = "invocations.log"

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"srcfmt":       func() { os.Exit(run()) },
		"clang-format": stubClangFormat,
	})
}

func TestScripts(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

// stubClangFormat records its arguments, marks the target file as formatted
// and exits non-zero for files whose name contains "broken".
func stubClangFormat() {
	args := os.Args[1:]

	logFile, err := os.OpenFile(invocationLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Fprintln(logFile, strings.Join(args, " "))
	_ = logFile.Close()

	if len(args) != 2 || args[0] != "-i" {
		fmt.Fprintln(os.Stderr, "usage: clang-format -i <file>")
		os.Exit(2)
	}
	target := args[1]
	if strings.Contains(target, "broken") {
		fmt.Fprintln(os.Stderr, "clang-format: cannot format", target)
		os.Exit(1)
	}

	f, err := os.OpenFile(target, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintln(f, "// formatted")
	_ = f.Close()
}
