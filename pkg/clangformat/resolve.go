// File: pkg/clangformat/resolve.go
package clangformat

// Executable names and the flag passed to every invocation.
const (
	DefaultExecutable = "clang-format"
	WindowsExecutable = "clang-format.exe"
	InPlaceFlag       = "-i"
)

// LookPathFunc searches the executable search path for name, as exec.LookPath does.
type LookPathFunc func(name string) (string, error)

// ResolveExecutable returns the formatter name to invoke on the host goos.
// On windows the ".exe" variant is substituted when DefaultExecutable cannot
// be found on the search path. Resolution is meant to happen once per run.
func ResolveExecutable(goos string, lookPath LookPathFunc) string {
	if goos != "windows" || lookPath == nil {
		return DefaultExecutable
	}
	if _, err := lookPath(DefaultExecutable); err != nil {
		return WindowsExecutable
	}
	return DefaultExecutable
}
