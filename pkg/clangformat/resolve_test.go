package clangformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExecutable(t *testing.T) {
	t.Parallel()

	found := func(name string) (string, error) { return "/usr/bin/" + name, nil }
	missing := func(string) (string, error) { return "", errors.New("not found") }

	tests := []struct {
		name     string
		goos     string
		lookPath LookPathFunc
		want     string
	}{
		{name: "linux found", goos: "linux", lookPath: found, want: DefaultExecutable},
		{name: "linux missing keeps default", goos: "linux", lookPath: missing, want: DefaultExecutable},
		{name: "darwin missing keeps default", goos: "darwin", lookPath: missing, want: DefaultExecutable},
		{name: "windows found", goos: "windows", lookPath: found, want: DefaultExecutable},
		{name: "windows missing falls back", goos: "windows", lookPath: missing, want: WindowsExecutable},
		{name: "nil lookPath", goos: "windows", lookPath: nil, want: DefaultExecutable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ResolveExecutable(tc.goos, tc.lookPath))
		})
	}
}

func TestResolveExecutableLooksUpDefaultOnly(t *testing.T) {
	t.Parallel()

	var looked []string
	lookPath := func(name string) (string, error) {
		looked = append(looked, name)
		return "", errors.New("not found")
	}

	ResolveExecutable("windows", lookPath)
	assert.Equal(t, []string{DefaultExecutable}, looked)

	looked = nil
	ResolveExecutable("linux", lookPath)
	assert.Empty(t, looked)
}
