package testutil

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by FakeRunner for unknown commands.
var ErrNotFound = errors.New("executable file not found in $PATH")

// Response is a canned command result.
type Response struct {
	Stdout string
	Stderr string
	Err    error
}

// FakeRunner is a test double for probe.Runner. Commands are keyed by the
// full command line ("adb devices"), paths by executable name.
type FakeRunner struct {
	Paths    map[string]string
	Commands map[string]Response
	Calls    []string // command lines passed to Run, in order
}

// LookPath returns the configured path or ErrNotFound.
func (f *FakeRunner) LookPath(file string) (string, error) {
	if p, ok := f.Paths[file]; ok {
		return p, nil
	}
	return "", ErrNotFound
}

// Run records the call and returns the configured response or ErrNotFound.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, line)
	if r, ok := f.Commands[line]; ok {
		return r.Stdout, r.Stderr, r.Err
	}
	return "", "", ErrNotFound
}

// Called reports whether any recorded call starts with prefix.
func (f *FakeRunner) Called(prefix string) bool {
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// MapEnv is a test double for envcheck.EnvGetter.
type MapEnv map[string]string

// LookupEnv returns the value for key.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
