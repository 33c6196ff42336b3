// Package probe runs the external commands behind each prerequisite check.
//
// Commands are always started with an argument vector (never through a
// shell), so values read from the environment cannot inject commands.
package probe

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Default timeouts for the probe kinds.
const (
	DefaultTimeout    = 5 * time.Second
	DevicesTimeout    = 10 * time.Second
	SimulatorsTimeout = 15 * time.Second
)

// Runner abstracts command lookup and execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct {
	Logger *slog.Logger // optional; defaults to slog.Default()
}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	r.logger().Debug("lookup", "file", file, "path", path, "err", err)
	return path, err
}

// Run executes a command and returns its output.
func (r *RealRunner) Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	// #nosec G204 -- commands come from the fixed probe battery and run without a shell.
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	start := time.Now()
	err = cmd.Run()
	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		err = ctxErr
	}
	r.logger().Debug("probe",
		"cmd", name,
		"args", strings.Join(args, " "),
		"duration", time.Since(start).Round(time.Millisecond),
		"err", err,
	)
	return outBuf.String(), errBuf.String(), err
}

func (r *RealRunner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Output runs a command under timeout and returns its trimmed stdout.
// ok is false when the command failed, timed out, or printed nothing:
// all of those mean "absent" to a probe.
func Output(ctx context.Context, r Runner, timeout time.Duration, name string, args ...string) (out string, ok bool) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, _, err := r.Run(ctx, name, args...)
	if err != nil {
		return "", false
	}
	out = strings.TrimSpace(stdout)
	return out, out != ""
}

// FirstLine returns the first line of s.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
