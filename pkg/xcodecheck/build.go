// Package xcodecheck verifies the Xcode toolchain on macOS hosts.
package xcodecheck

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/probe"
)

// BuildCheck verifies that xcodebuild runs and reports a version.
type BuildCheck struct {
	Timeout time.Duration
	Runner  probe.Runner
}

// Run executes the check.
func (c *BuildCheck) Run(ctx context.Context) check.Result {
	var result check.Result

	out, ok := probe.Output(ctx, c.Runner, c.Timeout, "xcodebuild", "-version")
	// xcodebuild prints "xcode-select: error: ..." when only the command
	// line tools are installed.
	if !ok || strings.Contains(out, "error") {
		return result.Fail("Xcode not found or not configured", errors.New("xcodebuild -version failed"))
	}

	result = check.Newf("Xcode: %s", probe.FirstLine(out))
	for _, line := range strings.Split(out, "\n")[1:] {
		if line = strings.TrimSpace(line); line != "" {
			result.AddDetail(line)
		}
	}
	return result
}
