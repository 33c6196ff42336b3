package cmdcheck

import (
	"context"
	"time"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/probe"
)

// ToolCheck verifies that a companion tool is installed.
//
// Without ProbeArgs only the PATH lookup is done. With ProbeArgs the tool
// is run first and a clean exit counts as found even when it prints
// nothing on stdout (java -version writes to stderr); the lookup is the
// fallback.
type ToolCheck struct {
	Label     string        // display name, e.g. "npm", "ADB"
	Command   string        // executable name, e.g. "adb"
	ProbeArgs []string      // optional args for a probing run, e.g. -version
	Timeout   time.Duration // timeout for the probing run (default: probe.DefaultTimeout)
	Runner    probe.Runner  // injected for testing
}

// Run executes the tool check.
func (c *ToolCheck) Run(ctx context.Context) check.Result {
	if len(c.ProbeArgs) > 0 {
		if result, ok := c.probe(ctx); ok {
			return result
		}
	}

	var result check.Result
	path, err := c.Runner.LookPath(c.Command)
	if err != nil {
		return result.Fail(c.Label+" not found", err)
	}
	return check.Newf("%s found: %s", c.Label, probe.FirstLine(path))
}

func (c *ToolCheck) probe(ctx context.Context) (check.Result, bool) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.Run(ctx, c.Command, c.ProbeArgs...)
	if err != nil {
		return check.Result{}, false
	}

	result := check.New(c.Label + " found")
	line := probe.FirstLine(stdout)
	if line == "" {
		line = probe.FirstLine(stderr)
	}
	if line != "" {
		result.AddDetailf("version: %s", line)
	}
	return result, true
}
