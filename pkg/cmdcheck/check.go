package cmdcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/probe"
	"github.com/vertti/mobile-preflight/pkg/version"
)

// RuntimeCheck verifies that a runtime is installed and new enough.
type RuntimeCheck struct {
	Label       string              // display name, e.g. "Node.js"
	Command     string              // command to run, e.g. "node"
	VersionArgs []string            // args to get version (default: --version)
	Constraint  *version.Constraint // required version; nil accepts any
	Timeout     time.Duration       // timeout for version command (default: probe.DefaultTimeout)
	Runner      probe.Runner        // injected for testing
}

// Run executes the runtime check.
func (c *RuntimeCheck) Run(ctx context.Context) check.Result {
	var result check.Result

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	out, ok := probe.Output(ctx, c.Runner, c.Timeout, c.Command, args...)
	if !ok {
		return result.Failf("%s not found", c.Label)
	}

	reported := probe.FirstLine(out)
	if c.Constraint == nil {
		return check.Newf("%s %s", c.Label, reported)
	}

	label := fmt.Sprintf("%s %s (%s required)", c.Label, reported, c.Constraint)
	v, err := version.Extract(reported)
	if err != nil {
		return result.Fail(label, fmt.Errorf("could not parse %s version: %w", c.Label, err))
	}
	if !c.Constraint.Check(v) {
		return result.Fail(label, fmt.Errorf("%s %s does not satisfy %s", c.Label, v, c.Constraint))
	}
	return check.New(label)
}
