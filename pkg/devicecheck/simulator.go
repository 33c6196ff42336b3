package devicecheck

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/probe"
)

// bootedPath selects the names of booted simulators across all runtimes in
// `simctl list devices --json` output.
const bootedPath = `devices.@values.@flatten.#(state=="Booted")#.name`

// SimulatorCheck lists booted iOS simulators through simctl.
type SimulatorCheck struct {
	Timeout time.Duration // default: probe.SimulatorsTimeout
	Runner  probe.Runner  // injected for testing
	Logger  *slog.Logger  // optional
}

// RunAll executes the simulator listing.
func (c *SimulatorCheck) RunAll(ctx context.Context) []check.Result {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = probe.SimulatorsTimeout
	}

	out, ok := probe.Output(ctx, c.Runner, timeout, "xcrun", "simctl", "list", "devices", "--json")
	if !ok {
		logger(c.Logger).Debug("simulator listing unavailable")
		return nil
	}

	results := []check.Result{check.New("simctl available")}

	booted, names := BootedSimulators(out)
	if booted == 0 {
		var result check.Result
		return append(results, result.Warn("No iOS Simulators running"))
	}

	result := check.Newf("iOS Simulator(s) running: %d", booted)
	for _, n := range names {
		result.AddDetail(n)
	}
	return append(results, result)
}

// BootedSimulators counts booted simulators. JSON listings yield names;
// plain text listings are counted by the "Booted" marker only.
func BootedSimulators(out string) (int, []string) {
	if !gjson.Valid(out) {
		return strings.Count(out, "Booted"), nil
	}
	var names []string
	for _, n := range gjson.Get(out, bootedPath).Array() {
		names = append(names, n.String())
	}
	return len(names), names
}
