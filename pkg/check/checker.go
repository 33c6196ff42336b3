package check

import "context"

// Checker is implemented by probes that always report exactly one result.
//
// Implementations:
//   - cmdcheck.RuntimeCheck: runtime presence and minimum version
//   - cmdcheck.ToolCheck: companion tool presence
//   - envcheck.Check: SDK environment variables
//   - syscheck.Check: host OS gate
//   - xcodecheck.BuildCheck, xcodecheck.ToolsCheck: macOS toolchain
type Checker interface {
	Run(ctx context.Context) Result
}

// MultiChecker is implemented by best-effort probes that report zero or
// more results, e.g. a device listing that reports nothing when the
// listing command itself fails.
//
// Implementations:
//   - devicecheck.AndroidCheck: attached Android devices
//   - devicecheck.SimulatorCheck: booted iOS simulators
type MultiChecker interface {
	RunAll(ctx context.Context) []Result
}
