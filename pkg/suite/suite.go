// Package suite runs the ordered prerequisite battery for a platform.
package suite

import (
	"context"
	"log/slog"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/cmdcheck"
	"github.com/vertti/mobile-preflight/pkg/config"
	"github.com/vertti/mobile-preflight/pkg/devicecheck"
	"github.com/vertti/mobile-preflight/pkg/envcheck"
	"github.com/vertti/mobile-preflight/pkg/output"
	"github.com/vertti/mobile-preflight/pkg/probe"
	"github.com/vertti/mobile-preflight/pkg/syscheck"
	"github.com/vertti/mobile-preflight/pkg/xcodecheck"
)

// Group names as shown in section headers.
const (
	GroupCommon  = "Common"
	GroupAndroid = "Android"
	GroupIOS     = "iOS"
)

// Suite holds the platform selector and the dependencies of every probe.
// Checks run one at a time in a fixed order.
type Suite struct {
	Platform Platform
	Config   *config.Config        // default: config.Default()
	Runner   probe.Runner          // required
	Env      envcheck.EnvGetter    // required
	Stater   envcheck.FileStater   // optional; skips the ANDROID_HOME directory test when nil
	Files    xcodecheck.FileReader // optional; skips the version.plist detail when nil
	Sys      syscheck.SysInfo      // default: host
	Reporter output.Reporter       // required
	Logger   *slog.Logger          // default: slog.Default()

	summary check.Summary
}

// Run executes the battery, reports every result, and finishes the report.
// The returned error is a reporting error, never a check failure.
func (s *Suite) Run(ctx context.Context) (check.Summary, error) {
	s.defaults()
	s.summary = check.Summary{}

	s.Reporter.Start(string(s.Platform), s.Sys.OS())

	s.Reporter.Group(GroupCommon)
	s.runCommon(ctx)

	if s.Platform.IncludesAndroid() {
		s.Reporter.Group(GroupAndroid)
		s.runAndroid(ctx)
	}
	if s.Platform.IncludesIOS() {
		s.Reporter.Group(GroupIOS)
		s.runIOS(ctx)
	}

	s.Logger.Debug("run complete",
		"passed", s.summary.Passed,
		"warned", s.summary.Warned,
		"failed", s.summary.Failed,
	)
	return s.summary, s.Reporter.Finish(s.summary)
}

func (s *Suite) defaults() {
	if s.Platform == "" {
		s.Platform = All
	}
	if s.Config == nil {
		s.Config = config.Default()
	}
	if s.Sys == nil {
		s.Sys = &syscheck.RealSysInfo{}
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
}

func (s *Suite) emit(results ...check.Result) {
	for _, r := range results {
		s.Logger.Debug("check", "name", r.Name, "status", r.Status, "err", r.Err)
		s.summary.Add(r)
		s.Reporter.Result(r)
	}
}

func (s *Suite) runCommon(ctx context.Context) {
	checks := []check.Checker{
		&cmdcheck.RuntimeCheck{
			Label:      "Node.js",
			Command:    "node",
			Constraint: s.Config.NodeConstraint(),
			Timeout:    s.Config.Timeouts.Default,
			Runner:     s.Runner,
		},
		&cmdcheck.ToolCheck{Label: "npm", Command: "npm", Runner: s.Runner},
		&cmdcheck.ToolCheck{Label: "npx", Command: "npx", Runner: s.Runner},
	}
	for _, c := range checks {
		s.emit(c.Run(ctx))
	}
}

func (s *Suite) runAndroid(ctx context.Context) {
	checks := []check.Checker{
		&envcheck.Check{
			Names:     []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"},
			Required:  true,
			Hint:      "Set with: export ANDROID_HOME=/path/to/android/sdk",
			ExpectDir: s.Stater != nil,
			Getter:    s.Env,
			Stater:    s.Stater,
		},
		&cmdcheck.ToolCheck{
			Label:     "Java",
			Command:   "java",
			ProbeArgs: []string{"-version"},
			Timeout:   s.Config.Timeouts.Default,
			Runner:    s.Runner,
		},
		&envcheck.Check{Names: []string{"JAVA_HOME"}, Getter: s.Env},
	}
	for _, c := range checks {
		s.emit(c.Run(ctx))
	}

	adb := (&cmdcheck.ToolCheck{Label: "ADB", Command: "adb", Runner: s.Runner}).Run(ctx)
	s.emit(adb)
	if !adb.OK() {
		return
	}

	devices := &devicecheck.AndroidCheck{
		Timeout: s.Config.Timeouts.Devices,
		Runner:  s.Runner,
		Logger:  s.Logger,
	}
	s.emit(devices.RunAll(ctx)...)
}

func (s *Suite) runIOS(ctx context.Context) {
	gate := (&syscheck.Check{
		ExpectedOS: "darwin",
		Reason:     "iOS development requires macOS",
		Info:       s.Sys,
	}).Run(ctx)
	if gate.Failed() {
		s.emit(gate)
		return
	}

	checks := []check.Checker{
		&xcodecheck.BuildCheck{Timeout: s.Config.Timeouts.Default, Runner: s.Runner},
		&xcodecheck.ToolsCheck{Timeout: s.Config.Timeouts.Default, Runner: s.Runner, Files: s.Files},
	}
	for _, c := range checks {
		s.emit(c.Run(ctx))
	}

	simulators := &devicecheck.SimulatorCheck{
		Timeout: s.Config.Timeouts.Simulators,
		Runner:  s.Runner,
		Logger:  s.Logger,
	}
	s.emit(simulators.RunAll(ctx)...)
}
