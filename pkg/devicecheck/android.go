// Package devicecheck enumerates attached devices and running simulators.
// These probes are informational: an empty listing is a warning, and a
// listing that cannot be obtained reports nothing.
package devicecheck

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/probe"
)

// Device is one entry of `adb devices`.
type Device struct {
	Serial string
	State  string // device, unauthorized, offline, ...
}

// AndroidCheck lists devices attached to the Android debug bridge.
type AndroidCheck struct {
	Command string        // bridge executable (default: adb)
	Timeout time.Duration // default: probe.DevicesTimeout
	Runner  probe.Runner  // injected for testing
	Logger  *slog.Logger  // optional
}

// RunAll executes the device listing.
func (c *AndroidCheck) RunAll(ctx context.Context) []check.Result {
	command := c.Command
	if command == "" {
		command = "adb"
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = probe.DevicesTimeout
	}

	out, ok := probe.Output(ctx, c.Runner, timeout, command, "devices")
	if !ok {
		logger(c.Logger).Debug("device listing unavailable", "cmd", command)
		return nil
	}

	devices := ParseADBDevices(out)
	if len(devices) == 0 {
		var result check.Result
		return []check.Result{result.Warn("No Android devices connected")}
	}

	result := check.Newf("Android device(s) connected: %d", len(devices))
	for _, d := range devices {
		result.AddDetail(d.String())
	}
	return []check.Result{result}
}

// ParseADBDevices parses `adb devices` output. The header line and
// daemon status lines ("* daemon started successfully") are skipped.
func ParseADBDevices(raw string) []Device {
	s := bufio.NewScanner(strings.NewReader(raw))
	var out []Device
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "*") || strings.Contains(line, "List of devices") {
			continue
		}
		parts := strings.Fields(line)
		d := Device{Serial: parts[0], State: "unknown"}
		if len(parts) > 1 {
			d.State = strings.ToLower(parts[1])
		}
		out = append(out, d)
	}
	return out
}

func logger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%s)", d.Serial, d.State)
}
