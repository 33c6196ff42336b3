package syscheck

import (
	"context"
	"fmt"
	"runtime"

	"github.com/vertti/mobile-preflight/pkg/check"
)

// SysInfo abstracts system information for testability.
type SysInfo interface {
	OS() string
	Arch() string
}

// RealSysInfo returns actual system information.
type RealSysInfo struct{}

func (r *RealSysInfo) OS() string   { return runtime.GOOS }
func (r *RealSysInfo) Arch() string { return runtime.GOARCH }

// Check verifies the host runs the OS a group of checks requires.
type Check struct {
	ExpectedOS string  // required GOOS, e.g. darwin
	Reason     string  // failure label, e.g. "iOS development requires macOS"
	Info       SysInfo // injected for testing
}

// Run executes the host OS check.
func (c *Check) Run(_ context.Context) check.Result {
	info := c.Info
	if info == nil {
		info = &RealSysInfo{}
	}

	actual := info.OS()
	if actual != c.ExpectedOS {
		var result check.Result
		reason := c.Reason
		if reason == "" {
			reason = fmt.Sprintf("requires %s host", c.ExpectedOS)
		}
		result.AddDetailf("host: %s/%s", actual, info.Arch())
		return result.Fail(reason, fmt.Errorf("OS mismatch: expected %s, got %s", c.ExpectedOS, actual))
	}

	return check.Newf("host: %s/%s", actual, info.Arch())
}
