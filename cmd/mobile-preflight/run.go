package main

import (
	"errors"
	"log/slog"

	"github.com/vertti/mobile-preflight/pkg/envcheck"
	"github.com/vertti/mobile-preflight/pkg/probe"
	"github.com/vertti/mobile-preflight/pkg/syscheck"
	"github.com/vertti/mobile-preflight/pkg/xcodecheck"
)

// ErrChecksFailed is returned when at least one mandatory check failed.
// The results are already printed, so main only sets the exit status.
var ErrChecksFailed = errors.New("prerequisite checks failed")

// Host dependencies, replaced in tests.
var (
	newRunner = func(logger *slog.Logger) probe.Runner {
		return &probe.RealRunner{Logger: logger}
	}
	sysInfo    syscheck.SysInfo      = &syscheck.RealSysInfo{}
	envGetter  envcheck.EnvGetter    = &envcheck.RealEnvGetter{}
	fileStater envcheck.FileStater   = &envcheck.RealFileStater{}
	fileReader xcodecheck.FileReader = xcodecheck.RealFileReader{}
)
