package xcodecheck

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"howett.net/plist"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/probe"
)

// BundleVersion holds the fields of Xcode's version.plist.
type BundleVersion struct {
	ShortVersion string `plist:"CFBundleShortVersionString"`
	Build        string `plist:"ProductBuildVersion"`
}

// FileReader abstracts file reads for testability.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileReader implements FileReader using os.ReadFile.
type RealFileReader struct{}

// ReadFile reads the named file.
func (RealFileReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- path derived from xcode-select output
}

// ToolsCheck verifies that the Xcode command line tools are selected.
type ToolsCheck struct {
	Timeout time.Duration
	Runner  probe.Runner
	Files   FileReader // optional; version.plist detail is skipped when nil
}

// Run executes the check.
func (c *ToolsCheck) Run(ctx context.Context) check.Result {
	var result check.Result

	dir, ok := probe.Output(ctx, c.Runner, c.Timeout, "xcode-select", "-p")
	if !ok {
		result.WithHint("Install with: xcode-select --install")
		return result.Fail("Xcode command line tools not installed", errors.New("xcode-select -p failed"))
	}

	result = check.New("Xcode command line tools installed")
	result.AddDetailf("developer dir: %s", dir)

	if c.Files != nil {
		// version.plist sits next to the Developer directory inside Xcode.app.
		if v, err := ReadBundleVersion(c.Files, filepath.Join(filepath.Dir(dir), "version.plist")); err == nil {
			result.AddDetailf("bundle version: %s (%s)", v.ShortVersion, v.Build)
		}
	}
	return result
}

// ReadBundleVersion decodes a version.plist in any plist format.
func ReadBundleVersion(files FileReader, path string) (BundleVersion, error) {
	var v BundleVersion
	data, err := files.ReadFile(path)
	if err != nil {
		return v, err
	}
	if err := plist.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return v, err
	}
	if v.ShortVersion == "" {
		return v, errors.New("version.plist has no CFBundleShortVersionString")
	}
	return v, nil
}
