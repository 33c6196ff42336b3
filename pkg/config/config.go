// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vertti/mobile-preflight/pkg/probe"
	"github.com/vertti/mobile-preflight/pkg/version"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".mobile-preflight.yaml"

// MaxTimeout bounds every configured probe timeout.
const MaxTimeout = 60 * time.Second

// Config holds the tunable parts of the check battery.
type Config struct {
	Node     NodeConfig     `yaml:"node"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
}

// NodeConfig configures the Node.js runtime check.
type NodeConfig struct {
	Constraint string `yaml:"constraint"`
}

// TimeoutsConfig bounds the probe subprocesses.
type TimeoutsConfig struct {
	Default    time.Duration `yaml:"default"`
	Devices    time.Duration `yaml:"devices"`
	Simulators time.Duration `yaml:"simulators"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Node: NodeConfig{Constraint: ">=18"},
		Timeouts: TimeoutsConfig{
			Default:    probe.DefaultTimeout,
			Devices:    probe.DevicesTimeout,
			Simulators: probe.SimulatorsTimeout,
		},
	}
}

// Load reads path over the defaults. An empty path tries DefaultFile and
// silently keeps the defaults when it does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user supplied config path
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes YAML over the current values. Missing keys keep their
// current value.
func (c *Config) Merge(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Validate checks that timeouts are in range and the constraint parses.
func (c *Config) Validate() error {
	timeouts := []struct {
		key string
		val time.Duration
	}{
		{"timeouts.default", c.Timeouts.Default},
		{"timeouts.devices", c.Timeouts.Devices},
		{"timeouts.simulators", c.Timeouts.Simulators},
	}
	for _, t := range timeouts {
		if t.val <= 0 || t.val > MaxTimeout {
			return fmt.Errorf("%s must be between 0s and %s, got %s", t.key, MaxTimeout, t.val)
		}
	}

	if _, err := version.ParseConstraint(c.Node.Constraint); err != nil {
		return fmt.Errorf("node.constraint: %w", err)
	}
	return nil
}

// NodeConstraint returns the parsed Node.js constraint. Call Validate first.
func (c *Config) NodeConstraint() *version.Constraint {
	return version.MustParseConstraint(c.Node.Constraint)
}
