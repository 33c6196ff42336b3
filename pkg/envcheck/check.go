package envcheck

import (
	"context"
	"fmt"

	"github.com/vertti/mobile-preflight/pkg/check"
)

// Check verifies that an SDK environment variable is set.
type Check struct {
	Names     []string   // variable and its fallbacks, e.g. ANDROID_HOME, ANDROID_SDK_ROOT
	Required  bool       // unset is a failure instead of a warning
	Hint      string     // shown when unset
	ExpectDir bool       // warn when the value is not an existing directory
	Getter    EnvGetter  // injected for testing
	Stater    FileStater // injected for testing; required with ExpectDir
}

// Run executes the environment variable check.
func (c *Check) Run(_ context.Context) check.Result {
	var result check.Result
	if len(c.Names) == 0 {
		return result.Fail("no environment variable to check", nil)
	}
	primary := c.Names[0]

	name, value, ok := c.lookup()
	if !ok {
		result.WithHint(c.Hint)
		if c.Required {
			return result.Fail(primary+" not set", fmt.Errorf("environment variable %s is not set", primary))
		}
		return result.Warn(primary + " not set")
	}

	result = check.Newf("%s set: %s", primary, value)
	if name != primary {
		result.AddDetailf("from %s", name)
	}

	if c.ExpectDir && c.Stater != nil {
		info, err := c.Stater.Stat(value)
		if err != nil || !info.IsDir() {
			return result.Warnf("%s set but not a directory: %s", primary, value)
		}
	}
	return result
}

// lookup returns the first variable with a non-empty value.
func (c *Check) lookup() (name, value string, ok bool) {
	for _, n := range c.Names {
		if v, found := c.Getter.LookupEnv(n); found && v != "" {
			return n, v, true
		}
	}
	return "", "", false
}
