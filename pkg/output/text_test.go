package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/mobile-preflight/pkg/check"
)

func TestTextReporter_FullRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, false)

	r.Start("android", "linux")
	r.Group("Common")
	r.Result(check.Result{Name: "Node.js v20.11.0 (>=18 required)", Status: check.StatusOK})
	r.Group("Android")
	r.Result(check.Result{
		Name:   "ANDROID_HOME not set",
		Status: check.StatusFail,
		Hint:   "Set with: export ANDROID_HOME=/path/to/android/sdk",
	})
	r.Result(check.Result{Name: "Java found", Status: check.StatusOK, Details: []string{"version: openjdk version \"17.0.9\""}})
	r.Result(check.Result{Name: "JAVA_HOME not set", Status: check.StatusWarn})
	err := r.Finish(check.Summary{Passed: 2, Warned: 1, Failed: 1})

	assert.NoError(t, err)
	want := `========================================
Mobile-MCP Prerequisites Check
Platform: android | OS: linux
========================================

--- Common Prerequisites ---
[OK] Node.js v20.11.0 (>=18 required)

--- Android Prerequisites ---
[FAIL] ANDROID_HOME not set
  Set with: export ANDROID_HOME=/path/to/android/sdk
[OK] Java found
     version: openjdk version "17.0.9"
[WARN] JAVA_HOME not set

========================================
1 critical issue(s) found.
Please resolve before using mobile-mcp.
`
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_AllSatisfied(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, false)

	r.Start("all", "darwin")
	r.Group("Common")
	r.Result(check.Result{Name: "npm found: /usr/local/bin/npm", Status: check.StatusOK})
	assert.NoError(t, r.Finish(check.Summary{Passed: 1}))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "All critical prerequisites satisfied!\n"))
	assert.NotContains(t, out, "Please resolve")
}

func TestTextReporter_NoColorHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, false)
	r.Result(check.Result{Name: "x", Status: check.StatusFail, Details: []string{"path: /bin/x"}})
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestTextReporter_ColorTags(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, true)

	r.Result(check.Result{Name: "ok", Status: check.StatusOK})
	r.Result(check.Result{Name: "warn", Status: check.StatusWarn})
	r.Result(check.Result{Name: "fail", Status: check.StatusFail})

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "[OK]")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "[FAIL]")
}

func TestFormatLabel(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{}, false)

	tests := []struct {
		input string
		want  string
	}{
		{"developer dir: /Applications/Xcode.app", "developer dir: /Applications/Xcode.app"},
		{"emulator-5554 (device)", "emulator-5554 (device)"},
		{"multiple: colons: here", "multiple: colons: here"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(styles, tt.input), tt.input)
	}
}

func TestColorEnabled_NoColorFlag(t *testing.T) {
	assert.False(t, ColorEnabled(true))
}
