package devicecheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/mobile-preflight/pkg/check"
	"github.com/vertti/mobile-preflight/pkg/testutil"
)

func TestParseADBDevices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Device
	}{
		{"header only", "List of devices attached\n\n", nil},
		{"empty", "", nil},
		{
			name: "devices with states",
			raw:  "List of devices attached\nemulator-5554\tdevice\nR58M12ABCDE\tunauthorized\n\n",
			want: []Device{{"emulator-5554", "device"}, {"R58M12ABCDE", "unauthorized"}},
		},
		{
			name: "daemon start lines skipped",
			raw:  "* daemon not running; starting now at tcp:5037\n* daemon started successfully\nList of devices attached\nemulator-5556\toffline\n",
			want: []Device{{"emulator-5556", "offline"}},
		},
		{"serial without state", "List of devices attached\nabc123\n", []Device{{"abc123", "unknown"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseADBDevices(tt.raw))
		})
	}
}

func TestAndroidCheck(t *testing.T) {
	tests := []struct {
		name       string
		response   testutil.Response
		wantStatus check.Status
		wantName   string
	}{
		{
			name:       "devices attached",
			response:   testutil.Response{Stdout: "List of devices attached\nemulator-5554\tdevice\nR58M12ABCDE\tdevice\n"},
			wantStatus: check.StatusOK,
			wantName:   "Android device(s) connected: 2",
		},
		{
			name:       "no devices warns",
			response:   testutil.Response{Stdout: "List of devices attached\n\n"},
			wantStatus: check.StatusWarn,
			wantName:   "No Android devices connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &testutil.FakeRunner{Commands: map[string]testutil.Response{"adb devices": tt.response}}
			c := &AndroidCheck{Runner: r}

			results := c.RunAll(context.Background())

			require.Len(t, results, 1)
			assert.Equal(t, tt.wantStatus, results[0].Status)
			assert.Equal(t, tt.wantName, results[0].Name)
			assert.False(t, results[0].Failed(), "device listing must never fail the run")
		})
	}
}

func TestAndroidCheck_Details(t *testing.T) {
	r := &testutil.FakeRunner{Commands: map[string]testutil.Response{
		"adb devices": {Stdout: "List of devices attached\nemulator-5554\tdevice\nR58M12ABCDE\tunauthorized\n"},
	}}
	results := (&AndroidCheck{Runner: r}).RunAll(context.Background())

	require.Len(t, results, 1)
	assert.Equal(t, []string{"emulator-5554 (device)", "R58M12ABCDE (unauthorized)"}, results[0].Details)
}

func TestAndroidCheck_ListingFailsReportsNothing(t *testing.T) {
	r := &testutil.FakeRunner{Commands: map[string]testutil.Response{
		"adb devices": {Err: errors.New("signal: killed")},
	}}
	results := (&AndroidCheck{Runner: r}).RunAll(context.Background())
	assert.Empty(t, results)
}

func TestAndroidCheck_CustomCommand(t *testing.T) {
	r := &testutil.FakeRunner{Commands: map[string]testutil.Response{
		"adb.exe devices": {Stdout: "List of devices attached\n"},
	}}
	results := (&AndroidCheck{Command: "adb.exe", Runner: r}).RunAll(context.Background())
	require.Len(t, results, 1)
	assert.Equal(t, []string{"adb.exe devices"}, r.Calls)
}

func TestDevice_String(t *testing.T) {
	assert.Equal(t, "emulator-5554 (device)", Device{"emulator-5554", "device"}.String())
}
