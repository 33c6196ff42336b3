package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input       string
		want        Platform
		wantErr     bool
		wantAndroid bool
		wantIOS     bool
	}{
		{"", All, false, true, true},
		{"all", All, false, true, true},
		{"android", Android, false, true, false},
		{"ios", IOS, false, false, true},
		{"windows", "", true, false, false},
		{"iOS", "", true, false, false},
		{"android ", "", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown platform")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAndroid, got.IncludesAndroid())
			assert.Equal(t, tt.wantIOS, got.IncludesIOS())
		})
	}
}
