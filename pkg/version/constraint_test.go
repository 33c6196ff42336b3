package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraint_Check(t *testing.T) {
	tests := []struct {
		constraint string
		v          Version
		want       bool
	}{
		{">=18", Version{18, 0, 0}, true},
		{">=18", Version{20, 11, 0}, true},
		{">=18", Version{17, 9, 1}, false},
		{">=18", Version{16, 20, 2}, false},
		{">=18, <23", Version{22, 1, 0}, true},
		{">=18, <23", Version{23, 0, 0}, false},
		{"^20", Version{20, 5, 1}, true},
		{"^20", Version{21, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.constraint+" "+tt.v.String(), func(t *testing.T) {
			c, err := ParseConstraint(tt.constraint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Check(tt.v))
		})
	}
}

func TestParseConstraint_Invalid(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-version"} {
		_, err := ParseConstraint(s)
		assert.Error(t, err, "ParseConstraint(%q)", s)
	}
}

func TestConstraint_String(t *testing.T) {
	assert.Equal(t, ">=18", MustParseConstraint(" >=18 ").String())
}

func TestMustParseConstraint_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseConstraint("bogus") })
}
