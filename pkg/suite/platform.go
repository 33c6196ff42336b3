package suite

import "fmt"

// Platform selects which groups of checks run.
type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
	All     Platform = "all"
)

// Platforms lists the accepted selectors.
var Platforms = []Platform{Android, IOS, All}

// ParsePlatform validates a selector. Empty selects All.
func ParsePlatform(s string) (Platform, error) {
	if s == "" {
		return All, nil
	}
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q (expected android, ios or all)", s)
}

// IncludesAndroid reports whether the Android group runs.
func (p Platform) IncludesAndroid() bool {
	return p == Android || p == All
}

// IncludesIOS reports whether the iOS group runs.
func (p Platform) IncludesIOS() bool {
	return p == IOS || p == All
}
