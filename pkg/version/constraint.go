package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Constraint is a parsed version requirement such as ">=18" or "^20.0".
type Constraint struct {
	raw string
	c   *semver.Constraints
}

// ParseConstraint parses a requirement string.
func ParseConstraint(s string) (*Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty version constraint")
	}
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return &Constraint{raw: s, c: c}, nil
}

// MustParseConstraint is like ParseConstraint but panics on error.
func MustParseConstraint(s string) *Constraint {
	c, err := ParseConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the requirement as written, e.g. ">=18".
func (c *Constraint) String() string {
	return c.raw
}

// Check reports whether v satisfies the constraint.
func (c *Constraint) Check(v Version) bool {
	sv := semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Patch), "", "")
	return c.c.Check(sv)
}
