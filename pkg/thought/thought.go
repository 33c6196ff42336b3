// Package thought holds the sequential-thinking example traces shipped with
// the tool and validates them against the numbering and branching
// convention they document.
package thought

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed examples/*.yaml
var examplesFS embed.FS

// ErrNotFound is returned by Lookup for unknown trace names.
var ErrNotFound = errors.New("trace not found")

// Thought is one step of a trace.
type Thought struct {
	Thought           string `yaml:"thought"`
	ThoughtNumber     int    `yaml:"thoughtNumber"`
	TotalThoughts     int    `yaml:"totalThoughts"`
	NextThoughtNeeded bool   `yaml:"nextThoughtNeeded"`
	BranchFromThought int    `yaml:"branchFromThought,omitempty"` // 0: not a fork
	BranchID          string `yaml:"branchId,omitempty"`          // empty: main trunk
}

// Action is a tool call made between two thoughts.
type Action struct {
	After  int    `yaml:"after"` // thought number the action follows
	Action string `yaml:"action"`
	Result string `yaml:"result"`
}

// Trace is a complete worked example.
type Trace struct {
	Name        string    `yaml:"name"`
	Title       string    `yaml:"title"`
	Pattern     string    `yaml:"pattern"`
	UseWhen     string    `yaml:"useWhen"`
	Thoughts    []Thought `yaml:"thoughts"`
	Actions     []Action  `yaml:"actions,omitempty"`
	KeyPatterns []string  `yaml:"keyPatterns,omitempty"`
}

// Parse decodes a single trace.
func Parse(data []byte) (Trace, error) {
	var t Trace
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Trace{}, err
	}
	return t, nil
}

// Examples returns the embedded traces sorted by name.
func Examples() ([]Trace, error) {
	files, err := fs.Glob(examplesFS, "examples/*.yaml")
	if err != nil {
		return nil, err
	}

	traces := make([]Trace, 0, len(files))
	for _, f := range files {
		data, err := examplesFS.ReadFile(f)
		if err != nil {
			return nil, err
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path.Base(f), err)
		}
		traces = append(traces, t)
	}
	sort.Slice(traces, func(i, j int) bool { return traces[i].Name < traces[j].Name })
	return traces, nil
}

// Lookup returns the embedded trace with the given name.
func Lookup(name string) (Trace, error) {
	traces, err := Examples()
	if err != nil {
		return Trace{}, err
	}
	for _, t := range traces {
		if t.Name == name {
			return t, nil
		}
	}
	return Trace{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Validate reports every violation of the trace convention:
//   - thought numbers start at 1 and increase by one
//   - totalThoughts is at least 1 and not below thoughtNumber
//   - only the last thought sets nextThoughtNeeded to false
//   - a fork names an earlier thought and a branch id
//   - a branch id without a fork continues an already opened branch
func (t Trace) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("trace has no name"))
	}
	if len(t.Thoughts) == 0 {
		errs = append(errs, errors.New("trace has no thoughts"))
	}

	opened := map[string]bool{}
	last := len(t.Thoughts) - 1
	for i, th := range t.Thoughts {
		n := th.ThoughtNumber
		fail := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf("thought %d: "+format, append([]any{n}, args...)...))
		}

		if n != i+1 {
			fail("expected thoughtNumber %d", i+1)
		}
		if th.TotalThoughts < 1 {
			fail("totalThoughts must be at least 1, got %d", th.TotalThoughts)
		} else if n > th.TotalThoughts {
			fail("thoughtNumber exceeds totalThoughts %d", th.TotalThoughts)
		}
		if i < last && !th.NextThoughtNeeded {
			fail("nextThoughtNeeded is false before the last thought")
		}
		if i == last && th.NextThoughtNeeded {
			fail("last thought must set nextThoughtNeeded to false")
		}

		switch {
		case th.BranchFromThought != 0:
			if th.BranchFromThought < 1 || th.BranchFromThought >= n {
				fail("branchFromThought %d must reference an earlier thought", th.BranchFromThought)
			}
			if th.BranchID == "" {
				fail("branchFromThought requires branchId")
			} else {
				opened[th.BranchID] = true
			}
		case th.BranchID != "" && !opened[th.BranchID]:
			fail("branch %q continues a branch that was never opened", th.BranchID)
		}
	}

	for _, a := range t.Actions {
		if a.After < 1 || a.After > len(t.Thoughts) {
			errs = append(errs, fmt.Errorf("action %q follows unknown thought %d", a.Action, a.After))
		}
	}
	return errors.Join(errs...)
}

// Branches maps each branch id to its thought numbers in order.
func (t Trace) Branches() map[string][]int {
	branches := map[string][]int{}
	for _, th := range t.Thoughts {
		if th.BranchID != "" {
			branches[th.BranchID] = append(branches[th.BranchID], th.ThoughtNumber)
		}
	}
	return branches
}

// ActionsAfter returns the actions that follow thought n.
func (t Trace) ActionsAfter(n int) []Action {
	var out []Action
	for _, a := range t.Actions {
		if a.After == n {
			out = append(out, a)
		}
	}
	return out
}

// Heading returns the status line shown above a thought, e.g.
// "Thought 2/6 [option-redis, from 1]".
func (th Thought) Heading() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thought %d/%d", th.ThoughtNumber, th.TotalThoughts)
	switch {
	case th.BranchFromThought != 0:
		fmt.Fprintf(&b, " [%s, from %d]", th.BranchID, th.BranchFromThought)
	case th.BranchID != "":
		fmt.Fprintf(&b, " [%s]", th.BranchID)
	}
	if !th.NextThoughtNeeded {
		b.WriteString(" (final)")
	}
	return b.String()
}
