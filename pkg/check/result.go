package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // printed label, e.g. "npm found: /usr/bin/npm"
	Status  Status   // OK, WARN or FAIL
	Details []string // human-readable details
	Hint    string   // remediation shown under failures, e.g. "Install with: ..."
	Err     error    // underlying error, never printed
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Failed returns true if the check is a mandatory failure.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}

// Summary tallies results of a run. Only failures decide the exit status.
type Summary struct {
	Passed int
	Warned int
	Failed int
}

// Add counts a result.
func (s *Summary) Add(r Result) {
	switch r.Status {
	case StatusOK:
		s.Passed++
	case StatusWarn:
		s.Warned++
	default:
		s.Failed++
	}
}

// OK returns true if no mandatory check failed.
func (s Summary) OK() bool {
	return s.Failed == 0
}
