package output

import (
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/zeebo/blake3"

	"github.com/vertti/mobile-preflight/pkg/check"
)

// Report is the document written by JSONReporter.
type Report struct {
	Platform    string        `json:"platform"`
	OS          string        `json:"os"`
	Status      string        `json:"status"` // ok or failed
	Passed      int           `json:"passed"`
	Warned      int           `json:"warned"`
	Failed      int           `json:"failed"`
	Fingerprint string        `json:"fingerprint"`
	Checks      []CheckRecord `json:"checks"`
}

// CheckRecord is one result in a Report.
type CheckRecord struct {
	Group   string   `json:"group"`
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Details []string `json:"details,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}

// JSONReporter collects results and writes a single Report on Finish.
type JSONReporter struct {
	w      io.Writer
	report Report
	group  string
}

// NewJSONReporter creates a JSON reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w, report: Report{Checks: []CheckRecord{}}}
}

// Start records the run parameters.
func (j *JSONReporter) Start(platform, hostOS string) {
	j.report.Platform = platform
	j.report.OS = hostOS
}

// Group sets the group of subsequent results.
func (j *JSONReporter) Group(name string) {
	j.group = name
}

// Result records a result.
func (j *JSONReporter) Result(r check.Result) {
	j.report.Checks = append(j.report.Checks, CheckRecord{
		Group:   j.group,
		Name:    r.Name,
		Status:  string(r.Status),
		Details: r.Details,
		Hint:    r.Hint,
	})
}

// Finish writes the report.
func (j *JSONReporter) Finish(s check.Summary) error {
	j.report.Passed, j.report.Warned, j.report.Failed = s.Passed, s.Warned, s.Failed
	j.report.Status = "ok"
	if !s.OK() {
		j.report.Status = "failed"
	}
	j.report.Fingerprint = Fingerprint(j.report.Checks)

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.report)
}

// Fingerprint hashes the reported labels and statuses. Labels carry the
// detected versions and paths, so two machines with the same toolchain
// produce the same fingerprint.
func Fingerprint(checks []CheckRecord) string {
	h := blake3.New()
	for _, c := range checks {
		_, _ = h.Write([]byte(c.Group + "\x00" + c.Name + "\x00" + c.Status + "\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
