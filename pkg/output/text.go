// Package output renders check results for humans and machines.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vertti/mobile-preflight/pkg/check"
)

const rule = "========================================"

// Reporter receives results as the battery runs.
type Reporter interface {
	Start(platform, hostOS string)
	Group(name string)
	Result(r check.Result)
	Finish(s check.Summary) error
}

// TextReporter prints each result as soon as it is reported.
type TextReporter struct {
	w       io.Writer
	styles  Styles
	inGroup bool
}

// NewTextReporter creates a text reporter writing to w.
func NewTextReporter(w io.Writer, color bool) *TextReporter {
	return &TextReporter{w: w, styles: NewStyles(w, color)}
}

// Start prints the banner.
func (t *TextReporter) Start(platform, hostOS string) {
	fmt.Fprintln(t.w, rule)
	fmt.Fprintln(t.w, t.styles.Header.Render("Mobile-MCP Prerequisites Check"))
	fmt.Fprintf(t.w, "Platform: %s | OS: %s\n", platform, hostOS)
	fmt.Fprintln(t.w, rule)
	fmt.Fprintln(t.w)
}

// Group prints a section header, closing the previous section.
func (t *TextReporter) Group(name string) {
	if t.inGroup {
		fmt.Fprintln(t.w)
	}
	t.inGroup = true
	fmt.Fprintln(t.w, t.styles.Header.Render(fmt.Sprintf("--- %s Prerequisites ---", name)))
}

// Result prints one status line with its details and hint.
func (t *TextReporter) Result(r check.Result) {
	fmt.Fprintf(t.w, "%s %s\n", t.tag(r.Status), r.Name)
	for _, d := range r.Details {
		fmt.Fprintf(t.w, "     %s\n", formatLabel(t.styles, d))
	}
	if r.Hint != "" {
		fmt.Fprintf(t.w, "  %s\n", r.Hint)
	}
}

// Finish prints the summary.
func (t *TextReporter) Finish(s check.Summary) error {
	if t.inGroup {
		fmt.Fprintln(t.w)
	}
	fmt.Fprintln(t.w, rule)
	if s.OK() {
		_, err := fmt.Fprintln(t.w, t.styles.OK.Render("All critical prerequisites satisfied!"))
		return err
	}
	fmt.Fprintln(t.w, t.styles.Fail.Render(fmt.Sprintf("%d critical issue(s) found.", s.Failed)))
	_, err := fmt.Fprintln(t.w, "Please resolve before using mobile-mcp.")
	return err
}

func (t *TextReporter) tag(s check.Status) string {
	label := "[" + string(s) + "]"
	switch s {
	case check.StatusOK:
		return t.styles.OK.Render(label)
	case check.StatusWarn:
		return t.styles.Warn.Render(label)
	default:
		return t.styles.Fail.Render(label)
	}
}

// formatLabel dims the "key:" prefix of a detail line.
func formatLabel(styles Styles, s string) string {
	key, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return styles.Dim.Render(key+":") + rest
}
