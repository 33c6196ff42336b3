package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwalton/go-supportscolor"
	"github.com/muesli/termenv"
)

// Terminal palette. Basic ANSI colors keep the output readable on both
// light and dark backgrounds.
const (
	ColorGreen  = "2"
	ColorYellow = "3"
	ColorRed    = "1"
	ColorGray   = "8"
)

// Styles holds the styles used by the text reporter.
type Styles struct {
	OK     lipgloss.Style
	Warn   lipgloss.Style
	Fail   lipgloss.Style
	Header lipgloss.Style
	Dim    lipgloss.Style
}

// NewStyles returns styles bound to w. With color disabled every style
// renders plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
		return Styles{
			OK:     r.NewStyle(),
			Warn:   r.NewStyle(),
			Fail:   r.NewStyle(),
			Header: r.NewStyle(),
			Dim:    r.NewStyle(),
		}
	}
	r.SetColorProfile(termenv.ANSI)
	return Styles{
		OK:     r.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Warn:   r.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Fail:   r.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Header: r.NewStyle().Bold(true),
		Dim:    r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// ColorEnabled reports whether stdout should be colored.
func ColorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return supportscolor.Stdout().SupportsColor
}
