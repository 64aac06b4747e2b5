// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/harborgrid-justin/appropriations/finding"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Severity returns text colored by severity band: Critical and High in
// red, Medium in yellow, Low dimmed.
func (s *Styles) Severity(sev finding.Severity, text string) string {
	switch sev {
	case finding.SeverityCritical:
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			Bold().
			String()
	case finding.SeverityHigh:
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	case finding.SeverityMedium:
		return s.output.String(text).
			Foreground(s.output.Color("3")).
			String()
	}
	return s.Dim(text)
}

// Code returns a styled finding code (cyan).
func (s *Styles) Code(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Statute returns a styled statute citation (magenta).
func (s *Styles) Statute(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// State returns a styled workflow state name (yellow).
func (s *Styles) State(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Timing returns a styled timing string, colored based on duration.
// Slow operations are highlighted in red, everything else is dimmed.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	}
	return s.Dim(text)
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
