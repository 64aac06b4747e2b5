// Package finding defines the structured results returned by every
// validator in the engine. Business-rule failures are values, never
// panics: each check appends findings to a Result and callers decide
// what to do with them.
package finding

import "fmt"

// Severity ranks how serious a violation is. Only Anti-Deficiency Act
// checks assign severities above Low; ordinary compliance findings
// carry SeverityLow.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Finding is a single validation outcome. Code is a stable machine-readable
// identifier; Statute cites the legal basis when one applies.
type Finding struct {
	Code    string
	Message string
	Statute string
}

func (f Finding) String() string {
	if f.Statute != "" {
		return fmt.Sprintf("%s (%s)", f.Message, f.Statute)
	}
	return f.Message
}

// Result collects the findings of one validation pass. Errors block the
// caller's commit path; warnings are advisory. Order of insertion is
// preserved so callers can present findings in evaluation order.
type Result struct {
	Errors   []Finding
	Warnings []Finding
}

// Valid reports whether the result carries no blocking errors.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Errorf appends a blocking finding.
func (r *Result) Errorf(code, statute, format string, args ...any) {
	r.Errors = append(r.Errors, Finding{
		Code:    code,
		Statute: statute,
		Message: fmt.Sprintf(format, args...),
	})
}

// Warnf appends an advisory finding.
func (r *Result) Warnf(code, statute, format string, args ...any) {
	r.Warnings = append(r.Warnings, Finding{
		Code:    code,
		Statute: statute,
		Message: fmt.Sprintf(format, args...),
	})
}

// Merge appends all findings from other, preserving order.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
