package compliance

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborgrid-justin/appropriations/finding"
)

// ViolationReport is the structured record prepared for any
// Anti-Deficiency Act violation. Callers route it per the reporting
// metadata; this core only shapes it.
type ViolationReport struct {
	ID              string
	GeneratedAt     time.Time
	TransactionID   string
	Statute         string
	Severity        finding.Severity
	Description     string
	Reporting       Reporting
	RemedialActions []string
}

// remedialActions is the fixed checklist attached to every violation
// report.
var remedialActions = []string{
	"Cease further obligations against the affected account",
	"Notify the agency comptroller and fund holder",
	"Complete a preliminary review of the facts within 14 days",
	"Identify the responsible officials and the control breakdown",
	"Prepare the formal report of violation for the reporting chain",
	"Implement corrective funds-control procedures",
}

// NewViolationReport turns an ADA violation into a structured report
// record. The caller supplies the clock so report generation stays pure.
func NewViolationReport(ob Obligation, v Violation, now time.Time) ViolationReport {
	return ViolationReport{
		ID:              uuid.NewString(),
		GeneratedAt:     now,
		TransactionID:   ob.ID,
		Statute:         v.Statute,
		Severity:        v.Severity,
		Description:     v.Description,
		Reporting:       reportingFor(v.Severity),
		RemedialActions: remedialActions,
	}
}

// Reports generates one report per violation in the result.
func (r ADAResult) Reports(ob Obligation, now time.Time) []ViolationReport {
	if len(r.Violations) == 0 {
		return nil
	}
	reports := make([]ViolationReport, 0, len(r.Violations))
	for _, v := range r.Violations {
		reports = append(reports, NewViolationReport(ob, v, now))
	}
	return reports
}
