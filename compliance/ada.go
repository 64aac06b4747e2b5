package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/finding"
)

// Violation is a single Anti-Deficiency Act finding with its statute and
// severity. Violations are also mirrored into the result's error list so
// callers that only look at errors still block.
type Violation struct {
	Check       string
	Statute     string
	Severity    finding.Severity
	Description string
}

// Reporting is the mandatory reporting routing attached to an ADA result.
type Reporting struct {
	Required   bool
	Recipients []string
	Deadline   string
}

// ADAResult carries the union of all Anti-Deficiency Act sub-check
// findings, the highest severity encountered, and that severity's
// reporting routing.
type ADAResult struct {
	finding.Result
	Severity   finding.Severity
	Violations []Violation
	Reporting  Reporting
	// Advisory is the fixed escalation instruction attached to critical
	// violations.
	Advisory string
}

// criticalAdvisory is the instruction attached to every critical violation.
const criticalAdvisory = "HALT: cease all further obligations against this account immediately and escalate to the agency head; a reportable Anti-Deficiency Act violation may have occurred"

// reportingFor maps a severity to its mandatory reporting routing.
func reportingFor(sev finding.Severity) Reporting {
	switch sev {
	case finding.SeverityCritical:
		return Reporting{
			Required:   true,
			Recipients: []string{"OMB", "Congress", "GAO", "Agency Head"},
			Deadline:   "immediately",
		}
	case finding.SeverityHigh:
		return Reporting{
			Required:   true,
			Recipients: []string{"Agency CFO", "Comptroller"},
			Deadline:   "24 hours",
		}
	case finding.SeverityMedium:
		return Reporting{
			Required:   true,
			Recipients: []string{"Budget Officer"},
			Deadline:   "monitor",
		}
	}
	return Reporting{}
}

// CheckADA runs the applicable Anti-Deficiency Act sub-checks against an
// obligation and account snapshot. Sub-checks run based on which fields are
// populated; their findings are unioned and the highest severity wins the
// reporting routing.
//
// Concurrency note: this is a check-then-act over a snapshot. Two
// concurrent proposals can each pass against the same stale snapshot and
// jointly breach the ceiling; callers must serialize validate-then-commit
// per account or re-run this check in the committing transaction.
func CheckADA(ob Obligation, acct BudgetAccount, app *Apportionment) ADAResult {
	res := ADAResult{Severity: finding.SeverityLow}

	record := func(v Violation) {
		res.Violations = append(res.Violations, v)
		res.Errorf("ada-"+v.Check, v.Statute, "%s", v.Description)
		if v.Severity > res.Severity {
			res.Severity = v.Severity
		}
	}

	checkOverobligation(ob, acct, &res, record)
	checkAugmentation(ob, &res, record)
	checkVoluntaryServices(ob, record)
	checkAdvancePayment(ob, record)
	checkApportionment(ob, app, record)

	res.Reporting = reportingFor(res.Severity)
	if res.Severity == finding.SeverityCritical {
		res.Advisory = criticalAdvisory
	}
	return res
}

// checkOverobligation enforces 31 U.S.C. 1341(a)(1)(A): obligations plus
// commitments may not exceed the tightest ceiling. Passing obligations
// that leave thin headroom raise the severity without blocking.
func checkOverobligation(ob Obligation, acct BudgetAccount, res *ADAResult, record func(Violation)) {
	ceiling := acct.Ceiling()
	exposure := acct.Obligated.Add(acct.Committed).Add(ob.Amount)

	if exposure.GreaterThan(ceiling) {
		over := exposure.Sub(ceiling)
		record(Violation{
			Check:    "overobligation",
			Statute:  "31 U.S.C. 1341(a)(1)(A)",
			Severity: finding.SeverityCritical,
			Description: "proposed obligation of " + renderAmount(ob.Amount) +
				" exceeds the controlling ceiling of " + renderAmount(ceiling) +
				" by " + renderAmount(over),
		})
		return
	}

	if !ceiling.IsPositive() {
		return
	}
	headroom := ceiling.Sub(exposure).Div(ceiling)
	switch {
	case headroom.LessThan(decimal.NewFromFloat(0.05)):
		res.Warnf("headroom-critical", "",
			"obligation leaves under 5%% of the ceiling as headroom")
		if finding.SeverityHigh > res.Severity {
			res.Severity = finding.SeverityHigh
		}
	case headroom.LessThan(decimal.NewFromFloat(0.10)):
		res.Warnf("headroom-low", "",
			"obligation leaves under 10%% of the ceiling as headroom")
		if finding.SeverityMedium > res.Severity {
			res.Severity = finding.SeverityMedium
		}
	}
}

// checkAugmentation enforces 31 U.S.C. 1532: non-appropriated funding
// requires augmentation authority. Cited authority is trusted but flagged.
func checkAugmentation(ob Obligation, res *ADAResult, record func(Violation)) {
	if !ob.FundingSource.nonAppropriated() {
		return
	}
	if ob.AugmentationAuthority == "" {
		record(Violation{
			Check:       "augmentation",
			Statute:     "31 U.S.C. 1532",
			Severity:    finding.SeverityHigh,
			Description: "funding source " + ob.FundingSource.String() + " augments the appropriation without cited authority",
		})
		return
	}
	res.Warnf("verify-authority-scope", "",
		"augmentation authority %q accepted as cited; verify its scope covers this receipt", ob.AugmentationAuthority)
}

// checkVoluntaryServices enforces 31 U.S.C. 1342: no uncompensated
// services absent a documented emergency.
func checkVoluntaryServices(ob Obligation, record func(Violation)) {
	if !ob.VoluntaryService {
		return
	}
	if !ob.Emergency {
		record(Violation{
			Check:       "voluntary-services",
			Statute:     "31 U.S.C. 1342",
			Severity:    finding.SeverityCritical,
			Description: "acceptance of voluntary services without an emergency involving the safety of human life or protection of property",
		})
		return
	}
	if ob.EmergencyJustification == "" {
		record(Violation{
			Check:       "voluntary-services",
			Statute:     "31 U.S.C. 1342",
			Severity:    finding.SeverityHigh,
			Description: "emergency acceptance of voluntary services claimed without a documented justification",
		})
	}
}

// checkAdvancePayment enforces 31 U.S.C. 1341(a)(1)(B): no payment before
// the appropriation is available unless advance-payment authority is cited.
func checkAdvancePayment(ob Obligation, record func(Violation)) {
	if ob.PaymentDate == nil {
		return
	}
	availableFrom := ob.FiscalYear.Start(ob.PaymentDate.Location())
	if !ob.PaymentDate.Before(availableFrom) {
		return
	}
	if ob.AdvancePaymentAuthority == "" {
		record(Violation{
			Check:    "advance-payment",
			Statute:  "31 U.S.C. 1341(a)(1)(B)",
			Severity: finding.SeverityCritical,
			Description: "payment dated " + ob.PaymentDate.Format("2006-01-02") +
				" precedes the appropriation's availability on " + availableFrom.Format("2006-01-02") +
				" without cited advance-payment authority",
		})
	}
}

// checkApportionment enforces 31 U.S.C. 1517: obligations must fall inside
// the apportionment period and clear of footnote-restricted activities.
func checkApportionment(ob Obligation, app *Apportionment, record func(Violation)) {
	if app == nil {
		return
	}
	if ob.ObligationDate.Before(app.Period.Start) || ob.ObligationDate.After(app.Period.End) {
		record(Violation{
			Check:    "apportionment-period",
			Statute:  "31 U.S.C. 1517(a)",
			Severity: finding.SeverityCritical,
			Description: "obligation dated " + ob.ObligationDate.Format("2006-01-02") +
				" falls outside the apportionment period " +
				app.Period.Start.Format("2006-01-02") + " to " + app.Period.End.Format("2006-01-02"),
		})
	}
	for _, restricted := range app.RestrictedActivities {
		if restricted == ob.Purpose {
			record(Violation{
				Check:       "apportionment-restriction",
				Statute:     "31 U.S.C. 1517(a)",
				Severity:    finding.SeverityCritical,
				Description: "purpose " + ob.Purpose + " is restricted by an apportionment footnote",
			})
		}
	}
}
