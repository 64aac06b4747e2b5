package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/appropriation"
	"github.com/harborgrid-justin/appropriations/finding"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

// PTAResult carries the three sub-results of the Purpose/Time/Amount rule.
// Validity requires all three sub-checks to pass; findings are never
// collapsed so callers can attribute each problem to its restriction.
type PTAResult struct {
	Purpose finding.Result
	Time    finding.Result
	Amount  finding.Result
}

// Valid reports whether all three restrictions passed.
func (r PTAResult) Valid() bool {
	return r.Purpose.Valid() && r.Time.Valid() && r.Amount.Valid()
}

// Combined returns the union of the three sub-results in purpose, time,
// amount order.
func (r PTAResult) Combined() finding.Result {
	var combined finding.Result
	combined.Merge(r.Purpose)
	combined.Merge(r.Time)
	combined.Merge(r.Amount)
	return combined
}

// ValidatePTA applies the three core restrictions on appropriated funds:
// purpose (31 U.S.C. 1301), time (31 U.S.C. 1502) and amount
// (31 U.S.C. 1341). Sub-checks run independently; an error in one never
// suppresses findings from another.
func ValidatePTA(ob Obligation, acct BudgetAccount, t appropriation.Thresholds) PTAResult {
	return PTAResult{
		Purpose: checkPurpose(ob, t),
		Time:    checkTime(ob, t),
		Amount:  checkAmount(ob, acct, t),
	}
}

func checkPurpose(ob Obligation, t appropriation.Thresholds) finding.Result {
	r := appropriation.ValidatePurpose(ob.Category, ob.Purpose)

	for _, prohibited := range ob.ProhibitedPurposes {
		if prohibited == ob.Purpose {
			r.Errorf("purpose-prohibited", "31 U.S.C. 1301(a)",
				"purpose %q is explicitly prohibited for this obligation", ob.Purpose)
		}
	}
	if len(ob.RequiredPurposes) > 0 {
		found := false
		for _, required := range ob.RequiredPurposes {
			if required == ob.Purpose {
				found = true
				break
			}
		}
		if !found {
			r.Errorf("purpose-not-in-required", "31 U.S.C. 1301(a)",
				"purpose %q is not among the purposes this obligation is restricted to", ob.Purpose)
		}
	}

	if len(ob.Justification) < t.MinJustification {
		r.Warnf("justification-insufficient", "",
			"justification is %d characters; document at least %d to support the purpose determination",
			len(ob.Justification), t.MinJustification)
	}

	return r
}

func checkTime(ob Obligation, t appropriation.Thresholds) finding.Result {
	var r finding.Result

	expired, days := ob.Category.IsExpired(ob.FiscalYear, ob.Subtype, ob.ObligationDate)
	if expired {
		exp := ob.Category.ExpirationOf(ob.FiscalYear, ob.Subtype)
		r.Errorf("funds-expired", "31 U.S.C. 1502(a)",
			"FY%d %s funds expired at the end of FY%d and may not be obligated on %s",
			ob.FiscalYear, ob.Category.Code(), exp.FiscalYear, ob.ObligationDate.Format("2006-01-02"))
		return r
	}

	if exp := ob.Category.ExpirationOf(ob.FiscalYear, ob.Subtype); !exp.Never && days <= t.NearExpirationDays {
		r.Warnf("funds-near-expiration", "",
			"funds expire in %d days (end of FY%d); obligate promptly or the authority lapses", days, exp.FiscalYear)
	}

	// Bona fide need cross-check: a need arising outside the appropriation's
	// fiscal year must clear one of the 1502 exceptions even when no formal
	// exception analysis was requested. The finding matches the bona fide
	// validator's exactly so the orchestrator's union reports it once.
	if need, ok := ob.needDate(); ok {
		if fiscal.YearOf(need) != ob.FiscalYear {
			if matchException(ob) == ExceptionNone {
				r.Errorf("bona-fide-need", "31 U.S.C. 1502(a)",
					"need date %s falls in FY%d but the appropriation is FY%d and no statutory exception applies",
					need.Format("2006-01-02"), fiscal.YearOf(need), ob.FiscalYear)
			}
		}
	}

	return r
}

func checkAmount(ob Obligation, acct BudgetAccount, t appropriation.Thresholds) finding.Result {
	var r finding.Result

	if !ob.Amount.IsPositive() {
		r.Errorf("amount-not-positive", "", "obligation amount must be positive, got %s", ob.Amount)
		return r
	}

	available := acct.Available()
	if ob.AvailableOverride != nil {
		available = *ob.AvailableOverride
	}

	if ob.Amount.GreaterThan(available) {
		r.Errorf("amount-exceeds-available", "31 U.S.C. 1341(a)(1)(A)",
			"obligation of %s exceeds available balance of %s",
			renderAmount(ob.Amount), renderAmount(available))
		return r
	}

	if available.IsPositive() {
		consumed := ob.Amount.Div(available)
		if consumed.GreaterThan(t.HighConsumption) {
			pct := consumed.Mul(decimal.New(100, 0)).StringFixed(1)
			r.Warnf("high-consumption", "",
				"obligation consumes %s%% of remaining available funds", pct)
		}
	}

	return r
}

func renderAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
