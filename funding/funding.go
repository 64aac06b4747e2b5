// Package funding implements the multi-year funding calculators: the
// full-funding policy check, day-weighted incremental funding schedules,
// multi-year contract validation under 10 U.S.C. 2306b, advance
// procurement math, and program-level funding analysis.
package funding

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/finding"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

var hundred = decimal.New(100, 0)

// FullFundingCheck is the input to the full-funding policy rule: a
// procurement must carry its complete cost in the budget year unless
// incremental funding authority is cited.
type FullFundingCheck struct {
	TotalCost      decimal.Decimal
	InitialFunding decimal.Decimal
	// IncrementalAuthority is the cited authority permitting less than
	// full funding. Trusted as cited, flagged for scope verification.
	IncrementalAuthority string
}

// FullFundingResult reports the funded fraction alongside any findings.
type FullFundingResult struct {
	finding.Result
	FundedRatio decimal.Decimal
}

// ValidateFullFunding checks that initial funding covers total cost, or
// that incremental funding authority is cited for the shortfall.
func ValidateFullFunding(c FullFundingCheck) FullFundingResult {
	var res FullFundingResult

	if !c.TotalCost.IsPositive() {
		res.Errorf("total-cost-not-positive", "", "total cost must be positive, got %s", c.TotalCost)
		return res
	}

	res.FundedRatio = c.InitialFunding.Div(c.TotalCost)
	if res.FundedRatio.GreaterThanOrEqual(decimal.New(1, 0)) {
		return res
	}

	pct := res.FundedRatio.Mul(hundred).StringFixed(1)
	if c.IncrementalAuthority == "" {
		res.Errorf("not-fully-funded", "DoD FMR 7000.14-R vol. 2A",
			"initial funding covers %s%% of total cost and no incremental funding authority is cited", pct)
		return res
	}
	res.Warnf("verify-authority-scope", "",
		"incremental funding authority %q accepted as cited; verify it covers the %s%% shortfall",
		c.IncrementalAuthority, decimal.New(1, 0).Sub(res.FundedRatio).Mul(hundred).StringFixed(1))
	return res
}

// Increment is one fiscal year's slice of an incremental funding schedule.
type Increment struct {
	FiscalYear fiscal.Year
	Days       int
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// Schedule apportions totalCost across each fiscal year overlapped by the
// performance period, weighted by calendar days. Rounding drift is
// absorbed into the final year so increments sum exactly to totalCost.
// Returns nil for non-positive cost or an inverted period.
func Schedule(totalCost decimal.Decimal, start, end time.Time) []Increment {
	if !totalCost.IsPositive() || end.Before(start) {
		return nil
	}

	years := fiscal.YearsOverlapping(start, end)
	totalDays := 0
	days := make([]int, len(years))
	for i, y := range years {
		days[i] = fiscal.OverlapDays(y, start, end)
		totalDays += days[i]
	}
	if totalDays == 0 {
		return nil
	}

	increments := make([]Increment, 0, len(years))
	allocated := decimal.Zero
	for i, y := range years {
		inc := Increment{FiscalYear: y, Days: days[i]}
		if i == len(years)-1 {
			inc.Amount = totalCost.Sub(allocated)
		} else {
			inc.Amount = totalCost.
				Mul(decimal.New(int64(days[i]), 0)).
				Div(decimal.New(int64(totalDays), 0)).
				Round(2)
		}
		allocated = allocated.Add(inc.Amount)
		inc.Percentage = inc.Amount.Div(totalCost).Mul(hundred).Round(2)
		increments = append(increments, inc)
	}
	return increments
}

// MultiYearContract is the input to the 10 U.S.C. 2306b validation.
type MultiYearContract struct {
	AuthorityCitation string
	ContractYears     int
	TotalCost         decimal.Decimal
	EstimatedSavings  decimal.Decimal
	SavingsDocumented bool
	// CancellationCeiling is the negotiated cancellation liability limit;
	// nil when none was established.
	CancellationCeiling *decimal.Decimal
}

// minSavingsRatio is the fraction of total cost below which estimated
// savings draw a weak-justification warning.
var minSavingsRatio = decimal.NewFromFloat(0.10)

// ValidateMultiYearContract checks the statutory prerequisites for a
// multi-year procurement contract: cited authority, at least two contract
// years, and documented estimated savings. Thin savings and a missing
// cancellation ceiling are advisory.
func ValidateMultiYearContract(c MultiYearContract) finding.Result {
	var r finding.Result

	if c.AuthorityCitation == "" {
		r.Errorf("authority-missing", "10 U.S.C. 2306b",
			"multi-year contracts require a specific authority citation")
	}
	if c.ContractYears < 2 {
		r.Errorf("insufficient-contract-years", "10 U.S.C. 2306b",
			"multi-year authority requires at least 2 contract years, got %d", c.ContractYears)
	}
	if !c.SavingsDocumented {
		r.Errorf("savings-undocumented", "10 U.S.C. 2306b(a)(1)",
			"estimated savings relative to annual contracts must be documented")
	}

	if c.SavingsDocumented && c.TotalCost.IsPositive() {
		ratio := c.EstimatedSavings.Div(c.TotalCost)
		if ratio.LessThan(minSavingsRatio) {
			r.Warnf("savings-thin", "",
				"estimated savings are %s%% of total cost; the multi-year justification may be weak",
				ratio.Mul(hundred).StringFixed(1))
		}
	}
	if c.CancellationCeiling == nil {
		r.Warnf("no-cancellation-ceiling", "",
			"no cancellation ceiling is established; termination liability is uncapped")
	}

	return r
}

// AdvanceProcurement computes the advance procurement profile for an end
// item: long-lead material is bought the fiscal year before the end item.
type AdvanceProcurement struct {
	EndItemFY      fiscal.Year
	LeadTimeMonths int
}

// AdvanceProcurementPlan is the computed funding profile.
type AdvanceProcurementPlan struct {
	finding.Result
	ProcurementFY fiscal.Year
	SpansYears    int
}

// PlanAdvanceProcurement computes the advance procurement fiscal year and
// flags lead times that undercut or overrun the advance-buy window.
func PlanAdvanceProcurement(a AdvanceProcurement) AdvanceProcurementPlan {
	plan := AdvanceProcurementPlan{
		ProcurementFY: fiscal.Year(int(a.EndItemFY) - 1),
	}

	plan.SpansYears = (a.LeadTimeMonths + 11) / 12
	if a.LeadTimeMonths < 12 {
		plan.Warnf("lead-time-short", "",
			"lead time of %d months does not justify advance procurement a full year ahead", a.LeadTimeMonths)
	}
	if plan.SpansYears > 2 {
		plan.Warnf("lead-time-spans-years", "",
			"lead time of %d months spans %d fiscal years; advance procurement normally spans at most 2",
			a.LeadTimeMonths, plan.SpansYears)
	}
	return plan
}
