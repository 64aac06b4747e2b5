package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/finding"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

// Exception identifies which statutory exception, if any, permitted an
// obligation whose need falls outside the appropriation's fiscal year.
type Exception int

const (
	ExceptionNone Exception = iota
	ExceptionSeverableService
	ExceptionStockItem
	ExceptionLeadTime
	ExceptionMultiYearAuthority
	ExceptionContinuingResolution
)

func (e Exception) String() string {
	switch e {
	case ExceptionNone:
		return "none"
	case ExceptionSeverableService:
		return "severable service"
	case ExceptionStockItem:
		return "stock item"
	case ExceptionLeadTime:
		return "production lead time"
	case ExceptionMultiYearAuthority:
		return "multi-year contract authority"
	case ExceptionContinuingResolution:
		return "continuing resolution authority"
	}
	return "unknown"
}

// BonaFideResult is the outcome of the bona fide need analysis. When the
// need fell outside the appropriation year but an exception applied, the
// exception is recorded.
type BonaFideResult struct {
	finding.Result
	Exception Exception
}

// ValidateBonaFideNeed applies 31 U.S.C. 1502: the obligation's need must
// arise within the appropriation's period of availability. When the need
// date (or performance start) falls in another fiscal year, the enumerated
// exceptions are checked in priority order and the first match wins. No
// match is a blocking violation.
func ValidateBonaFideNeed(ob Obligation) BonaFideResult {
	var res BonaFideResult

	need, ok := ob.needDate()
	if !ok {
		// Nothing documents when the need arises. Not a violation, but
		// worth flagging for the record.
		res.Warnf("need-date-missing", "",
			"obligation documents no need date or performance period; bona fide need cannot be confirmed")
		return res
	}

	needFY := fiscal.YearOf(need)
	if needFY == ob.FiscalYear {
		return res
	}

	res.Exception = matchException(ob)
	switch res.Exception {
	case ExceptionNone:
		res.Errorf("bona-fide-need", "31 U.S.C. 1502(a)",
			"need date %s falls in FY%d but the appropriation is FY%d and no statutory exception applies",
			need.Format("2006-01-02"), needFY, ob.FiscalYear)
	case ExceptionSeverableService:
		// Need is apportioned to the days overlapping the appropriation
		// year; nothing further to flag.
	case ExceptionStockItem:
		// Stock-level need is set by consumption, not order timing.
	case ExceptionLeadTime:
		// Lead time and justification already verified by matchException.
	case ExceptionMultiYearAuthority:
		res.Warnf("verify-authority-scope", "",
			"multi-year contract authority %q accepted as cited; verify its scope covers this obligation",
			ob.MultiYearAuthority)
	case ExceptionContinuingResolution:
		res.Warnf("verify-authority-scope", "",
			"continuing resolution authority %q accepted as cited; verify its scope covers this obligation",
			ob.ContinuingResolutionAuthority)
	}

	return res
}

// matchException checks the 1502 exceptions in priority order and returns
// the first that applies.
func matchException(ob Obligation) Exception {
	if ob.ContractType == ContractSeverable && ob.Performance != nil &&
		fiscal.OverlapDays(ob.FiscalYear, ob.Performance.Start, ob.Performance.End) > 0 {
		return ExceptionSeverableService
	}
	if ob.IsStockItem {
		return ExceptionStockItem
	}
	if need, ok := ob.needDate(); ok {
		if fiscal.YearOf(need) == fiscal.Year(int(ob.FiscalYear)+1) &&
			ob.LeadTimeMonths >= 12 && ob.LeadTimeJustification != "" {
			return ExceptionLeadTime
		}
	}
	if ob.MultiYearAuthority != "" {
		return ExceptionMultiYearAuthority
	}
	if ob.ContinuingResolutionAuthority != "" {
		return ExceptionContinuingResolution
	}
	return ExceptionNone
}

// SeverableContract describes a severable services contract whose cost is
// apportioned across the fiscal years its performance period overlaps.
type SeverableContract struct {
	TotalCost   decimal.Decimal
	Performance Period
	// FundingByYear is the caller's planned funding split, checked against
	// the day-weighted apportionment.
	FundingByYear map[fiscal.Year]decimal.Decimal
}

// YearShare is one fiscal year's day-weighted portion of a severable
// contract.
type YearShare struct {
	FiscalYear fiscal.Year
	Days       int
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// SeverableResult carries the apportionment schedule plus any findings
// about the caller's funding plan.
type SeverableResult struct {
	finding.Result
	Shares []YearShare
}

// maxFundingSkew is the tolerated gap, in percentage points, between the
// planned funding share and the day-weighted share for a fiscal year.
var maxFundingSkew = decimal.New(5, 0)

// ValidateSeverableContract apportions a severable contract's total cost
// across each overlapped fiscal year in proportion to calendar days, and
// warns when the planned funding deviates from that proportion by more
// than five percentage points. Rounding drift is absorbed into the final
// year so the shares sum exactly to the total cost.
func ValidateSeverableContract(c SeverableContract) SeverableResult {
	var res SeverableResult

	if !c.TotalCost.IsPositive() {
		res.Errorf("total-cost-not-positive", "", "contract total cost must be positive, got %s", c.TotalCost)
		return res
	}
	if c.Performance.End.Before(c.Performance.Start) {
		res.Errorf("performance-period-inverted", "",
			"performance period ends %s before it starts %s",
			c.Performance.End.Format("2006-01-02"), c.Performance.Start.Format("2006-01-02"))
		return res
	}

	years := fiscal.YearsOverlapping(c.Performance.Start, c.Performance.End)
	totalDays := 0
	days := make([]int, len(years))
	for i, y := range years {
		days[i] = fiscal.OverlapDays(y, c.Performance.Start, c.Performance.End)
		totalDays += days[i]
	}

	hundred := decimal.New(100, 0)
	allocated := decimal.Zero
	for i, y := range years {
		share := YearShare{FiscalYear: y, Days: days[i]}
		if i == len(years)-1 {
			share.Amount = c.TotalCost.Sub(allocated)
		} else {
			share.Amount = c.TotalCost.
				Mul(decimal.New(int64(days[i]), 0)).
				Div(decimal.New(int64(totalDays), 0)).
				Round(2)
		}
		allocated = allocated.Add(share.Amount)
		share.Percentage = share.Amount.Div(c.TotalCost).Mul(hundred).Round(2)
		res.Shares = append(res.Shares, share)
	}

	for _, share := range res.Shares {
		funded, ok := c.FundingByYear[share.FiscalYear]
		if !ok {
			continue
		}
		fundedPct := funded.Div(c.TotalCost).Mul(hundred)
		if fundedPct.Sub(share.Percentage).Abs().GreaterThan(maxFundingSkew) {
			res.Warnf("funding-skew", "",
				"FY%d is funded at %s%% of total cost but performance days support %s%%",
				share.FiscalYear, fundedPct.StringFixed(1), share.Percentage.StringFixed(1))
		}
	}

	return res
}
