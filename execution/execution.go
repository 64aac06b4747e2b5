// Package execution tracks budget execution against the fiscal calendar:
// derived balance metrics, spend velocity and year-end projection, status
// classification against an expected obligation rate, and month-over-month
// trend analysis.
package execution

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/fiscal"
)

var hundred = decimal.New(100, 0)

// Snapshot is one point-in-time picture of an account's execution.
type Snapshot struct {
	FiscalYear   fiscal.Year
	AsOf         time.Time
	Appropriated decimal.Decimal
	Committed    decimal.Decimal
	Obligated    decimal.Decimal
	Expended     decimal.Decimal
}

// Metrics is the derived balance picture for a snapshot.
type Metrics struct {
	// Available is appropriated less obligated and committed.
	Available decimal.Decimal
	// Unliquidated is obligated but not yet expended.
	Unliquidated decimal.Decimal
	// ObligationRate is obligated over appropriated.
	ObligationRate decimal.Decimal
	// ExpenditureRate is expended over obligated.
	ExpenditureRate decimal.Decimal
}

// ComputeMetrics derives the balance metrics for a snapshot. Rates are
// zero when their denominator is not positive.
func ComputeMetrics(s Snapshot) Metrics {
	m := Metrics{
		Available:    s.Appropriated.Sub(s.Obligated).Sub(s.Committed),
		Unliquidated: s.Obligated.Sub(s.Expended),
	}
	if s.Appropriated.IsPositive() {
		m.ObligationRate = s.Obligated.Div(s.Appropriated).Round(4)
	}
	if s.Obligated.IsPositive() {
		m.ExpenditureRate = s.Expended.Div(s.Obligated).Round(4)
	}
	return m
}

// Velocity is the obligation pace of a snapshot within its fiscal year.
type Velocity struct {
	DaysElapsed   int
	DaysRemaining int
	// DailyRate is obligated divided by fiscal days elapsed.
	DailyRate decimal.Decimal
	// ProjectedYearEnd extends the daily rate through the rest of the
	// fiscal year.
	ProjectedYearEnd decimal.Decimal
}

// ComputeVelocity derives the obligation pace from a snapshot. The
// projection assumes the historical daily rate holds for the remainder
// of the fiscal year.
func ComputeVelocity(s Snapshot) Velocity {
	v := Velocity{
		DaysElapsed:   fiscal.DaysElapsed(s.AsOf),
		DaysRemaining: fiscal.DaysRemaining(s.AsOf),
	}
	if v.DaysElapsed <= 0 {
		v.ProjectedYearEnd = s.Obligated
		return v
	}
	v.DailyRate = s.Obligated.Div(decimal.New(int64(v.DaysElapsed), 0)).Round(2)
	v.ProjectedYearEnd = s.Obligated.Add(
		v.DailyRate.Mul(decimal.New(int64(v.DaysRemaining), 0))).Round(2)
	return v
}

// Status classifies execution pace against the expected obligation rate.
type Status int

const (
	OnTrack Status = iota
	Behind
	SignificantlyBehind
	Ahead
)

func (s Status) String() string {
	switch s {
	case OnTrack:
		return "on track"
	case Behind:
		return "behind"
	case SignificantlyBehind:
		return "significantly behind"
	case Ahead:
		return "ahead"
	}
	return "unknown"
}

// Classification thresholds, in percentage points of variance from the
// expected obligation rate.
var (
	significantlyBehindAt = decimal.New(-20, 0)
	behindAt              = decimal.New(-10, 0)
	aheadAt               = decimal.New(10, 0)
)

// yearEndRushWindow is the number of remaining fiscal days under which
// ahead-of-pace obligation is flagged as a possible year-end spend-down.
const yearEndRushWindow = 30

// Assessment is the pace verdict for a snapshot.
type Assessment struct {
	Status Status
	// ExpectedRate is the obligation rate the account should be at.
	ExpectedRate decimal.Decimal
	// ActualRate is the observed obligation rate.
	ActualRate decimal.Decimal
	// VariancePoints is actual minus expected, in percentage points.
	VariancePoints decimal.Decimal
	// YearEndRush marks ahead-of-pace obligation inside the final days
	// of the fiscal year, the classic use-it-or-lose-it pattern.
	YearEndRush bool
}

// Assess classifies a snapshot's pace. When target is nil the expected
// rate defaults to the elapsed fraction of the fiscal year, the
// straight-line benchmark.
func Assess(s Snapshot, target *decimal.Decimal) Assessment {
	a := Assessment{ActualRate: ComputeMetrics(s).ObligationRate}

	if target != nil {
		a.ExpectedRate = *target
	} else {
		a.ExpectedRate = decimal.NewFromFloat(fiscal.Progress(s.AsOf)).Round(4)
	}

	a.VariancePoints = a.ActualRate.Sub(a.ExpectedRate).Mul(hundred).Round(1)

	switch {
	case a.VariancePoints.LessThanOrEqual(significantlyBehindAt):
		a.Status = SignificantlyBehind
	case a.VariancePoints.LessThanOrEqual(behindAt):
		a.Status = Behind
	case a.VariancePoints.GreaterThanOrEqual(aheadAt):
		a.Status = Ahead
		a.YearEndRush = fiscal.DaysRemaining(s.AsOf) < yearEndRushWindow
	default:
		a.Status = OnTrack
	}
	return a
}
