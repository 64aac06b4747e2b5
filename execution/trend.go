package execution

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// InsufficientDataError reports a trend request with too few snapshots.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: trend analysis needs at least %d monthly snapshots, got %d", e.Need, e.Have)
}

// MonthlySnapshot is one month's cumulative obligation figure.
type MonthlySnapshot struct {
	Month     time.Time
	Obligated decimal.Decimal
}

// MonthDelta is the obligation movement between consecutive months.
type MonthDelta struct {
	Month time.Time
	Delta decimal.Decimal
}

// Trend is the month-over-month obligation picture.
type Trend struct {
	Deltas []MonthDelta
	// AverageMonthlyVelocity is the mean of the month-over-month deltas.
	AverageMonthlyVelocity decimal.Decimal
	// Accelerating reports whether the most recent delta exceeds the
	// average monthly velocity.
	Accelerating bool
}

// AnalyzeTrend computes month-over-month obligation deltas and the
// average monthly velocity. Snapshots are sorted by month first. At
// least two snapshots are required.
func AnalyzeTrend(snapshots []MonthlySnapshot) (Trend, error) {
	if len(snapshots) < 2 {
		return Trend{}, &InsufficientDataError{Have: len(snapshots), Need: 2}
	}

	sorted := make([]MonthlySnapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Month.Before(sorted[j].Month) })

	var t Trend
	sum := decimal.Zero
	for i := 1; i < len(sorted); i++ {
		delta := sorted[i].Obligated.Sub(sorted[i-1].Obligated)
		t.Deltas = append(t.Deltas, MonthDelta{Month: sorted[i].Month, Delta: delta})
		sum = sum.Add(delta)
	}

	t.AverageMonthlyVelocity = sum.Div(decimal.New(int64(len(t.Deltas)), 0)).Round(2)
	t.Accelerating = t.Deltas[len(t.Deltas)-1].Delta.GreaterThan(t.AverageMonthlyVelocity)
	return t, nil
}
