// Package fiscal provides date arithmetic for the federal fiscal year,
// which runs from October 1 through September 30 and is numbered after
// the calendar year in which it ends.
package fiscal

import "time"

// Year is a federal fiscal year ordinal. FY 2024 spans
// 2023-10-01 through 2024-09-30.
type Year int

// YearOf returns the fiscal year containing the given date.
func YearOf(date time.Time) Year {
	if date.Month() >= time.October {
		return Year(date.Year() + 1)
	}
	return Year(date.Year())
}

// Start returns the first instant of the fiscal year (October 1, 00:00:00)
// in the given location.
func (y Year) Start(loc *time.Location) time.Time {
	return time.Date(int(y)-1, time.October, 1, 0, 0, 0, 0, loc)
}

// End returns the last instant of the fiscal year
// (September 30, 23:59:59.999999999) in the given location.
func (y Year) End(loc *time.Location) time.Time {
	return time.Date(int(y), time.September, 30, 23, 59, 59, 999999999, loc)
}

// Contains reports whether the date falls within the fiscal year.
func (y Year) Contains(date time.Time) bool {
	return YearOf(date) == y
}

// QuarterOf returns the fiscal quarter (1-4) containing the date.
// Q1 is October-December, Q2 January-March, Q3 April-June, Q4 July-September.
func QuarterOf(date time.Time) int {
	switch date.Month() {
	case time.October, time.November, time.December:
		return 1
	case time.January, time.February, time.March:
		return 2
	case time.April, time.May, time.June:
		return 3
	default:
		return 4
	}
}

// DaysElapsed returns the number of whole or partial days of the date's
// fiscal year that have elapsed, counting the date's own day. October 1
// reports 1.
func DaysElapsed(date time.Time) int {
	start := YearOf(date).Start(date.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return int(day.Sub(start).Hours()/24) + 1
}

// DaysRemaining returns the number of days of the date's fiscal year that
// remain after the date's own day. September 30 reports 0.
func DaysRemaining(date time.Time) int {
	return DaysInYear(YearOf(date)) - DaysElapsed(date)
}

// DaysInYear returns the total number of days in the fiscal year. Fiscal
// years contain a leap day when the calendar year they end in is a leap year.
func DaysInYear(y Year) int {
	start := y.Start(time.UTC)
	next := Year(int(y) + 1).Start(time.UTC)
	return int(next.Sub(start).Hours() / 24)
}

// Progress returns the fraction of the fiscal year elapsed at the date,
// in [0, 1]. Used as the default expected obligation pace.
func Progress(date time.Time) float64 {
	return float64(DaysElapsed(date)) / float64(DaysInYear(YearOf(date)))
}

// OverlapDays returns the number of calendar days of fiscal year y that fall
// within [from, to] inclusive. Returns 0 when the period does not touch the
// fiscal year or is inverted.
func OverlapDays(y Year, from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	start := y.Start(time.UTC)
	end := y.End(time.UTC)

	lo := truncateDay(from)
	if lo.Before(start) {
		lo = start
	}
	hi := truncateDay(to)
	if hi.After(end) {
		hi = truncateDay(end)
	}
	if hi.Before(lo) {
		return 0
	}
	return int(hi.Sub(lo).Hours()/24) + 1
}

// YearsOverlapping returns the fiscal years touched by [from, to] inclusive,
// in ascending order. Returns nil for an inverted period.
func YearsOverlapping(from, to time.Time) []Year {
	if to.Before(from) {
		return nil
	}
	var years []Year
	for y := YearOf(from); y <= YearOf(to); y++ {
		years = append(years, y)
	}
	return years
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
