package fiscal

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Year
	}{
		{"first day of FY", date(2023, time.October, 1), 2024},
		{"last day of FY", date(2024, time.September, 30), 2024},
		{"mid year", date(2024, time.March, 15), 2024},
		{"december", date(2023, time.December, 31), 2024},
		{"september before october", date(2023, time.September, 30), 2023},
		{"calendar new year", date(2024, time.January, 1), 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearOf(tt.date))
		})
	}
}

func TestYearOfMatchesCalendarRule(t *testing.T) {
	// For all dates: fiscalYearOf(d) == d.year when month < October,
	// else d.year + 1.
	d := date(2020, time.January, 1)
	for d.Year() < 2026 {
		want := Year(d.Year())
		if d.Month() >= time.October {
			want = Year(d.Year() + 1)
		}
		assert.Equal(t, want, YearOf(d), "date %s", d)
		d = d.AddDate(0, 0, 17)
	}
}

func TestStartEndBracketDate(t *testing.T) {
	for _, d := range []time.Time{
		date(2023, time.October, 1),
		date(2024, time.September, 30),
		date(2024, time.February, 29),
	} {
		fy := YearOf(d)
		assert.False(t, d.Before(fy.Start(time.UTC)), "start after %s", d)
		assert.False(t, d.After(fy.End(time.UTC)), "end before %s", d)
	}
}

func TestStartEnd(t *testing.T) {
	fy := Year(2024)
	assert.Equal(t, date(2023, time.October, 1), fy.Start(time.UTC))
	assert.Equal(t, 2024, fy.End(time.UTC).Year())
	assert.Equal(t, time.September, fy.End(time.UTC).Month())
	assert.Equal(t, 30, fy.End(time.UTC).Day())
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date(2023, time.October, 1), 1},
		{date(2023, time.December, 31), 1},
		{date(2024, time.January, 1), 2},
		{date(2024, time.March, 31), 2},
		{date(2024, time.April, 1), 3},
		{date(2024, time.June, 30), 3},
		{date(2024, time.July, 1), 4},
		{date(2024, time.September, 30), 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuarterOf(tt.date), "date %s", tt.date)
	}
}

func TestDaysElapsedRemaining(t *testing.T) {
	// FY2024 ends in calendar 2024, a leap year, so it has 366 days.
	assert.Equal(t, 366, DaysInYear(Year(2024)))
	assert.Equal(t, 365, DaysInYear(Year(2023)))

	first := date(2023, time.October, 1)
	assert.Equal(t, 1, DaysElapsed(first))
	assert.Equal(t, 365, DaysRemaining(first))

	last := date(2024, time.September, 30)
	assert.Equal(t, 366, DaysElapsed(last))
	assert.Equal(t, 0, DaysRemaining(last))
}

func TestProgress(t *testing.T) {
	assert.True(t, Progress(date(2023, time.October, 1)) < 0.01)
	assert.Equal(t, 1.0, Progress(date(2024, time.September, 30)))

	mid := Progress(date(2024, time.April, 1))
	assert.True(t, mid > 0.49 && mid < 0.52, "got %f", mid)
}

func TestOverlapDays(t *testing.T) {
	tests := []struct {
		name string
		fy   Year
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "fully inside",
			fy:   2024,
			from: date(2024, time.January, 1),
			to:   date(2024, time.January, 31),
			want: 31,
		},
		{
			name: "whole fiscal year",
			fy:   2024,
			from: date(2023, time.October, 1),
			to:   date(2024, time.September, 30),
			want: 366,
		},
		{
			name: "straddles FY start",
			fy:   2024,
			from: date(2023, time.September, 1),
			to:   date(2023, time.October, 10),
			want: 10,
		},
		{
			name: "no overlap",
			fy:   2024,
			from: date(2021, time.January, 1),
			to:   date(2021, time.June, 30),
			want: 0,
		},
		{
			name: "inverted period",
			fy:   2024,
			from: date(2024, time.June, 1),
			to:   date(2024, time.January, 1),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapDays(tt.fy, tt.from, tt.to))
		})
	}
}

func TestYearsOverlapping(t *testing.T) {
	years := YearsOverlapping(date(2023, time.November, 1), date(2025, time.January, 15))
	assert.Equal(t, []Year{2024, 2025}, years)

	single := YearsOverlapping(date(2024, time.January, 1), date(2024, time.February, 1))
	assert.Equal(t, []Year{2024}, single)

	assert.Zero(t, YearsOverlapping(date(2024, time.June, 1), date(2024, time.January, 1)))
}
