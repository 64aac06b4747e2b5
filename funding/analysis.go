package funding

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/fiscal"
)

// YearFunding is one fiscal year's funding entry for a program.
type YearFunding struct {
	FiscalYear   fiscal.Year
	Appropriated decimal.Decimal
	Obligated    decimal.Decimal
	Expended     decimal.Decimal
	// Expires marks funding whose obligational authority lapses at the
	// end of its fiscal year (annual and final-year multi-year money).
	Expires bool
}

// YearRates is the derived execution picture for one fiscal year.
type YearRates struct {
	FiscalYear      fiscal.Year
	Appropriated    decimal.Decimal
	Obligated       decimal.Decimal
	Expended        decimal.Decimal
	ObligationRate  decimal.Decimal // obligated / appropriated
	ExpenditureRate decimal.Decimal // expended / obligated
}

// ExpiringFunds flags unobligated money lapsing at the end of the current
// fiscal year.
type ExpiringFunds struct {
	FiscalYear  fiscal.Year
	Unobligated decimal.Decimal
}

// Analysis aggregates a program's funding entries.
type Analysis struct {
	TotalAppropriated decimal.Decimal
	TotalObligated    decimal.Decimal
	TotalExpended     decimal.Decimal
	ByYear            []YearRates
	// Expiring lists funds that lapse unobligated at the end of the
	// current fiscal year: the year-end use-it-or-lose-it list.
	Expiring []ExpiringFunds
}

// Analyze rolls up per-year funding entries into program totals, per-year
// obligation and expenditure rates, and the list of current-year expiring
// funds still unobligated. Entries for the same fiscal year are combined.
func Analyze(entries []YearFunding, currentFY fiscal.Year) Analysis {
	byYear := make(map[fiscal.Year]*YearFunding)
	for _, e := range entries {
		agg, ok := byYear[e.FiscalYear]
		if !ok {
			agg = &YearFunding{FiscalYear: e.FiscalYear}
			byYear[e.FiscalYear] = agg
		}
		agg.Appropriated = agg.Appropriated.Add(e.Appropriated)
		agg.Obligated = agg.Obligated.Add(e.Obligated)
		agg.Expended = agg.Expended.Add(e.Expended)
		agg.Expires = agg.Expires || e.Expires
	}

	years := make([]fiscal.Year, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })

	var a Analysis
	for _, y := range years {
		e := byYear[y]
		a.TotalAppropriated = a.TotalAppropriated.Add(e.Appropriated)
		a.TotalObligated = a.TotalObligated.Add(e.Obligated)
		a.TotalExpended = a.TotalExpended.Add(e.Expended)

		rates := YearRates{
			FiscalYear:   y,
			Appropriated: e.Appropriated,
			Obligated:    e.Obligated,
			Expended:     e.Expended,
		}
		if e.Appropriated.IsPositive() {
			rates.ObligationRate = e.Obligated.Div(e.Appropriated).Round(4)
		}
		if e.Obligated.IsPositive() {
			rates.ExpenditureRate = e.Expended.Div(e.Obligated).Round(4)
		}
		a.ByYear = append(a.ByYear, rates)

		if e.Expires && y == currentFY {
			unobligated := e.Appropriated.Sub(e.Obligated)
			if unobligated.IsPositive() {
				a.Expiring = append(a.Expiring, ExpiringFunds{
					FiscalYear:  y,
					Unobligated: unobligated,
				})
			}
		}
	}
	return a
}
