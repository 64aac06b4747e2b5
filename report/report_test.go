package report

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func money(v int64) decimal.Decimal {
	return decimal.New(v, 0)
}

func TestThousands(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0K"},
		{500, "$1K"},
		{499, "$0K"},
		{1_234_000, "$1,234K"},
		{1_234_499, "$1,234K"},
		{1_234_500, "$1,235K"},
		{1_000_000_000, "$1,000,000K"},
		{-250_000, "-$250K"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Thousands(money(tt.amount)))
		})
	}
}

func TestShapeOP5(t *testing.T) {
	out := ShapeOP5(OP5Input{
		Organization: "Department of the Navy",
		BudgetYear:   2026,
		Groups: []SubactivityGroup{
			{Name: "Ship Operations", Funding: YearColumns{
				PriorYear: money(4_100_000_000), CurrentYear: money(4_250_000_000), BudgetYear: money(4_400_000_000)}},
			{Name: "Base Operating Support", Funding: YearColumns{
				PriorYear: money(1_900_000_000), CurrentYear: money(1_950_000_000), BudgetYear: money(2_000_000_000)}},
		},
	})

	assert.Equal(t, "OP-5", out.ExhibitCode)
	assert.Equal(t, "FY 2026", out.FiscalYear)
	assert.Equal(t, 2, len(out.Lines))
	assert.Equal(t, "$4,100,000K", out.Lines[0].PriorYear)
	assert.Equal(t, "$6,400,000K", out.TotalLine.BudgetYear)
}

func TestShapeP1Total(t *testing.T) {
	out := ShapeP1(P1Input{
		Organization: "Department of the Navy",
		BudgetYear:   2026,
		Items: []ProcurementItem{
			{LineNumber: "1", Item: "DDG-51 Destroyer", Quantity: 2, Cost: money(4_400_000_000)},
			{LineNumber: "2", Item: "LPD-17 Amphibious Transport", Quantity: 1, Cost: money(1_900_000_000)},
		},
	})

	assert.Equal(t, "$6,300,000K", out.TotalCost)
	assert.Equal(t, "2", out.Lines[0].Quantity)
}

func TestShapeQuarterly(t *testing.T) {
	out := ShapeQuarterly(QuarterlyInput{
		Organization: "PEO Ships",
		FiscalYear:   2025,
		Quarter:      2,
		Appropriated: money(10_000_000),
		Obligated:    money(4_500_000),
		Expended:     money(1_800_000),
	})

	assert.Equal(t, "FY 2025 Q2", out.Period)
	assert.Equal(t, "45.0%", out.ObligationRate)
	assert.Equal(t, "40.0%", out.ExpenditureRate)
}

func TestShapeQuarterlyZeroDenominators(t *testing.T) {
	out := ShapeQuarterly(QuarterlyInput{FiscalYear: 2025, Quarter: 1})
	assert.Equal(t, "n/a", out.ObligationRate)
	assert.Equal(t, "n/a", out.ExpenditureRate)
}

func TestShapeDD1415(t *testing.T) {
	out := ShapeDD1415(DD1415Input{
		Organization:      "Department of the Navy",
		FromAppropriation: "Operation and Maintenance, Navy",
		ToAppropriation:   "Other Procurement, Navy",
		Amount:            money(12_500_000),
		Justification:     "Realign funds to cover unit cost growth.",
	})
	assert.Equal(t, "DD 1415", out.ExhibitCode)
	assert.Equal(t, "$12,500K", out.Amount)
}

func TestTableRenderAlignment(t *testing.T) {
	tbl := Table{
		Title:  []string{"Exhibit OP-5"},
		Header: []string{"Subactivity Group", "BY"},
		Rows: [][]string{
			{"Ship Operations", "$4,400,000K"},
			{"Total", "$6,400,000K"},
		},
	}

	rendered := tbl.Render()
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	// Title, blank, header, rule, two rows.
	assert.Equal(t, 6, len(lines))

	// Every tabular line pads to the same display width.
	width := len(lines[2])
	for _, line := range lines[3:] {
		assert.Equal(t, width, len(line), "line %q", line)
	}

	// Numeric columns are right-aligned.
	assert.True(t, strings.HasSuffix(lines[4], "$4,400,000K"))
	assert.True(t, strings.HasSuffix(lines[5], "$6,400,000K"))
}
