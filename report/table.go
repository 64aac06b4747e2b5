package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a plain-text exhibit rendering: a title block, a header row
// and data rows, aligned by display width.
type Table struct {
	Title  []string
	Header []string
	Rows   [][]string
}

// Render lays the table out with two spaces between columns. Widths are
// computed with runewidth so wide runes do not skew the alignment. The
// first column is left-aligned, every other column right-aligned, the
// convention on numeric exhibits.
func (t Table) Render() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	for _, line := range t.Title {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(t.Title) > 0 {
		b.WriteByte('\n')
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == 0 {
				b.WriteString(runewidth.FillRight(cell, widths[i]))
			} else {
				b.WriteString(runewidth.FillLeft(cell, widths[i]))
			}
		}
		b.WriteByte('\n')
	}

	writeRow(t.Header)
	rule := make([]string, len(t.Header))
	for i := range rule {
		rule[i] = strings.Repeat("-", widths[i])
	}
	writeRow(rule)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}

// Table renders the OP-5 for terminal display.
func (e OP5) Table() Table {
	t := Table{
		Title:  []string{"Exhibit " + e.ExhibitCode + " — " + e.Appropriation, e.Organization + ", " + e.FiscalYear},
		Header: []string{"Subactivity Group", "PY", "CY", "BY"},
	}
	for _, l := range e.Lines {
		t.Rows = append(t.Rows, []string{l.SubactivityGroup, l.PriorYear, l.CurrentYear, l.BudgetYear})
	}
	t.Rows = append(t.Rows, []string{e.TotalLine.SubactivityGroup, e.TotalLine.PriorYear, e.TotalLine.CurrentYear, e.TotalLine.BudgetYear})
	return t
}

// Table renders the P-1 for terminal display.
func (e P1) Table() Table {
	t := Table{
		Title:  []string{"Exhibit " + e.ExhibitCode + " — Procurement Program", e.Organization + ", " + e.FiscalYear},
		Header: []string{"Line", "Item", "Qty", "Cost"},
	}
	for _, l := range e.Lines {
		t.Rows = append(t.Rows, []string{l.LineNumber, l.Item, l.Quantity, l.Cost})
	}
	t.Rows = append(t.Rows, []string{"", "Total", "", e.TotalCost})
	return t
}

// Table renders the R-2 for terminal display.
func (e R2) Table() Table {
	t := Table{
		Title:  []string{"Exhibit " + e.ExhibitCode + " — RDT&E Budget Item Justification", e.Organization + ", " + e.FiscalYear},
		Header: []string{"PE", "Name", "PY", "CY", "BY"},
	}
	for _, l := range e.Lines {
		t.Rows = append(t.Rows, []string{l.ProgramElement, l.Name, l.PriorYear, l.CurrentYear, l.BudgetYear})
	}
	return t
}

// Table renders the C-1 for terminal display.
func (e C1) Table() Table {
	t := Table{
		Title:  []string{"Exhibit " + e.ExhibitCode + " — Military Construction Program", e.Organization + ", " + e.FiscalYear},
		Header: []string{"Installation", "Project", "Auth", "Approp"},
	}
	for _, l := range e.Lines {
		t.Rows = append(t.Rows, []string{l.Installation, l.Project, l.Authorization, l.Appropriation})
	}
	return t
}

// Table renders the reprogramming action for terminal display.
func (e DD1415) Table() Table {
	return Table{
		Title:  []string{"Exhibit " + e.ExhibitCode + " — Reprogramming Action", e.Organization},
		Header: []string{"From", "To", "Amount"},
		Rows:   [][]string{{e.FromAppropriation, e.ToAppropriation, e.Amount}},
	}
}

// Table renders the quarterly financial report for terminal display.
func (e Quarterly) Table() Table {
	return Table{
		Title:  []string{e.ExhibitCode, e.Organization + ", " + e.Period},
		Header: []string{"Measure", "Value"},
		Rows: [][]string{
			{"Appropriated", e.Appropriated},
			{"Obligated", e.Obligated},
			{"Expended", e.Expended},
			{"Obligation rate", e.ObligationRate},
			{"Expenditure rate", e.ExpenditureRate},
		},
	}
}

// Table renders the justification sheet for terminal display.
func (e BudgetJustification) Table() Table {
	return Table{
		Title:  []string{"Exhibit " + e.ExhibitCode, e.Organization + " — " + e.Program + ", " + e.FiscalYear},
		Header: []string{"Column", "Amount"},
		Rows: [][]string{
			{"Prior Year", e.PriorYear},
			{"Current Year", e.CurrentYear},
			{"Budget Year", e.BudgetYear},
		},
	}
}
