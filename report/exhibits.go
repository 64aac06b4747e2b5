package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/fiscal"
)

// YearColumns is the standard three-column funding profile on
// justification exhibits: prior year actual, current year enacted,
// budget year requested.
type YearColumns struct {
	PriorYear   decimal.Decimal
	CurrentYear decimal.Decimal
	BudgetYear  decimal.Decimal
}

// BudgetJustificationInput feeds the narrative justification sheet.
type BudgetJustificationInput struct {
	Organization string
	Program      string
	BudgetYear   fiscal.Year
	Funding      YearColumns
	Narrative    string
}

// BudgetJustification mirrors the justification sheet layout.
type BudgetJustification struct {
	ExhibitCode  string
	Organization string
	Program      string
	FiscalYear   string
	PriorYear    string
	CurrentYear  string
	BudgetYear   string
	Narrative    string
}

// ShapeBudgetJustification renders the narrative justification sheet.
func ShapeBudgetJustification(in BudgetJustificationInput) BudgetJustification {
	return BudgetJustification{
		ExhibitCode:  "Budget Justification",
		Organization: in.Organization,
		Program:      in.Program,
		FiscalYear:   fmt.Sprintf("FY %d", in.BudgetYear),
		PriorYear:    Thousands(in.Funding.PriorYear),
		CurrentYear:  Thousands(in.Funding.CurrentYear),
		BudgetYear:   Thousands(in.Funding.BudgetYear),
		Narrative:    in.Narrative,
	}
}

// SubactivityGroup is one O&M subactivity line on the OP-5.
type SubactivityGroup struct {
	Name    string
	Funding YearColumns
}

// OP5Input feeds the OP-5 operation and maintenance detail.
type OP5Input struct {
	Organization string
	BudgetYear   fiscal.Year
	Groups       []SubactivityGroup
}

// OP5Line is one rendered subactivity row.
type OP5Line struct {
	SubactivityGroup string
	PriorYear        string
	CurrentYear      string
	BudgetYear       string
}

// OP5 mirrors the OP-5 exhibit layout.
type OP5 struct {
	ExhibitCode   string
	Appropriation string
	Organization  string
	FiscalYear    string
	Lines         []OP5Line
	TotalLine     OP5Line
}

// ShapeOP5 renders the O&M detail by subactivity group with a total row.
func ShapeOP5(in OP5Input) OP5 {
	out := OP5{
		ExhibitCode:   "OP-5",
		Appropriation: "Operation and Maintenance",
		Organization:  in.Organization,
		FiscalYear:    fmt.Sprintf("FY %d", in.BudgetYear),
	}

	var total YearColumns
	for _, g := range in.Groups {
		out.Lines = append(out.Lines, OP5Line{
			SubactivityGroup: g.Name,
			PriorYear:        Thousands(g.Funding.PriorYear),
			CurrentYear:      Thousands(g.Funding.CurrentYear),
			BudgetYear:       Thousands(g.Funding.BudgetYear),
		})
		total.PriorYear = total.PriorYear.Add(g.Funding.PriorYear)
		total.CurrentYear = total.CurrentYear.Add(g.Funding.CurrentYear)
		total.BudgetYear = total.BudgetYear.Add(g.Funding.BudgetYear)
	}
	out.TotalLine = OP5Line{
		SubactivityGroup: "Total",
		PriorYear:        Thousands(total.PriorYear),
		CurrentYear:      Thousands(total.CurrentYear),
		BudgetYear:       Thousands(total.BudgetYear),
	}
	return out
}

// ProcurementItem is one line item on the P-1.
type ProcurementItem struct {
	LineNumber string
	Item       string
	Quantity   int
	Cost       decimal.Decimal
}

// P1Input feeds the P-1 procurement program.
type P1Input struct {
	Organization string
	BudgetYear   fiscal.Year
	Items        []ProcurementItem
}

// P1Line is one rendered procurement row.
type P1Line struct {
	LineNumber string
	Item       string
	Quantity   string
	Cost       string
}

// P1 mirrors the P-1 exhibit layout.
type P1 struct {
	ExhibitCode  string
	Organization string
	FiscalYear   string
	Lines        []P1Line
	TotalCost    string
}

// ShapeP1 renders the procurement program line items.
func ShapeP1(in P1Input) P1 {
	out := P1{
		ExhibitCode:  "P-1",
		Organization: in.Organization,
		FiscalYear:   fmt.Sprintf("FY %d", in.BudgetYear),
	}

	total := decimal.Zero
	for _, item := range in.Items {
		out.Lines = append(out.Lines, P1Line{
			LineNumber: item.LineNumber,
			Item:       item.Item,
			Quantity:   fmt.Sprintf("%d", item.Quantity),
			Cost:       Thousands(item.Cost),
		})
		total = total.Add(item.Cost)
	}
	out.TotalCost = Thousands(total)
	return out
}

// ProgramElement is one RDT&E program element on the R-2.
type ProgramElement struct {
	Number  string
	Name    string
	Funding YearColumns
}

// R2Input feeds the R-2 RDT&E budget item justification.
type R2Input struct {
	Organization string
	BudgetYear   fiscal.Year
	Elements     []ProgramElement
}

// R2Line is one rendered program element row.
type R2Line struct {
	ProgramElement string
	Name           string
	PriorYear      string
	CurrentYear    string
	BudgetYear     string
}

// R2 mirrors the R-2 exhibit layout.
type R2 struct {
	ExhibitCode  string
	Organization string
	FiscalYear   string
	Lines        []R2Line
}

// ShapeR2 renders RDT&E program elements.
func ShapeR2(in R2Input) R2 {
	out := R2{
		ExhibitCode:  "R-2",
		Organization: in.Organization,
		FiscalYear:   fmt.Sprintf("FY %d", in.BudgetYear),
	}
	for _, pe := range in.Elements {
		out.Lines = append(out.Lines, R2Line{
			ProgramElement: pe.Number,
			Name:           pe.Name,
			PriorYear:      Thousands(pe.Funding.PriorYear),
			CurrentYear:    Thousands(pe.Funding.CurrentYear),
			BudgetYear:     Thousands(pe.Funding.BudgetYear),
		})
	}
	return out
}

// ConstructionProject is one military construction project on the C-1.
type ConstructionProject struct {
	Installation  string
	Project       string
	Authorization decimal.Decimal
	Appropriation decimal.Decimal
}

// C1Input feeds the C-1 military construction program.
type C1Input struct {
	Organization string
	BudgetYear   fiscal.Year
	Projects     []ConstructionProject
}

// C1Line is one rendered construction project row.
type C1Line struct {
	Installation  string
	Project       string
	Authorization string
	Appropriation string
}

// C1 mirrors the C-1 exhibit layout.
type C1 struct {
	ExhibitCode  string
	Organization string
	FiscalYear   string
	Lines        []C1Line
}

// ShapeC1 renders the military construction project list.
func ShapeC1(in C1Input) C1 {
	out := C1{
		ExhibitCode:  "C-1",
		Organization: in.Organization,
		FiscalYear:   fmt.Sprintf("FY %d", in.BudgetYear),
	}
	for _, p := range in.Projects {
		out.Lines = append(out.Lines, C1Line{
			Installation:  p.Installation,
			Project:       p.Project,
			Authorization: Thousands(p.Authorization),
			Appropriation: Thousands(p.Appropriation),
		})
	}
	return out
}

// DD1415Input feeds the reprogramming action form.
type DD1415Input struct {
	Organization      string
	FromAppropriation string
	ToAppropriation   string
	Amount            decimal.Decimal
	Justification     string
}

// DD1415 mirrors the DD 1415 reprogramming action layout.
type DD1415 struct {
	ExhibitCode       string
	Organization      string
	FromAppropriation string
	ToAppropriation   string
	Amount            string
	Justification     string
}

// ShapeDD1415 renders a reprogramming action.
func ShapeDD1415(in DD1415Input) DD1415 {
	return DD1415{
		ExhibitCode:       "DD 1415",
		Organization:      in.Organization,
		FromAppropriation: in.FromAppropriation,
		ToAppropriation:   in.ToAppropriation,
		Amount:            Thousands(in.Amount),
		Justification:     in.Justification,
	}
}

// QuarterlyInput feeds the quarterly financial report.
type QuarterlyInput struct {
	Organization string
	FiscalYear   fiscal.Year
	Quarter      int
	Appropriated decimal.Decimal
	Obligated    decimal.Decimal
	Expended     decimal.Decimal
}

// Quarterly mirrors the quarterly financial report layout. Rates are
// rendered as percentages of appropriated and obligated respectively.
type Quarterly struct {
	ExhibitCode     string
	Organization    string
	Period          string
	Appropriated    string
	Obligated       string
	Expended        string
	ObligationRate  string
	ExpenditureRate string
}

// ShapeQuarterly renders a quarterly financial report.
func ShapeQuarterly(in QuarterlyInput) Quarterly {
	out := Quarterly{
		ExhibitCode:     "Quarterly Financial Report",
		Organization:    in.Organization,
		Period:          fmt.Sprintf("FY %d Q%d", in.FiscalYear, in.Quarter),
		Appropriated:    Thousands(in.Appropriated),
		Obligated:       Thousands(in.Obligated),
		Expended:        Thousands(in.Expended),
		ObligationRate:  "n/a",
		ExpenditureRate: "n/a",
	}
	if in.Appropriated.IsPositive() {
		out.ObligationRate = in.Obligated.Div(in.Appropriated).Mul(decimal.New(100, 0)).StringFixed(1) + "%"
	}
	if in.Obligated.IsPositive() {
		out.ExpenditureRate = in.Expended.Div(in.Obligated).Mul(decimal.New(100, 0)).StringFixed(1) + "%"
	}
	return out
}
