package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/harborgrid-justin/appropriations/fiscal"
	"github.com/harborgrid-justin/appropriations/report"
)

// ExhibitCmd shapes a YAML input bundle into a congressional exhibit and
// prints the rendered table.
type ExhibitCmd struct {
	Type string      `help:"Exhibit type: op5, p1, r2, c1, dd1415, quarterly or justification." arg:""`
	File FileOrStdin `help:"Exhibit input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// exhibitYAML is the union schema for exhibit inputs; each exhibit type
// reads the sections it needs.
type exhibitYAML struct {
	Organization string `yaml:"organization"`
	Program      string `yaml:"program"`
	BudgetYear   int    `yaml:"budgetYear"`
	Narrative    string `yaml:"narrative"`

	Funding *yearColumnsYAML `yaml:"funding"`

	Groups   []op5GroupYAML  `yaml:"groups"`
	Items    []p1ItemYAML    `yaml:"items"`
	Elements []r2ElementYAML `yaml:"elements"`
	Projects []c1ProjectYAML `yaml:"projects"`

	FromAppropriation string `yaml:"fromAppropriation"`
	ToAppropriation   string `yaml:"toAppropriation"`
	Amount            string `yaml:"amount"`
	Justification     string `yaml:"justification"`

	Quarter      int    `yaml:"quarter"`
	Appropriated string `yaml:"appropriated"`
	Obligated    string `yaml:"obligated"`
	Expended     string `yaml:"expended"`
}

type op5GroupYAML struct {
	Name    string          `yaml:"name"`
	Funding yearColumnsYAML `yaml:"funding"`
}

type p1ItemYAML struct {
	LineNumber string `yaml:"lineNumber"`
	Item       string `yaml:"item"`
	Quantity   int    `yaml:"quantity"`
	Cost       string `yaml:"cost"`
}

type r2ElementYAML struct {
	Number  string          `yaml:"number"`
	Name    string          `yaml:"name"`
	Funding yearColumnsYAML `yaml:"funding"`
}

type c1ProjectYAML struct {
	Installation  string `yaml:"installation"`
	Project       string `yaml:"project"`
	Authorization string `yaml:"authorization"`
	Appropriation string `yaml:"appropriation"`
}

type yearColumnsYAML struct {
	PriorYear   string `yaml:"priorYear"`
	CurrentYear string `yaml:"currentYear"`
	BudgetYear  string `yaml:"budgetYear"`
}

func (y yearColumnsYAML) decode(field string) (report.YearColumns, error) {
	var cols report.YearColumns
	var err error
	if cols.PriorYear, err = parseOptionalAmount(field+".priorYear", y.PriorYear); err != nil {
		return cols, err
	}
	if cols.CurrentYear, err = parseOptionalAmount(field+".currentYear", y.CurrentYear); err != nil {
		return cols, err
	}
	if cols.BudgetYear, err = parseOptionalAmount(field+".budgetYear", y.BudgetYear); err != nil {
		return cols, err
	}
	return cols, nil
}

func (cmd *ExhibitCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	contents, err := cmd.File.Read()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var in exhibitYAML
	if err := yaml.Unmarshal(contents, &in); err != nil {
		return fmt.Errorf("failed to parse exhibit input: %w", err)
	}

	tbl, err := shapeExhibit(cmd.Type, in)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	_, _ = fmt.Fprint(ctx.Stdout, tbl.Render())
	return nil
}

func shapeExhibit(kind string, in exhibitYAML) (report.Table, error) {
	fy := fiscal.Year(in.BudgetYear)

	switch kind {
	case "op5":
		input := report.OP5Input{Organization: in.Organization, BudgetYear: fy}
		for _, g := range in.Groups {
			cols, err := g.Funding.decode("groups." + g.Name)
			if err != nil {
				return report.Table{}, err
			}
			input.Groups = append(input.Groups, report.SubactivityGroup{Name: g.Name, Funding: cols})
		}
		return report.ShapeOP5(input).Table(), nil

	case "p1":
		input := report.P1Input{Organization: in.Organization, BudgetYear: fy}
		for _, item := range in.Items {
			cost, err := parseAmount("items."+item.LineNumber+".cost", item.Cost)
			if err != nil {
				return report.Table{}, err
			}
			input.Items = append(input.Items, report.ProcurementItem{
				LineNumber: item.LineNumber,
				Item:       item.Item,
				Quantity:   item.Quantity,
				Cost:       cost,
			})
		}
		return report.ShapeP1(input).Table(), nil

	case "r2":
		input := report.R2Input{Organization: in.Organization, BudgetYear: fy}
		for _, pe := range in.Elements {
			cols, err := pe.Funding.decode("elements." + pe.Number)
			if err != nil {
				return report.Table{}, err
			}
			input.Elements = append(input.Elements, report.ProgramElement{
				Number:  pe.Number,
				Name:    pe.Name,
				Funding: cols,
			})
		}
		return report.ShapeR2(input).Table(), nil

	case "c1":
		input := report.C1Input{Organization: in.Organization, BudgetYear: fy}
		for _, p := range in.Projects {
			auth, err := parseOptionalAmount("projects."+p.Project+".authorization", p.Authorization)
			if err != nil {
				return report.Table{}, err
			}
			approp, err := parseOptionalAmount("projects."+p.Project+".appropriation", p.Appropriation)
			if err != nil {
				return report.Table{}, err
			}
			input.Projects = append(input.Projects, report.ConstructionProject{
				Installation:  p.Installation,
				Project:       p.Project,
				Authorization: auth,
				Appropriation: approp,
			})
		}
		return report.ShapeC1(input).Table(), nil

	case "dd1415":
		amount, err := parseAmount("amount", in.Amount)
		if err != nil {
			return report.Table{}, err
		}
		return report.ShapeDD1415(report.DD1415Input{
			Organization:      in.Organization,
			FromAppropriation: in.FromAppropriation,
			ToAppropriation:   in.ToAppropriation,
			Amount:            amount,
			Justification:     in.Justification,
		}).Table(), nil

	case "quarterly":
		appropriated, err := parseOptionalAmount("appropriated", in.Appropriated)
		if err != nil {
			return report.Table{}, err
		}
		obligated, err := parseOptionalAmount("obligated", in.Obligated)
		if err != nil {
			return report.Table{}, err
		}
		expended, err := parseOptionalAmount("expended", in.Expended)
		if err != nil {
			return report.Table{}, err
		}
		return report.ShapeQuarterly(report.QuarterlyInput{
			Organization: in.Organization,
			FiscalYear:   fy,
			Quarter:      in.Quarter,
			Appropriated: appropriated,
			Obligated:    obligated,
			Expended:     expended,
		}).Table(), nil

	case "justification":
		cols := report.YearColumns{}
		if in.Funding != nil {
			var err error
			if cols, err = in.Funding.decode("funding"); err != nil {
				return report.Table{}, err
			}
		}
		return report.ShapeBudgetJustification(report.BudgetJustificationInput{
			Organization: in.Organization,
			Program:      in.Program,
			BudgetYear:   fy,
			Funding:      cols,
			Narrative:    in.Narrative,
		}).Table(), nil
	}

	return report.Table{}, fmt.Errorf("unknown exhibit type %q", kind)
}
