package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/harborgrid-justin/appropriations/appropriation"
	"github.com/harborgrid-justin/appropriations/compliance"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

// Bundle is a decoded transaction bundle: the obligation under review,
// the account snapshot it obligates against, and optional collaborator
// inputs.
type Bundle struct {
	Obligation    compliance.Obligation
	Account       compliance.BudgetAccount
	Apportionment *compliance.Apportionment
	Thresholds    *appropriation.Thresholds
	AsOf          time.Time
}

// bundleYAML mirrors the YAML schema of a transaction bundle file.
type bundleYAML struct {
	Obligation    obligationYAML            `yaml:"obligation"`
	Account       accountYAML               `yaml:"account"`
	Apportionment *apportionmentYAML        `yaml:"apportionment"`
	Thresholds    *appropriation.Thresholds `yaml:"thresholds"`
	AsOf          string                    `yaml:"asOf"`
}

type obligationYAML struct {
	ID             string `yaml:"id"`
	Amount         string `yaml:"amount"`
	Category       string `yaml:"category"`
	Subtype        string `yaml:"subtype"`
	FiscalYear     int    `yaml:"fiscalYear"`
	Purpose        string `yaml:"purpose"`
	Justification  string `yaml:"justification"`
	ObligationDate string `yaml:"obligationDate"`

	NeedDate         string `yaml:"needDate"`
	PerformanceStart string `yaml:"performanceStart"`
	PerformanceEnd   string `yaml:"performanceEnd"`
	ContractType     string `yaml:"contractType"`

	ProhibitedPurposes []string `yaml:"prohibitedPurposes"`
	RequiredPurposes   []string `yaml:"requiredPurposes"`
	AvailableOverride  string   `yaml:"availableOverride"`

	StockItem                     bool   `yaml:"stockItem"`
	LeadTimeMonths                int    `yaml:"leadTimeMonths"`
	LeadTimeJustification         string `yaml:"leadTimeJustification"`
	MultiYearAuthority            string `yaml:"multiYearAuthority"`
	ContinuingResolutionAuthority string `yaml:"continuingResolutionAuthority"`

	FundingSource           string `yaml:"fundingSource"`
	AugmentationAuthority   string `yaml:"augmentationAuthority"`
	VoluntaryService        bool   `yaml:"voluntaryService"`
	Emergency               bool   `yaml:"emergency"`
	EmergencyJustification  string `yaml:"emergencyJustification"`
	PaymentDate             string `yaml:"paymentDate"`
	AdvancePaymentAuthority string `yaml:"advancePaymentAuthority"`
}

type accountYAML struct {
	Appropriated string `yaml:"appropriated"`
	Apportioned  string `yaml:"apportioned"`
	Allotted     string `yaml:"allotted"`
	Committed    string `yaml:"committed"`
	Obligated    string `yaml:"obligated"`
	Expended     string `yaml:"expended"`
}

type apportionmentYAML struct {
	PeriodStart          string   `yaml:"periodStart"`
	PeriodEnd            string   `yaml:"periodEnd"`
	Amount               string   `yaml:"amount"`
	RestrictedActivities []string `yaml:"restrictedActivities"`
}

// DecodeBundle parses a YAML transaction bundle.
func DecodeBundle(contents []byte) (*Bundle, error) {
	var raw bundleYAML
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse bundle: %w", err)
	}

	ob, err := raw.Obligation.decode()
	if err != nil {
		return nil, err
	}
	acct, err := raw.Account.decode()
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Obligation: ob,
		Account:    acct,
		Thresholds: raw.Thresholds,
	}

	if raw.Apportionment != nil {
		app, err := raw.Apportionment.decode()
		if err != nil {
			return nil, err
		}
		bundle.Apportionment = &app
	}

	if raw.AsOf != "" {
		asOf, err := parseDate("asOf", raw.AsOf)
		if err != nil {
			return nil, err
		}
		bundle.AsOf = asOf
	} else {
		bundle.AsOf = time.Now()
	}

	if bundle.Thresholds != nil {
		if err := bundle.Thresholds.Validate(); err != nil {
			return nil, fmt.Errorf("invalid thresholds: %w", err)
		}
	}

	return bundle, nil
}

func (o obligationYAML) decode() (compliance.Obligation, error) {
	var ob compliance.Obligation

	amount, err := parseAmount("obligation.amount", o.Amount)
	if err != nil {
		return ob, err
	}

	category, ok := appropriation.ParseCode(o.Category)
	if !ok {
		return ob, fmt.Errorf("unknown appropriation category %q", o.Category)
	}

	subtype := appropriation.SubtypeNone
	switch o.Subtype {
	case "", "none":
	case "shipbuilding":
		subtype = appropriation.SubtypeShipbuilding
	default:
		return ob, fmt.Errorf("unknown subtype %q", o.Subtype)
	}

	obligationDate, err := parseDate("obligation.obligationDate", o.ObligationDate)
	if err != nil {
		return ob, err
	}

	ob = compliance.Obligation{
		ID:             o.ID,
		Amount:         amount,
		Category:       category,
		Subtype:        subtype,
		FiscalYear:     fiscal.Year(o.FiscalYear),
		Purpose:        o.Purpose,
		Justification:  o.Justification,
		ObligationDate: obligationDate,

		ProhibitedPurposes: o.ProhibitedPurposes,
		RequiredPurposes:   o.RequiredPurposes,

		IsStockItem:                   o.StockItem,
		LeadTimeMonths:                o.LeadTimeMonths,
		LeadTimeJustification:         o.LeadTimeJustification,
		MultiYearAuthority:            o.MultiYearAuthority,
		ContinuingResolutionAuthority: o.ContinuingResolutionAuthority,

		AugmentationAuthority:   o.AugmentationAuthority,
		VoluntaryService:        o.VoluntaryService,
		Emergency:               o.Emergency,
		EmergencyJustification:  o.EmergencyJustification,
		AdvancePaymentAuthority: o.AdvancePaymentAuthority,
	}

	if o.NeedDate != "" {
		needDate, err := parseDate("obligation.needDate", o.NeedDate)
		if err != nil {
			return ob, err
		}
		ob.NeedDate = &needDate
	}

	if o.PerformanceStart != "" || o.PerformanceEnd != "" {
		start, err := parseDate("obligation.performanceStart", o.PerformanceStart)
		if err != nil {
			return ob, err
		}
		end, err := parseDate("obligation.performanceEnd", o.PerformanceEnd)
		if err != nil {
			return ob, err
		}
		ob.Performance = &compliance.Period{Start: start, End: end}
	}

	switch o.ContractType {
	case "", "unspecified":
	case "severable":
		ob.ContractType = compliance.ContractSeverable
	case "non-severable":
		ob.ContractType = compliance.ContractNonSeverable
	case "supplies":
		ob.ContractType = compliance.ContractSupplies
	case "equipment":
		ob.ContractType = compliance.ContractEquipment
	default:
		return ob, fmt.Errorf("unknown contract type %q", o.ContractType)
	}

	switch o.FundingSource {
	case "", "appropriated":
	case "gift":
		ob.FundingSource = compliance.SourceGift
	case "donation":
		ob.FundingSource = compliance.SourceDonation
	case "private":
		ob.FundingSource = compliance.SourcePrivate
	case "non-federal":
		ob.FundingSource = compliance.SourceNonFederal
	default:
		return ob, fmt.Errorf("unknown funding source %q", o.FundingSource)
	}

	if o.AvailableOverride != "" {
		override, err := parseAmount("obligation.availableOverride", o.AvailableOverride)
		if err != nil {
			return ob, err
		}
		ob.AvailableOverride = &override
	}

	if o.PaymentDate != "" {
		paymentDate, err := parseDate("obligation.paymentDate", o.PaymentDate)
		if err != nil {
			return ob, err
		}
		ob.PaymentDate = &paymentDate
	}

	return ob, nil
}

func (a accountYAML) decode() (compliance.BudgetAccount, error) {
	var acct compliance.BudgetAccount
	var err error

	if acct.Appropriated, err = parseAmount("account.appropriated", a.Appropriated); err != nil {
		return acct, err
	}
	if acct.Committed, err = parseOptionalAmount("account.committed", a.Committed); err != nil {
		return acct, err
	}
	if acct.Obligated, err = parseOptionalAmount("account.obligated", a.Obligated); err != nil {
		return acct, err
	}
	if acct.Expended, err = parseOptionalAmount("account.expended", a.Expended); err != nil {
		return acct, err
	}

	if a.Apportioned != "" {
		apportioned, err := parseAmount("account.apportioned", a.Apportioned)
		if err != nil {
			return acct, err
		}
		acct.Apportioned = &apportioned
	}
	if a.Allotted != "" {
		allotted, err := parseAmount("account.allotted", a.Allotted)
		if err != nil {
			return acct, err
		}
		acct.Allotted = &allotted
	}

	return acct, nil
}

func (a apportionmentYAML) decode() (compliance.Apportionment, error) {
	var app compliance.Apportionment

	start, err := parseDate("apportionment.periodStart", a.PeriodStart)
	if err != nil {
		return app, err
	}
	end, err := parseDate("apportionment.periodEnd", a.PeriodEnd)
	if err != nil {
		return app, err
	}
	amount, err := parseAmount("apportionment.amount", a.Amount)
	if err != nil {
		return app, err
	}

	app = compliance.Apportionment{
		Period:               compliance.Period{Start: start, End: end},
		Amount:               amount,
		RestrictedActivities: a.RestrictedActivities,
	}
	return app, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, fmt.Errorf("%s is required", field)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q", field, value)
	}
	return d, nil
}

func parseOptionalAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseAmount(field, value)
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q, want YYYY-MM-DD", field, value)
	}
	return t, nil
}
