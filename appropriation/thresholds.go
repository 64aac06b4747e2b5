package appropriation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Thresholds holds the policy dollar limits and advisory margins used by
// the classifier and downstream validators. Values are read-only
// configuration: construct once, pass by value, never mutate.
type Thresholds struct {
	// ExpenseInvestment is the expense/investment split. Equipment at or
	// above this amount must be procurement-funded.
	ExpenseInvestment decimal.Decimal `yaml:"expense_investment"`

	// Construction is the unspecified-minor-construction ceiling.
	// Construction at or above this amount requires MILCON.
	Construction decimal.Decimal `yaml:"construction"`

	// NearExpirationDays is the advisory window before funds expire.
	NearExpirationDays int `yaml:"near_expiration_days"`

	// HighConsumption is the fraction of remaining available funds beyond
	// which a single obligation draws a warning.
	HighConsumption decimal.Decimal `yaml:"high_consumption"`

	// MinJustification is the minimum justification length treated as
	// adequate documentation.
	MinJustification int `yaml:"min_justification"`
}

// DefaultThresholds returns the standing policy values: $250,000
// expense/investment split, $750,000 minor construction ceiling, 30-day
// expiration warning, 90% consumption warning, 10-character justification.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExpenseInvestment:  decimal.New(250_000, 0),
		Construction:       decimal.New(750_000, 0),
		NearExpirationDays: 30,
		HighConsumption:    decimal.NewFromFloat(0.90),
		MinJustification:   10,
	}
}

// Validate checks the thresholds are usable. Zero-valued fields are
// rejected so a partially-decoded config cannot silently disable checks.
func (t Thresholds) Validate() error {
	if !t.ExpenseInvestment.IsPositive() {
		return fmt.Errorf("expense_investment threshold must be positive, got %s", t.ExpenseInvestment)
	}
	if !t.Construction.IsPositive() {
		return fmt.Errorf("construction threshold must be positive, got %s", t.Construction)
	}
	if t.NearExpirationDays <= 0 {
		return fmt.Errorf("near_expiration_days must be positive, got %d", t.NearExpirationDays)
	}
	if !t.HighConsumption.IsPositive() || t.HighConsumption.GreaterThan(decimal.New(1, 0)) {
		return fmt.Errorf("high_consumption must be in (0, 1], got %s", t.HighConsumption)
	}
	if t.MinJustification <= 0 {
		return fmt.Errorf("min_justification must be positive, got %d", t.MinJustification)
	}
	return nil
}
