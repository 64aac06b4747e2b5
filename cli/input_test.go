package cli

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/appropriation"
	"github.com/harborgrid-justin/appropriations/compliance"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

const fullBundle = `
obligation:
  id: OB-2024-0042
  amount: "48500.00"
  category: O&M
  fiscalYear: 2024
  purpose: supplies
  justification: Replenish consumable bench stock for depot maintenance.
  obligationDate: 2024-03-15
  needDate: 2024-05-01
  contractType: supplies
  stockItem: true
account:
  appropriated: "1000000"
  apportioned: "900000"
  committed: "50000"
  obligated: "200000"
  expended: "120000"
apportionment:
  periodStart: 2023-10-01
  periodEnd: 2024-09-30
  amount: "900000"
  restrictedActivities:
    - conferences
asOf: 2024-03-15
`

func TestDecodeBundle(t *testing.T) {
	bundle, err := DecodeBundle([]byte(fullBundle))
	assert.NoError(t, err)

	ob := bundle.Obligation
	assert.Equal(t, "OB-2024-0042", ob.ID)
	assert.True(t, ob.Amount.Equal(decimal.NewFromFloat(48500)))
	assert.Equal(t, appropriation.OperationsMaintenance, ob.Category)
	assert.Equal(t, fiscal.Year(2024), ob.FiscalYear)
	assert.Equal(t, compliance.ContractSupplies, ob.ContractType)
	assert.True(t, ob.IsStockItem)
	assert.NotZero(t, ob.NeedDate)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), *ob.NeedDate)

	acct := bundle.Account
	assert.True(t, acct.Appropriated.Equal(decimal.New(1_000_000, 0)))
	assert.NotZero(t, acct.Apportioned)
	assert.True(t, acct.Apportioned.Equal(decimal.New(900_000, 0)))
	assert.Zero(t, acct.Allotted)

	assert.NotZero(t, bundle.Apportionment)
	assert.Equal(t, []string{"conferences"}, bundle.Apportionment.RestrictedActivities)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), bundle.AsOf)
}

func TestDecodeBundleErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing amount",
			yaml: `
obligation:
  category: O&M
  fiscalYear: 2024
  obligationDate: 2024-03-15
account:
  appropriated: "1000000"
`,
		},
		{
			name: "unknown category",
			yaml: `
obligation:
  amount: "100"
  category: SLUSH
  fiscalYear: 2024
  obligationDate: 2024-03-15
account:
  appropriated: "1000000"
`,
		},
		{
			name: "bad date",
			yaml: `
obligation:
  amount: "100"
  category: O&M
  fiscalYear: 2024
  obligationDate: 03/15/2024
account:
  appropriated: "1000000"
`,
		},
		{
			name: "unknown contract type",
			yaml: `
obligation:
  amount: "100"
  category: O&M
  fiscalYear: 2024
  obligationDate: 2024-03-15
  contractType: indefinite
account:
  appropriated: "1000000"
`,
		},
		{
			name: "not yaml",
			yaml: `{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBundle([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDecodeBundleThresholdOverride(t *testing.T) {
	bundle, err := DecodeBundle([]byte(`
obligation:
  amount: "100"
  category: O&M
  fiscalYear: 2024
  obligationDate: 2024-03-15
account:
  appropriated: "1000000"
thresholds:
  expense_investment: "500000"
  construction: "750000"
  near_expiration_days: 30
  high_consumption: "0.9"
  min_justification: 10
`))
	assert.NoError(t, err)
	assert.NotZero(t, bundle.Thresholds)
	assert.True(t, bundle.Thresholds.ExpenseInvestment.Equal(decimal.New(500_000, 0)))
}

func TestDecodeBundleDefaultsAsOfToNow(t *testing.T) {
	bundle, err := DecodeBundle([]byte(`
obligation:
  amount: "100"
  category: O&M
  fiscalYear: 2024
  obligationDate: 2024-03-15
account:
  appropriated: "1000000"
`))
	assert.NoError(t, err)
	assert.False(t, bundle.AsOf.IsZero())
}
