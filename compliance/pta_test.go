package compliance

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/appropriation"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(v int64) decimal.Decimal {
	return decimal.New(v, 0)
}

func moneyPtr(v int64) *decimal.Decimal {
	d := decimal.New(v, 0)
	return &d
}

// baseObligation is a fully compliant FY2024 O&M obligation.
func baseObligation() Obligation {
	return Obligation{
		ID:             "OBL-1001",
		Amount:         money(50_000),
		Category:       appropriation.OperationsMaintenance,
		FiscalYear:     2024,
		Purpose:        "supplies",
		Justification:  "replenish consumable bench stock for motor pool",
		ObligationDate: date(2024, time.March, 15),
	}
}

func baseAccount() BudgetAccount {
	return BudgetAccount{
		Appropriated: money(1_000_000),
		Obligated:    money(200_000),
		Committed:    money(50_000),
		Expended:     money(100_000),
	}
}

func TestValidatePTAPasses(t *testing.T) {
	r := ValidatePTA(baseObligation(), baseAccount(), appropriation.DefaultThresholds())
	assert.True(t, r.Valid())
	assert.Equal(t, 0, len(r.Combined().Errors))
}

func TestPTAPurposeNotAuthorized(t *testing.T) {
	ob := baseObligation()
	ob.Purpose = "research"

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Valid())
	assert.False(t, r.Purpose.Valid())
	assert.True(t, r.Time.Valid())
	assert.True(t, r.Amount.Valid())
}

func TestPTAPurposeProhibitedList(t *testing.T) {
	ob := baseObligation()
	ob.ProhibitedPurposes = []string{"supplies"}

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Purpose.Valid())
	assert.Equal(t, "purpose-prohibited", r.Purpose.Errors[0].Code)
}

func TestPTAPurposeRequiredList(t *testing.T) {
	ob := baseObligation()
	ob.RequiredPurposes = []string{"fuel", "travel"}

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Purpose.Valid())

	ob.RequiredPurposes = []string{"supplies"}
	r = ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.True(t, r.Purpose.Valid())
}

func TestPTAJustificationWarning(t *testing.T) {
	ob := baseObligation()
	ob.Justification = "stuff"

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.True(t, r.Valid(), "short justification is advisory only")
	assert.Equal(t, 1, len(r.Purpose.Warnings))
	assert.Equal(t, "justification-insufficient", r.Purpose.Warnings[0].Code)
}

func TestPTATimeExpired(t *testing.T) {
	ob := baseObligation()
	// FY2024 O&M expired 2024-09-30; obligation attempted in FY2025.
	ob.ObligationDate = date(2024, time.October, 15)

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Time.Valid())
	assert.Equal(t, "funds-expired", r.Time.Errors[0].Code)
	assert.Equal(t, "31 U.S.C. 1502(a)", r.Time.Errors[0].Statute)
}

func TestPTATimeNearExpiration(t *testing.T) {
	ob := baseObligation()
	ob.ObligationDate = date(2024, time.September, 20)

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.True(t, r.Time.Valid())
	assert.Equal(t, 1, len(r.Time.Warnings))
	assert.Equal(t, "funds-near-expiration", r.Time.Warnings[0].Code)
}

func TestPTATimeNoYearNeverWarns(t *testing.T) {
	ob := baseObligation()
	ob.Category = appropriation.NoYear
	ob.Purpose = "working-capital"
	ob.ObligationDate = date(2099, time.September, 29)

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.True(t, r.Time.Valid())
	assert.Equal(t, 0, len(r.Time.Warnings))
}

func TestPTATimeNeedDateCrossCheck(t *testing.T) {
	ob := baseObligation()
	need := date(2024, time.November, 1) // FY2025
	ob.NeedDate = &need

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Time.Valid())
	assert.Equal(t, "bona-fide-need", r.Time.Errors[0].Code)

	// A qualifying exception clears the cross-check.
	ob.IsStockItem = true
	r = ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.True(t, r.Time.Valid())
}

func TestPTAAmountExactBoundary(t *testing.T) {
	acct := baseAccount()
	available := acct.Available() // 750,000

	ob := baseObligation()
	ob.Amount = available
	r := ValidatePTA(ob, acct, appropriation.DefaultThresholds())
	assert.True(t, r.Amount.Valid(), "obligating exactly the available balance is permitted")

	ob.Amount = available.Add(money(1))
	r = ValidatePTA(ob, acct, appropriation.DefaultThresholds())
	assert.False(t, r.Amount.Valid())
	assert.Equal(t, "amount-exceeds-available", r.Amount.Errors[0].Code)
}

func TestPTAAmountOverride(t *testing.T) {
	ob := baseObligation()
	ob.Amount = money(600_000)
	ob.AvailableOverride = moneyPtr(500_000)

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Amount.Valid(), "override replaces the derived balance")
}

func TestPTAAmountHighConsumptionWarning(t *testing.T) {
	acct := baseAccount()
	ob := baseObligation()
	ob.Amount = money(700_000) // 93% of the 750,000 available

	r := ValidatePTA(ob, acct, appropriation.DefaultThresholds())
	assert.True(t, r.Amount.Valid())
	assert.Equal(t, 1, len(r.Amount.Warnings))
	assert.Equal(t, "high-consumption", r.Amount.Warnings[0].Code)
}

func TestPTAAmountNotPositive(t *testing.T) {
	ob := baseObligation()
	ob.Amount = money(0)

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Amount.Valid())
}

func TestPTAIndependentSubChecks(t *testing.T) {
	// All three restrictions violated at once: every sub-result reports.
	ob := baseObligation()
	ob.Purpose = "research"
	ob.ObligationDate = date(2025, time.June, 1)
	ob.Amount = money(2_000_000)

	r := ValidatePTA(ob, baseAccount(), appropriation.DefaultThresholds())
	assert.False(t, r.Purpose.Valid())
	assert.False(t, r.Time.Valid())
	assert.False(t, r.Amount.Valid())
	assert.Equal(t, 3, len(r.Combined().Errors))
}
