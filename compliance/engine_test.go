package compliance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/harborgrid-justin/appropriations/telemetry"
)

func TestValidateTransactionClean(t *testing.T) {
	engine := NewEngine()
	now := date(2024, time.March, 16)

	res := engine.ValidateTransaction(context.Background(), baseObligation(), baseAccount(), Options{Now: now})
	assert.True(t, res.Valid)
	assert.Equal(t, 0, len(res.Errors))
	assert.False(t, res.CriticalViolations)
	assert.Equal(t, now, res.Timestamp)
	// The base obligation documents no need date, which stays advisory.
	assert.Equal(t, 1, len(res.Warnings))
}

func TestValidateTransactionUnionsComponents(t *testing.T) {
	engine := NewEngine()

	acct := BudgetAccount{
		Appropriated: money(10_000_000),
		Apportioned:  moneyPtr(9_000_000),
		Obligated:    money(8_500_000),
		Committed:    money(400_000),
	}
	ob := baseObligation()
	ob.Amount = money(500_000)
	ob.Purpose = "research"
	need := date(2024, time.December, 1)
	ob.NeedDate = &need

	res := engine.ValidateTransaction(context.Background(), ob, acct, Options{Now: date(2024, time.March, 16)})
	assert.False(t, res.Valid)
	assert.True(t, res.CriticalViolations)

	// Purpose violation, amount-exceeds-available, bona fide need, and the
	// ADA overobligation all surface together.
	codes := make(map[string]bool)
	for _, f := range res.Errors {
		codes[f.Code] = true
	}
	assert.True(t, codes["purpose-not-authorized"])
	assert.True(t, codes["amount-exceeds-available"])
	assert.True(t, codes["bona-fide-need"])
	assert.True(t, codes["ada-overobligation"])
}

func TestValidateTransactionDeduplicatesCrossChecks(t *testing.T) {
	// The PTA time check and the bona fide validator both evaluate the
	// 1502 core rule; the union must report it once.
	engine := NewEngine()
	ob := baseObligation()
	need := date(2024, time.December, 1)
	ob.NeedDate = &need

	res := engine.ValidateTransaction(context.Background(), ob, baseAccount(), Options{Now: date(2024, time.March, 16)})
	count := 0
	for _, f := range res.Errors {
		if f.Code == "bona-fide-need" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestValidateTransactionInputErrors(t *testing.T) {
	engine := NewEngine()

	var ob Obligation // zero value: no fiscal year, no date, zero amount
	res := engine.ValidateTransaction(context.Background(), ob, BudgetAccount{}, Options{})
	assert.False(t, res.Valid)

	codes := make(map[string]bool)
	for _, f := range res.Errors {
		codes[f.Code] = true
	}
	assert.True(t, codes["invalid-fiscal-year"])
	assert.True(t, codes["invalid-obligation-date"])
}

func TestValidateTransactionNegativeSnapshot(t *testing.T) {
	engine := NewEngine()
	acct := baseAccount()
	acct.Obligated = money(-5)

	res := engine.ValidateTransaction(context.Background(), baseObligation(), acct, Options{})
	assert.False(t, res.Valid)
}

func TestValidateTransactionIdempotent(t *testing.T) {
	engine := NewEngine()
	acct := BudgetAccount{
		Appropriated: money(10_000_000),
		Apportioned:  moneyPtr(9_000_000),
		Obligated:    money(8_500_000),
		Committed:    money(400_000),
	}
	ob := baseObligation()
	ob.Amount = money(500_000)
	opts := Options{Now: date(2024, time.March, 16)}

	first := engine.ValidateTransaction(context.Background(), ob, acct, opts)
	second := engine.ValidateTransaction(context.Background(), ob, acct, opts)
	assert.Equal(t, first, second)
}

func TestValidateTransactionEmitsTelemetry(t *testing.T) {
	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	NewEngine().ValidateTransaction(ctx, baseObligation(), baseAccount(), Options{Now: date(2024, time.March, 16)})

	var buf strings.Builder
	collector.Report(&buf)
	out := buf.String()
	assert.Contains(t, out, "validate transaction")
	assert.Contains(t, out, "purpose/time/amount")
	assert.Contains(t, out, "anti-deficiency act")
}
