package compliance

import (
	"context"
	"time"

	"github.com/harborgrid-justin/appropriations/appropriation"
	"github.com/harborgrid-justin/appropriations/finding"
	"github.com/harborgrid-justin/appropriations/telemetry"
)

// Engine composes the individual validators into the single entry point
// callers use before committing an obligation. An Engine is immutable and
// safe for concurrent use.
type Engine struct {
	thresholds appropriation.Thresholds
}

// Option configures an Engine.
type Option func(*Engine)

// WithThresholds overrides the default policy thresholds.
func WithThresholds(t appropriation.Thresholds) Option {
	return func(e *Engine) { e.thresholds = t }
}

// NewEngine creates an engine with default thresholds unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{thresholds: appropriation.DefaultThresholds()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Options carries the per-call collaborator inputs. Now is the caller's
// wall clock; the engine never reads time itself.
type Options struct {
	Now           time.Time
	Apportionment *Apportionment
}

// TransactionResult aggregates every validator's outcome for one proposed
// obligation. Per-component results are preserved alongside the union so
// callers can attribute findings.
type TransactionResult struct {
	Valid              bool
	Errors             []finding.Finding
	Warnings           []finding.Finding
	PTA                PTAResult
	BonaFide           BonaFideResult
	ADA                ADAResult
	CriticalViolations bool
	Timestamp          time.Time
}

// ValidateTransaction runs the full compliance analysis: input checks,
// Purpose/Time/Amount, bona fide need, and the Anti-Deficiency Act suite.
// Every sub-validator runs to completion even when earlier ones fail, so
// the result is the union of all problems found in one pass.
func (e *Engine) ValidateTransaction(ctx context.Context, ob Obligation, acct BudgetAccount, opts Options) *TransactionResult {
	timer := telemetry.FromContext(ctx).Start("validate transaction")
	defer timer.End()

	res := &TransactionResult{Timestamp: opts.Now}
	var combined finding.Result

	inputTimer := timer.Child("input checks")
	combined.Merge(checkInputs(ob, acct))
	inputTimer.End()

	ptaTimer := timer.Child("purpose/time/amount")
	res.PTA = ValidatePTA(ob, acct, e.thresholds)
	combined.Merge(res.PTA.Combined())
	ptaTimer.End()

	bfnTimer := timer.Child("bona fide need")
	res.BonaFide = ValidateBonaFideNeed(ob)
	combined.Merge(res.BonaFide.Result)
	bfnTimer.End()

	adaTimer := timer.Child("anti-deficiency act")
	res.ADA = CheckADA(ob, acct, opts.Apportionment)
	combined.Merge(res.ADA.Result)
	adaTimer.End()

	res.Errors = dedupe(combined.Errors)
	res.Warnings = dedupe(combined.Warnings)
	res.Valid = len(res.Errors) == 0
	res.CriticalViolations = res.ADA.Severity == finding.SeverityCritical
	return res
}

// checkInputs rejects structurally unusable inputs as findings rather than
// panics, so callers can treat them like any other validation failure.
func checkInputs(ob Obligation, acct BudgetAccount) finding.Result {
	var r finding.Result
	if ob.FiscalYear <= 0 {
		r.Errorf("invalid-fiscal-year", "", "obligation has no fiscal year")
	}
	if ob.ObligationDate.IsZero() {
		r.Errorf("invalid-obligation-date", "", "obligation has no obligation date")
	}
	if acct.Appropriated.IsNegative() || acct.Obligated.IsNegative() ||
		acct.Committed.IsNegative() || acct.Expended.IsNegative() {
		r.Errorf("invalid-account-snapshot", "", "budget account snapshot contains negative balances")
	}
	return r
}

// dedupe drops exact duplicate findings while preserving order. The PTA
// time check and the bona fide need validator intentionally overlap on the
// core 1502 rule; the union should report it once.
func dedupe(findings []finding.Finding) []finding.Finding {
	seen := make(map[finding.Finding]bool, len(findings))
	out := findings[:0:0]
	for _, f := range findings {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
