// Package compliance implements the appropriations-law validators: the
// Purpose/Time/Amount rule, the bona fide need rule of 31 U.S.C. 1502, the
// Anti-Deficiency Act checks of 31 U.S.C. 1341/1342/1517/1532, and the
// orchestrating transaction validator that composes them.
//
// Validation Architecture
//
// Every check is a pure function over caller-supplied snapshots. Checks do
// not short-circuit: each one appends everything it finds to a
// finding.Result so the orchestrator can present the union of all problems
// in a single pass. Business-rule failures are returned values; the package
// never panics on bad input, it reports an input-error finding instead.
package compliance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/appropriation"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

// ContractType classifies the obligation's underlying contract for the
// bona fide need analysis.
type ContractType int

const (
	ContractUnspecified ContractType = iota
	ContractSeverable
	ContractNonSeverable
	ContractSupplies
	ContractEquipment
)

func (t ContractType) String() string {
	switch t {
	case ContractUnspecified:
		return "unspecified"
	case ContractSeverable:
		return "severable"
	case ContractNonSeverable:
		return "non-severable"
	case ContractSupplies:
		return "supplies"
	case ContractEquipment:
		return "equipment"
	}
	return "unknown"
}

// FundingSource identifies where the money behind an obligation comes
// from. Anything other than appropriated funds triggers the augmentation
// analysis of 31 U.S.C. 1532.
type FundingSource int

const (
	SourceAppropriated FundingSource = iota
	SourceGift
	SourceDonation
	SourcePrivate
	SourceNonFederal
)

// nonAppropriated reports whether the source requires augmentation authority.
func (s FundingSource) nonAppropriated() bool {
	return s != SourceAppropriated
}

func (s FundingSource) String() string {
	switch s {
	case SourceAppropriated:
		return "appropriated"
	case SourceGift:
		return "gift"
	case SourceDonation:
		return "donation"
	case SourcePrivate:
		return "private"
	case SourceNonFederal:
		return "non-federal"
	}
	return "unknown"
}

// Period is an inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Obligation is a proposed or recorded transaction against an
// appropriation. It is immutable once validated; only the owning workflow
// or ledger outside this core may mutate it.
type Obligation struct {
	ID             string
	Amount         decimal.Decimal
	Category       appropriation.Category
	Subtype        appropriation.Subtype
	FiscalYear     fiscal.Year
	Purpose        string
	Justification  string
	ObligationDate time.Time

	// NeedDate is when the funded need arises; Performance is the contract
	// performance period. Either may drive the bona fide need analysis.
	NeedDate    *time.Time
	Performance *Period

	ContractType ContractType

	// ProhibitedPurposes and RequiredPurposes are obligation-specific
	// purpose restrictions layered on top of the category's list.
	ProhibitedPurposes []string
	RequiredPurposes   []string

	// AvailableOverride replaces the derived available balance in the
	// PTA amount check when the caller has a fresher figure.
	AvailableOverride *decimal.Decimal

	// Bona fide need exception flags. Authority citations are
	// caller-supplied and trusted as cited; validators flag them for
	// scope verification rather than verifying them.
	IsStockItem                   bool
	LeadTimeMonths                int
	LeadTimeJustification         string
	MultiYearAuthority            string
	ContinuingResolutionAuthority string

	// Anti-Deficiency Act fields.
	FundingSource           FundingSource
	AugmentationAuthority   string
	VoluntaryService        bool
	Emergency               bool
	EmergencyJustification  string
	PaymentDate             *time.Time
	AdvancePaymentAuthority string
}

// needDate returns the date driving the bona fide need analysis: the
// explicit need date if set, otherwise the performance period start.
func (o Obligation) needDate() (time.Time, bool) {
	if o.NeedDate != nil {
		return *o.NeedDate, true
	}
	if o.Performance != nil {
		return o.Performance.Start, true
	}
	return time.Time{}, false
}

// BudgetAccount is a point-in-time snapshot of an appropriation account's
// funding ladder. Apportioned and Allotted are nil when OMB or the agency
// has not subdivided the appropriation.
type BudgetAccount struct {
	Appropriated decimal.Decimal
	Apportioned  *decimal.Decimal
	Allotted     *decimal.Decimal
	Committed    decimal.Decimal
	Obligated    decimal.Decimal
	Expended     decimal.Decimal
}

// Ceiling returns the controlling obligation ceiling: the tightest
// non-null of appropriated, apportioned and allotted.
func (a BudgetAccount) Ceiling() decimal.Decimal {
	ceiling := a.Appropriated
	if a.Apportioned != nil && a.Apportioned.LessThan(ceiling) {
		ceiling = *a.Apportioned
	}
	if a.Allotted != nil && a.Allotted.LessThan(ceiling) {
		ceiling = *a.Allotted
	}
	return ceiling
}

// Available returns the uncommitted balance:
// appropriated - obligated - committed.
func (a BudgetAccount) Available() decimal.Decimal {
	return a.Appropriated.Sub(a.Obligated).Sub(a.Committed)
}

// Apportionment is OMB's subdivision of an appropriation for a stated
// period, optionally with footnote restrictions on named activities.
type Apportionment struct {
	Period               Period
	Amount               decimal.Decimal
	RestrictedActivities []string
}
