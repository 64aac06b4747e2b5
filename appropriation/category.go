// Package appropriation catalogs the DoD appropriation categories and the
// "colors of money" purpose rules attached to them. The catalog is static:
// availability periods, authorized purposes and color tags are fixed per
// category, with a subtype override for shipbuilding procurement.
package appropriation

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/harborgrid-justin/appropriations/fiscal"
)

// Category identifies an appropriation account type. The set is closed;
// switches over Category are written exhaustively so a new category forces
// every call site to be revisited.
type Category int

const (
	OperationsMaintenance Category = iota
	MilitaryPersonnel
	Procurement
	RDTE
	MilitaryConstruction
	FamilyHousing
	NoYear
)

// Subtype refines Procurement availability. Shipbuilding and conversion
// accounts get five years instead of three.
type Subtype int

const (
	SubtypeNone Subtype = iota
	SubtypeShipbuilding
)

// Categories returns every category in canonical order.
func Categories() []Category {
	return []Category{
		OperationsMaintenance,
		MilitaryPersonnel,
		Procurement,
		RDTE,
		MilitaryConstruction,
		FamilyHousing,
		NoYear,
	}
}

// Code returns the short account code used in budget documents.
func (c Category) Code() string {
	switch c {
	case OperationsMaintenance:
		return "O&M"
	case MilitaryPersonnel:
		return "MILPERS"
	case Procurement:
		return "PROC"
	case RDTE:
		return "RDTE"
	case MilitaryConstruction:
		return "MILCON"
	case FamilyHousing:
		return "FH"
	case NoYear:
		return "NO-YEAR"
	}
	return "UNKNOWN"
}

func (c Category) String() string {
	switch c {
	case OperationsMaintenance:
		return "Operations & Maintenance"
	case MilitaryPersonnel:
		return "Military Personnel"
	case Procurement:
		return "Procurement"
	case RDTE:
		return "Research, Development, Test & Evaluation"
	case MilitaryConstruction:
		return "Military Construction"
	case FamilyHousing:
		return "Family Housing"
	case NoYear:
		return "No-Year"
	}
	return "Unknown"
}

// Color returns the informal "color of money" tag for the category.
func (c Category) Color() string {
	switch c {
	case OperationsMaintenance:
		return "green"
	case MilitaryPersonnel:
		return "red"
	case Procurement:
		return "blue"
	case RDTE:
		return "orange"
	case MilitaryConstruction:
		return "brown"
	case FamilyHousing:
		return "purple"
	case NoYear:
		return "gray"
	}
	return ""
}

// ParseCode resolves an account code to its category. Lookup is
// case-sensitive; unknown codes report ok=false and callers surface a
// structured input error rather than panicking.
func ParseCode(code string) (Category, bool) {
	for _, c := range Categories() {
		if c.Code() == code {
			return c, true
		}
	}
	return 0, false
}

// Availability returns the category's period of availability in fiscal
// years. Zero means the appropriation never expires.
func (c Category) Availability(sub Subtype) int {
	switch c {
	case OperationsMaintenance, MilitaryPersonnel:
		return 1
	case RDTE:
		return 2
	case Procurement:
		if sub == SubtypeShipbuilding {
			return 5
		}
		return 3
	case MilitaryConstruction, FamilyHousing:
		return 5
	case NoYear:
		return 0
	}
	return 0
}

// AuthorizedPurposes returns the purpose tags the category may fund.
func (c Category) AuthorizedPurposes() []string {
	switch c {
	case OperationsMaintenance:
		return []string{"operations", "maintenance", "civilian-pay", "travel", "supplies", "services", "equipment", "training", "fuel", "minor-construction"}
	case MilitaryPersonnel:
		return []string{"military-pay", "allowances", "bonuses", "pcs-travel", "retirement-accrual", "subsistence"}
	case Procurement:
		return []string{"equipment", "weapons", "vehicles", "aircraft", "ships", "ammunition", "major-systems", "initial-spares"}
	case RDTE:
		return []string{"research", "development", "test", "evaluation", "prototypes"}
	case MilitaryConstruction:
		return []string{"construction", "land-acquisition", "facilities", "planning-design"}
	case FamilyHousing:
		return []string{"housing-construction", "housing-operations", "housing-maintenance", "housing-leasing"}
	case NoYear:
		return []string{"working-capital", "revolving-fund", "trust-fund"}
	}
	return nil
}

// Authorizes reports whether the purpose tag is on the category's
// authorized list.
func (c Category) Authorizes(purpose string) bool {
	return slices.Contains(c.AuthorizedPurposes(), purpose)
}

// Expiration describes when an appropriation's obligational authority ends.
type Expiration struct {
	// Never is true for no-year money.
	Never bool
	// FiscalYear is the last fiscal year of availability.
	FiscalYear fiscal.Year
	// Date is the last instant of obligational availability.
	Date time.Time
}

// ExpirationOf computes the expiration of an appropriation of this category
// enacted for the given fiscal year. Availability runs through the end of
// FY + availability - 1.
func (c Category) ExpirationOf(fy fiscal.Year, sub Subtype) Expiration {
	years := c.Availability(sub)
	if years == 0 {
		return Expiration{Never: true}
	}
	last := fiscal.Year(int(fy) + years - 1)
	return Expiration{
		FiscalYear: last,
		Date:       last.End(time.UTC),
	}
}

// IsExpired reports whether the appropriation can no longer be obligated as
// of the given date, along with the days remaining until expiration
// (negative once expired, zero for no-year money).
func (c Category) IsExpired(fy fiscal.Year, sub Subtype, asOf time.Time) (bool, int) {
	exp := c.ExpirationOf(fy, sub)
	if exp.Never {
		return false, 0
	}
	days := int(exp.Date.Sub(asOf).Hours() / 24)
	return asOf.After(exp.Date), days
}
