package appropriation

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/harborgrid-justin/appropriations/finding"
	"github.com/harborgrid-justin/appropriations/fiscal"
)

// ValidatePurpose checks that a purpose tag is authorized for the category
// (31 U.S.C. 1301(a)). Unauthorized purposes produce a blocking finding
// listing the category's authorized purposes.
func ValidatePurpose(c Category, purpose string) finding.Result {
	var r finding.Result
	if purpose == "" {
		r.Errorf("purpose-missing", "", "obligation has no purpose tag")
		return r
	}
	if !c.Authorizes(purpose) {
		r.Errorf("purpose-not-authorized", "31 U.S.C. 1301(a)",
			"purpose %q is not authorized for %s; authorized purposes: %s",
			purpose, c, strings.Join(c.AuthorizedPurposes(), ", "))
	}
	return r
}

// Recommendation is a ranked suggestion of which category should fund a
// purpose at a given dollar amount.
type Recommendation struct {
	Category Category
	Rank     int
	Reason   string
}

// Recommend returns categories that may fund the purpose, ranked with the
// best fit first. The expense/investment and minor-construction thresholds
// decide between O&M and the investment accounts:
//
//   - equipment below the expense/investment split recommends O&M;
//     at or above it, Procurement
//   - construction at or above the minor-construction ceiling recommends
//     MILCON; below it, O&M minor construction
//
// An empty slice means no category authorizes the purpose.
func Recommend(purpose string, amount decimal.Decimal, t Thresholds) []Recommendation {
	var candidates []Category
	for _, c := range Categories() {
		if c.Authorizes(purpose) {
			candidates = append(candidates, c)
		}
	}
	if purpose == "construction" && amount.LessThan(t.Construction) {
		// Below the MILCON floor this is unspecified minor construction,
		// fundable from O&M even though the tag itself is MILCON-flavored.
		if !OperationsMaintenance.Authorizes(purpose) {
			candidates = append(candidates, OperationsMaintenance)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, Recommendation{Category: c, Reason: "purpose authorized for " + c.Code()})
	}

	preferred, reason := preferredCategory(purpose, amount, t)
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Category == preferred {
			return recs[j].Category != preferred
		}
		return false
	})
	for i := range recs {
		recs[i].Rank = i + 1
		if recs[i].Category == preferred && reason != "" {
			recs[i].Reason = reason
		}
	}
	return recs
}

// preferredCategory applies the dollar-threshold tie-break rules.
func preferredCategory(purpose string, amount decimal.Decimal, t Thresholds) (Category, string) {
	switch purpose {
	case "equipment":
		if amount.GreaterThanOrEqual(t.ExpenseInvestment) {
			return Procurement, "equipment at or above the $" + t.ExpenseInvestment.StringFixed(0) + " expense/investment threshold is an investment item"
		}
		return OperationsMaintenance, "equipment below the expense/investment threshold is an expense item"
	case "construction":
		if amount.GreaterThanOrEqual(t.Construction) {
			return MilitaryConstruction, "construction at or above the $" + t.Construction.StringFixed(0) + " ceiling requires MILCON"
		}
		return OperationsMaintenance, "unspecified minor construction below the MILCON ceiling"
	}
	return -1, ""
}

// ActivityEntry is one obligation attributed to a funded activity, used by
// the commingling check. The incremental flag marks funding explicitly
// authorized to span fiscal years.
type ActivityEntry struct {
	ActivityID            string
	Category              Category
	Subtype               Subtype
	FiscalYear            fiscal.Year
	IncrementalAuthorized bool
}

// ValidateNoCommingling checks that no single activity mixes appropriation
// categories, and that same-category funding spanning fiscal years carries
// incremental or multi-year authority. Category mixing is a blocking error;
// fiscal-year mixing with no authority is advisory only.
func ValidateNoCommingling(entries []ActivityEntry) finding.Result {
	var r finding.Result

	byActivity := make(map[string][]ActivityEntry)
	var order []string
	for _, e := range entries {
		if _, seen := byActivity[e.ActivityID]; !seen {
			order = append(order, e.ActivityID)
		}
		byActivity[e.ActivityID] = append(byActivity[e.ActivityID], e)
	}

	for _, id := range order {
		group := byActivity[id]
		categories := make(map[Category]bool)
		years := make(map[fiscal.Year]bool)
		authorized := false
		for _, e := range group {
			categories[e.Category] = true
			years[e.FiscalYear] = true
			if e.IncrementalAuthorized {
				authorized = true
			}
		}

		if len(categories) > 1 {
			codes := make([]string, 0, len(categories))
			for c := range categories {
				codes = append(codes, c.Code())
			}
			sort.Strings(codes)
			r.Errorf("commingled-categories", "31 U.S.C. 1301(a)",
				"activity %s mixes appropriation categories: %s", id, strings.Join(codes, ", "))
			continue
		}

		if len(years) > 1 && !authorized {
			r.Warnf("mixed-fiscal-years", "",
				"activity %s is funded across %d fiscal years of the same appropriation without incremental or multi-year authority", id, len(years))
		}
	}

	return r
}
