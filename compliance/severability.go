package compliance

import "strings"

// Confidence bands the severability classifier's certainty. The classifier
// is an advisory heuristic, not a legal determination: anything below
// ConfidenceHigh is flagged for manual review.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	}
	return "unknown"
}

// ContractShape captures structural hints about the contract that weigh on
// severability independent of the description text.
type ContractShape struct {
	// RecurringPayments favors a severable reading.
	RecurringPayments bool
	// MilestoneDeliverables favors a non-severable reading.
	MilestoneDeliverables bool
}

// Classification is the classifier's advisory verdict.
type Classification struct {
	Severable    bool
	Confidence   Confidence
	Score        int // severable evidence minus non-severable evidence
	Matched      []string
	ManualReview bool
}

// Keyword evidence sets. Curated from contract language that typically
// signals recurring, yearly-divisible services versus single indivisible
// undertakings.
var (
	severableKeywords = []string{
		"maintenance", "janitorial", "custodial", "landscaping", "grounds",
		"refuse", "security guard", "help desk", "subscription", "recurring",
		"monthly", "ongoing support", "operations support",
	}
	nonSeverableKeywords = []string{
		"study", "report", "analysis", "prototype", "design", "develop",
		"construction", "installation", "overhaul", "milestone",
		"deliverable", "final product", "system integration",
	}
)

// ClassifySeverability scores a free-text service description against the
// curated keyword sets plus contract-shape hints. A scoring margin of at
// least 2 yields high confidence; a margin of 1 is medium and a tie is
// low, both flagged for manual review.
func ClassifySeverability(description string, shape ContractShape) Classification {
	text := strings.ToLower(description)

	var cls Classification
	sev, non := 0, 0
	for _, kw := range severableKeywords {
		if strings.Contains(text, kw) {
			sev++
			cls.Matched = append(cls.Matched, kw)
		}
	}
	for _, kw := range nonSeverableKeywords {
		if strings.Contains(text, kw) {
			non++
			cls.Matched = append(cls.Matched, kw)
		}
	}

	if shape.RecurringPayments {
		sev += 2
	}
	if shape.MilestoneDeliverables {
		non += 2
	}

	cls.Score = sev - non
	cls.Severable = sev > non

	margin := cls.Score
	if margin < 0 {
		margin = -margin
	}
	switch {
	case margin >= 2:
		cls.Confidence = ConfidenceHigh
	case margin == 1:
		cls.Confidence = ConfidenceMedium
		cls.ManualReview = true
	default:
		cls.Confidence = ConfidenceLow
		cls.ManualReview = true
	}

	return cls
}
