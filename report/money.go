// Package report shapes validated budget data into congressional exhibit
// layouts: the budget justification sheet, OP-5, P-1, R-2, C-1, the
// DD 1415 reprogramming action, and the quarterly financial report. The
// functions here present numbers that have already been validated
// elsewhere; nothing in this package enforces a business rule.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.New(1000, 0)

// Thousands renders an amount in thousands of dollars with the exhibit
// convention's K suffix, rounding half up: $1,234K.
func Thousands(d decimal.Decimal) string {
	k := d.Div(thousand).Round(0)

	sign := ""
	if k.IsNegative() {
		sign = "-"
		k = k.Abs()
	}
	return sign + "$" + group(k.String()) + "K"
}

// group inserts comma separators into a non-negative integer string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
