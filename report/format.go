// Package report renders scenario results as fixed-width summary tables.
// It consumes Result values read-only; all rounding happens here, never
// in the solving pipeline.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats v as a dollar amount with two decimals and thousands
// separators, e.g. 1234567.891 -> "$1,234,567.89".
func Currency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}
	out := "$" + groupThousands(d.StringFixed(2))
	if negative {
		out = "-" + out
	}
	return out
}

// Percent formats a 0-1 fraction as a percentage with the given number
// of decimal places, e.g. Percent(0.08304, 2) -> "8.30%".
func Percent(v float64, places int32) string {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

// Quantity formats v with thousands separators and no decimals, for
// barrel and unit counts.
func Quantity(v float64) string {
	d := decimal.NewFromFloat(v).Round(0)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}
	out := groupThousands(d.StringFixed(0))
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
