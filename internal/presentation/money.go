package presentation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a rupee amount for the metric cards, e.g. 124477.3
// becomes "₹124,477". Decimal rounding avoids float display artifacts in
// the card values.
func FormatMoney(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("₹")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(",")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(",")
		}
	}

	return b.String()
}

// FormatPercent renders a fractional value as a percentage with one
// decimal, e.g. 0.625 becomes "62.5%".
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction * 100).Round(1).String() + "%"
}
