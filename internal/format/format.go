// Package format renders amounts and tip percentages for display.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Overflow is shown in place of an amount too large to represent.
const Overflow = "overflow"

// Currency formats amount as dollars with exactly two decimals, e.g. "$120.00".
// Negative amounts carry the sign before the symbol, e.g. "-$5.00".
// Non-finite amounts render as Overflow.
func Currency(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Overflow
	}
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// Percent formats a whole tip percentage, e.g. "20%".
func Percent(pct int) string {
	return strconv.Itoa(pct) + "%"
}
