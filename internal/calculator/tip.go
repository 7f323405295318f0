// Package calculator holds the bill arithmetic: tip amount and per-person
// share. Every function here is pure.
package calculator

import "math"

// minTippableBill is the amount a bill must exceed before any tip is computed.
// Empty, zero and placeholder amounts all land at or below it.
const minTippableBill = 1.0

// MaxBillAmount is the largest bill whose tip and per-person total stay
// finite for every tip percentage from 0 to 100.
const MaxBillAmount = math.MaxFloat64 / 200

// ComputeTip returns the tip for billAmount at tipPercentage percent.
// Bills of 1 or less yield no tip. Out-of-range percentages are not rejected;
// a large enough bill or percentage overflows to +Inf.
func ComputeTip(billAmount float64, tipPercentage int) float64 {
	if billAmount <= minTippableBill {
		return 0
	}
	return billAmount * float64(tipPercentage) / 100
}

// TipPercent converts a tip fraction in [0, 1] to a whole percentage.
func TipPercent(fraction float64) int {
	return int(math.Round(fraction * 100))
}

// Finite reports whether every amount is neither infinite nor NaN.
func Finite(amounts ...float64) bool {
	for _, a := range amounts {
		if math.IsInf(a, 0) || math.IsNaN(a) {
			return false
		}
	}
	return true
}
