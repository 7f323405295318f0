package calculator

// ComputeTotalPerPerson computes how much each person owes once the tip is added.
// Based on: per_person = (bill + tip(bill, pct)) / split_by
//
// splitBy must be at least 1; callers hold that invariant.
func ComputeTotalPerPerson(billAmount float64, splitBy int, tipPercentage int) float64 {
	bill := ComputeTip(billAmount, tipPercentage) + billAmount
	return bill / float64(splitBy)
}
