package models

// Summary is a read-only view of a bill form: the three inputs as the user
// set them, plus the values derived from them.
type Summary struct {
	// BillText is the bill amount exactly as entered.
	BillText string

	// BillAmount is BillText parsed as a number, or 0 when it does not parse.
	BillAmount float64

	// SplitCount is the number of people sharing the bill. Always >= 1.
	SplitCount int

	// TipFraction is the slider position in [0, 1].
	TipFraction float64

	// TipPercent is TipFraction as a whole percentage.
	TipPercent int

	// Valid reports whether the bill entry passes the form's validation
	// policy. Derived controls are shown only when it is true.
	Valid bool

	// Tip is the tip amount for the whole bill.
	Tip float64

	// TotalPerPerson is what each person pays, tip included.
	TotalPerPerson float64
}
