// Package form implements the bill form controller. It holds the bill text,
// split count and tip fraction, and recomputes the tip and per-person total
// synchronously inside every mutator.
//
// A Form is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package form

import (
	"math"
	"strings"

	"github.com/bauermateus/Bill-Splitter-App/internal/calculator"
	"github.com/bauermateus/Bill-Splitter-App/internal/models"
)

// Form is the state behind one bill-splitting screen.
type Form struct {
	billText    string
	billAmount  float64
	splitCount  int
	tipFraction float64

	valid          bool
	tip            float64
	totalPerPerson float64

	validation    Validation
	onValueChange func(string)
}

// Option configures a Form.
type Option func(*Form)

// WithOnValueChange sets the callback invoked with the trimmed bill text on
// every successful Submit.
func WithOnValueChange(fn func(string)) Option {
	return func(f *Form) {
		if fn != nil {
			f.onValueChange = fn
		}
	}
}

// WithValidation sets the validation policy. The default is ValidateNumeric.
func WithValidation(v Validation) Option {
	return func(f *Form) {
		f.validation = v
	}
}

// New returns a form with an empty bill, a split of 1 and no tip.
func New(opts ...Option) *Form {
	f := &Form{
		validation:    ValidateNumeric,
		onValueChange: func(string) {},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()
	return f
}

// Reset restores the initial inputs. Options are kept.
func (f *Form) Reset() {
	f.billText = ""
	f.splitCount = 1
	f.tipFraction = 0
	f.recompute()
}

// SetBillAmount replaces the bill text. Text that does not parse computes as 0.
func (f *Form) SetBillAmount(text string) {
	f.billText = text
	f.recompute()
}

// IncrementSplit adds one person to the split.
func (f *Form) IncrementSplit() {
	f.splitCount++
	f.recompute()
}

// DecrementSplit removes one person from the split. It is a no-op at 1.
func (f *Form) DecrementSplit() {
	if f.splitCount > 1 {
		f.splitCount--
		f.recompute()
	}
}

// SetTipFraction sets the tip slider position, clamped to [0, 1].
func (f *Form) SetTipFraction(value float64) {
	switch {
	case math.IsNaN(value), value < 0:
		value = 0
	case value > 1:
		value = 1
	}
	f.tipFraction = value
	f.recompute()
}

// Submit forwards the trimmed bill text to the OnValueChange callback.
// It does nothing and returns false when the entry is not valid.
func (f *Form) Submit() bool {
	if !f.valid {
		return false
	}
	f.onValueChange(strings.TrimSpace(f.billText))
	return true
}

func (f *Form) recompute() {
	f.valid = f.validation.accepts(f.billText)
	f.billAmount, _ = parseBill(f.billText)

	pct := calculator.TipPercent(f.tipFraction)
	f.tip = calculator.ComputeTip(f.billAmount, pct)
	f.totalPerPerson = calculator.ComputeTotalPerPerson(f.billAmount, f.splitCount, pct)
}

// BillText returns the bill entry exactly as typed.
func (f *Form) BillText() string { return f.billText }

// SplitCount returns the number of people sharing the bill. It is never
// below 1.
func (f *Form) SplitCount() int { return f.splitCount }

// TipFraction returns the tip slider position in [0, 1].
func (f *Form) TipFraction() float64 { return f.tipFraction }

// TipPercent returns the tip fraction as a whole percentage.
func (f *Form) TipPercent() int { return calculator.TipPercent(f.tipFraction) }

// Valid reports whether the bill entry passes the form's validation policy.
func (f *Form) Valid() bool { return f.valid }

// Tip returns the tip amount for the whole bill. It can be +Inf for bills
// above calculator.MaxBillAmount.
func (f *Form) Tip() float64 { return f.tip }

// TotalPerPerson returns what each person pays, tip included.
func (f *Form) TotalPerPerson() float64 { return f.totalPerPerson }

// Summary returns a snapshot of the inputs and derived values.
func (f *Form) Summary() models.Summary {
	return models.Summary{
		BillText:       f.billText,
		BillAmount:     f.billAmount,
		SplitCount:     f.splitCount,
		TipFraction:    f.tipFraction,
		TipPercent:     f.TipPercent(),
		Valid:          f.valid,
		Tip:            f.tip,
		TotalPerPerson: f.totalPerPerson,
	}
}
