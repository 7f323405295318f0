package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bauermateus/Bill-Splitter-App/internal/calculator"
)

// Validation decides when a bill entry counts as valid input.
type Validation string

const (
	// ValidateNumeric accepts trimmed text that parses as a non-negative
	// number no larger than calculator.MaxBillAmount.
	ValidateNumeric Validation = "numeric"

	// ValidateNonEmpty accepts any non-blank text. Text that does not parse
	// still passes and computes as a zero bill.
	ValidateNonEmpty Validation = "non_empty"
)

// ParseValidation maps a config value to a Validation. Empty means numeric.
func ParseValidation(s string) (Validation, error) {
	switch Validation(strings.ToLower(strings.TrimSpace(s))) {
	case "", ValidateNumeric:
		return ValidateNumeric, nil
	case ValidateNonEmpty:
		return ValidateNonEmpty, nil
	default:
		return "", fmt.Errorf("unknown validation policy %q", s)
	}
}

// parseBill parses bill text. It returns 0 and false for anything that is
// not a finite number.
func parseBill(text string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

func (v Validation) accepts(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if v == ValidateNonEmpty {
		return true
	}
	amount, ok := parseBill(trimmed)
	return ok && amount >= 0 && amount <= calculator.MaxBillAmount
}
