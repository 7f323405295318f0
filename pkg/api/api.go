// Package api defines the messages of the billsplit.v1 RPC services.
// Messages travel as JSON; field names follow the snake_case wire names.
package api

// CalculateRequest asks for a one-off tip calculation.
type CalculateRequest struct {
	BillAmount float64 `json:"bill_amount"`
	SplitCount int     `json:"split_count"`
	TipPercent int     `json:"tip_percent"`
}

// CalculateResponse carries the computed amounts, raw and formatted.
type CalculateResponse struct {
	Tip            float64 `json:"tip"`
	TotalPerPerson float64 `json:"total_per_person"`
	TipDisplay     string  `json:"tip_display"`
	TotalDisplay   string  `json:"total_display"`
}

// FormSummary is the state of a server-held form.
type FormSummary struct {
	BillText       string  `json:"bill_text"`
	BillAmount     float64 `json:"bill_amount"`
	SplitCount     int     `json:"split_count"`
	TipFraction    float64 `json:"tip_fraction"`
	TipPercent     int     `json:"tip_percent"`
	Valid          bool    `json:"valid"`
	Tip            float64 `json:"tip"`
	TotalPerPerson float64 `json:"total_per_person"`
	TipDisplay     string  `json:"tip_display"`
	TotalDisplay   string  `json:"total_display"`
	PercentDisplay string  `json:"percent_display"`

	// Overflow is set when tip or total_per_person is too large to
	// represent. Both are then zero and their displays read "overflow".
	Overflow bool `json:"overflow,omitempty"`
}

type OpenFormRequest struct{}

type OpenFormResponse struct {
	FormID  string       `json:"form_id"`
	Summary *FormSummary `json:"summary"`
}

// FormRequest addresses a form by ID. It is the request of every procedure
// that takes no other argument.
type FormRequest struct {
	FormID string `json:"form_id"`
}

type FormResponse struct {
	Summary *FormSummary `json:"summary"`
}

type SetBillAmountRequest struct {
	FormID string `json:"form_id"`
	Text   string `json:"text"`
}

type SetTipFractionRequest struct {
	FormID   string  `json:"form_id"`
	Fraction float64 `json:"fraction"`
}

// SubmitResponse reports whether the bill entry was accepted and, if so,
// the trimmed value that was forwarded.
type SubmitResponse struct {
	Submitted bool         `json:"submitted"`
	Value     string       `json:"value,omitempty"`
	Summary   *FormSummary `json:"summary"`
}

type CloseFormResponse struct{}

// GetFormID returns the form ID, or "" for a nil message.
func (x *OpenFormResponse) GetFormID() string {
	if x == nil {
		return ""
	}
	return x.FormID
}

func (x *FormRequest) GetFormID() string {
	if x == nil {
		return ""
	}
	return x.FormID
}

func (x *SetBillAmountRequest) GetFormID() string {
	if x == nil {
		return ""
	}
	return x.FormID
}

func (x *SetTipFractionRequest) GetFormID() string {
	if x == nil {
		return ""
	}
	return x.FormID
}
