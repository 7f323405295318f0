package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/bauermateus/Bill-Splitter-App/internal/calculator"
	"github.com/bauermateus/Bill-Splitter-App/internal/format"
	"github.com/bauermateus/Bill-Splitter-App/internal/models"
	"github.com/bauermateus/Bill-Splitter-App/internal/storage"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api"
)

// toAPISummary converts a form snapshot to its wire form. JSON cannot carry
// non-finite numbers, so overflowed amounts are sent as zero and flagged.
func toAPISummary(s models.Summary) *api.FormSummary {
	out := &api.FormSummary{
		BillText:       s.BillText,
		BillAmount:     s.BillAmount,
		SplitCount:     s.SplitCount,
		TipFraction:    s.TipFraction,
		TipPercent:     s.TipPercent,
		Valid:          s.Valid,
		Tip:            s.Tip,
		TotalPerPerson: s.TotalPerPerson,
		TipDisplay:     format.Currency(s.Tip),
		TotalDisplay:   format.Currency(s.TotalPerPerson),
		PercentDisplay: format.Percent(s.TipPercent),
	}
	if !calculator.Finite(s.Tip, s.TotalPerPerson) {
		out.Tip, out.TotalPerPerson = 0, 0
		out.Overflow = true
	}
	return out
}

// storeError maps storage errors to Connect codes.
func storeError(err error) error {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrStoreClosed):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
