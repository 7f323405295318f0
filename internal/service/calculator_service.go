package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/bauermateus/Bill-Splitter-App/internal/calculator"
	"github.com/bauermateus/Bill-Splitter-App/internal/format"
	"github.com/bauermateus/Bill-Splitter-App/internal/metrics"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api/apiconnect"
)

// Ensure CalculatorService implements the Connect handler interface
var _ apiconnect.CalculatorServiceHandler = (*CalculatorService)(nil)

// CalculatorService implements the stateless CalculatorService.
type CalculatorService struct {
	metrics *metrics.Metrics
}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService(m *metrics.Metrics) *CalculatorService {
	return &CalculatorService{metrics: m}
}

// Calculate handles a one-off tip and per-person calculation.
func (s *CalculatorService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	msg := req.Msg
	if msg.SplitCount < 1 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("split_count must be at least 1, got %d", msg.SplitCount))
	}
	if msg.TipPercent < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("tip_percent must not be negative, got %d", msg.TipPercent))
	}

	tip := calculator.ComputeTip(msg.BillAmount, msg.TipPercent)
	total := calculator.ComputeTotalPerPerson(msg.BillAmount, msg.SplitCount, msg.TipPercent)
	if !calculator.Finite(tip, total) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_amount %g at tip_percent %d overflows", msg.BillAmount, msg.TipPercent))
	}
	s.metrics.ObserveCalculation()

	slog.Debug("Calculated split",
		"bill_amount", msg.BillAmount,
		"split_count", msg.SplitCount,
		"tip_percent", msg.TipPercent,
		"tip", tip,
		"total_per_person", total,
	)

	return connect.NewResponse(&api.CalculateResponse{
		Tip:            tip,
		TotalPerPerson: total,
		TipDisplay:     format.Currency(tip),
		TotalDisplay:   format.Currency(total),
	}), nil
}
