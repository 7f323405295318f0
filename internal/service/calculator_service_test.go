package service

import (
	"context"
	"math"
	"net/http"
	"testing"

	"connectrpc.com/connect"

	"github.com/bauermateus/Bill-Splitter-App/pkg/api"
	"github.com/bauermateus/Bill-Splitter-App/pkg/api/apiconnect"
)

func TestCalculate(t *testing.T) {
	srv := setupTestServer(t, false)

	tests := []struct {
		name        string
		req         *api.CalculateRequest
		wantTip     float64
		wantTotal   float64
		wantDisplay string
	}{
		{
			name:        "four people twenty percent",
			req:         &api.CalculateRequest{BillAmount: 100, SplitCount: 4, TipPercent: 20},
			wantTip:     20,
			wantTotal:   30,
			wantDisplay: "$30.00",
		},
		{
			name:        "single person",
			req:         &api.CalculateRequest{BillAmount: 100, SplitCount: 1, TipPercent: 20},
			wantTip:     20,
			wantTotal:   120,
			wantDisplay: "$120.00",
		},
		{
			name:        "bill at or below one gets no tip",
			req:         &api.CalculateRequest{BillAmount: 1, SplitCount: 2, TipPercent: 50},
			wantTip:     0,
			wantTotal:   0.5,
			wantDisplay: "$0.50",
		},
		{
			name:        "max int32 percentage",
			req:         &api.CalculateRequest{BillAmount: 100, SplitCount: 1, TipPercent: math.MaxInt32},
			wantTip:     math.MaxInt32,
			wantTotal:   math.MaxInt32 + 100,
			wantDisplay: "$2147483747.00",
		},
		{
			name:        "trillion dollar bill",
			req:         &api.CalculateRequest{BillAmount: 1e12, SplitCount: 4, TipPercent: 20},
			wantTip:     2e11,
			wantTotal:   3e11,
			wantDisplay: "$300000000000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.calc.Calculate(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if resp.Msg.Tip != tt.wantTip {
				t.Errorf("Tip: expected %f, got %f", tt.wantTip, resp.Msg.Tip)
			}
			if resp.Msg.TotalPerPerson != tt.wantTotal {
				t.Errorf("TotalPerPerson: expected %f, got %f", tt.wantTotal, resp.Msg.TotalPerPerson)
			}
			if resp.Msg.TotalDisplay != tt.wantDisplay {
				t.Errorf("TotalDisplay: expected %q, got %q", tt.wantDisplay, resp.Msg.TotalDisplay)
			}
		})
	}
}

func TestCalculate_InvalidArguments(t *testing.T) {
	srv := setupTestServer(t, false)

	for _, req := range []*api.CalculateRequest{
		{BillAmount: 100, SplitCount: 0, TipPercent: 20},
		{BillAmount: 100, SplitCount: -2, TipPercent: 20},
		{BillAmount: 100, SplitCount: 2, TipPercent: -5},
		{BillAmount: 1e308, SplitCount: 1, TipPercent: 100},
		{BillAmount: math.MaxFloat64, SplitCount: 4, TipPercent: 1},
		{BillAmount: 1e300, SplitCount: 1, TipPercent: math.MaxInt32},
	} {
		_, err := srv.calc.Calculate(context.Background(), connect.NewRequest(req))
		assertCode(t, err, connect.CodeInvalidArgument)
	}
}

func TestCalculate_OptionalAuth(t *testing.T) {
	srv := setupTestServer(t, true)

	// No token is fine for the stateless calculator.
	if _, err := srv.calc.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{BillAmount: 10, SplitCount: 1})); err != nil {
		t.Fatalf("Calculate without token failed: %v", err)
	}

	withToken := apiconnect.NewCalculatorServiceClient(http.DefaultClient, srv.url, bearer(t, "alice"))
	if _, err := withToken.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{BillAmount: 10, SplitCount: 1})); err != nil {
		t.Fatalf("Calculate with token failed: %v", err)
	}
}
