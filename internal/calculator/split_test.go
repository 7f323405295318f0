package calculator

import (
	"math"
	"testing"
)

func TestComputeTip(t *testing.T) {
	tests := []struct {
		name          string
		billAmount    float64
		tipPercentage int
		want          float64
	}{
		{name: "twenty percent of 100", billAmount: 100, tipPercentage: 20, want: 20},
		{name: "zero percent", billAmount: 50, tipPercentage: 0, want: 0},
		{name: "fractional bill", billAmount: 33.5, tipPercentage: 10, want: 3.35},
		{name: "full slider", billAmount: 80, tipPercentage: 100, want: 80},
		{name: "percentage above 100 is not rejected", billAmount: 10, tipPercentage: 150, want: 15},
		{name: "bill of exactly 1 gets no tip", billAmount: 1, tipPercentage: 50, want: 0},
		{name: "small bill gets no tip", billAmount: 0.5, tipPercentage: 20, want: 0},
		{name: "zero bill", billAmount: 0, tipPercentage: 20, want: 0},
		{name: "negative bill", billAmount: -40, tipPercentage: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTip(tt.billAmount, tt.tipPercentage)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("ComputeTip(%v, %d) = %v, want %v", tt.billAmount, tt.tipPercentage, got, tt.want)
			}
		})
	}
}

func TestComputeTip_NoTipAtOrBelowOne(t *testing.T) {
	for _, bill := range []float64{1, 0.99, 0.01, 0, -1, -1000} {
		for _, pct := range []int{0, 1, 15, 20, 100, 250} {
			if got := ComputeTip(bill, pct); got != 0 {
				t.Errorf("ComputeTip(%v, %d) = %v, want 0", bill, pct, got)
			}
		}
	}
}

func TestComputeTotalPerPerson(t *testing.T) {
	tests := []struct {
		name          string
		billAmount    float64
		splitBy       int
		tipPercentage int
		want          float64
	}{
		{name: "one person with tip", billAmount: 100, splitBy: 1, tipPercentage: 20, want: 120},
		{name: "four people with tip", billAmount: 100, splitBy: 4, tipPercentage: 20, want: 30},
		{name: "three people no tip", billAmount: 90, splitBy: 3, tipPercentage: 0, want: 30},
		{name: "small bill is still split", billAmount: 0.8, splitBy: 2, tipPercentage: 20, want: 0.4},
		{name: "zero bill", billAmount: 0, splitBy: 5, tipPercentage: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotalPerPerson(tt.billAmount, tt.splitBy, tt.tipPercentage)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("ComputeTotalPerPerson(%v, %d, %d) = %v, want %v",
					tt.billAmount, tt.splitBy, tt.tipPercentage, got, tt.want)
			}
		})
	}
}

func TestComputeTotalPerPerson_MatchesDefinition(t *testing.T) {
	for _, bill := range []float64{1.01, 12.5, 100, 987.65} {
		for splitBy := 1; splitBy <= 6; splitBy++ {
			for _, pct := range []int{0, 10, 18, 20, 25, 100} {
				want := (ComputeTip(bill, pct) + bill) / float64(splitBy)
				if got := ComputeTotalPerPerson(bill, splitBy, pct); got != want {
					t.Errorf("ComputeTotalPerPerson(%v, %d, %d) = %v, want %v", bill, splitBy, pct, got, want)
				}
			}
		}
	}
}

func TestCalculations_AreDeterministic(t *testing.T) {
	first := ComputeTotalPerPerson(73.4, 3, 17)
	firstTip := ComputeTip(73.4, 17)
	for i := 0; i < 100; i++ {
		if got := ComputeTotalPerPerson(73.4, 3, 17); got != first {
			t.Fatalf("call %d: ComputeTotalPerPerson = %v, want %v", i, got, first)
		}
		if got := ComputeTip(73.4, 17); got != firstTip {
			t.Fatalf("call %d: ComputeTip = %v, want %v", i, got, firstTip)
		}
	}
}

func TestTipPercent(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
	}{
		{0, 0},
		{0.2, 20},
		{0.555, 56},
		{0.994, 99},
		{0.996, 100},
		{1, 100},
	}

	for _, tt := range tests {
		if got := TipPercent(tt.fraction); got != tt.want {
			t.Errorf("TipPercent(%v) = %d, want %d", tt.fraction, got, tt.want)
		}
	}
}

func TestCalculations_ExtremeValues(t *testing.T) {
	tests := []struct {
		name       string
		billAmount float64
		splitBy    int
		pct        int
		wantFinite bool
	}{
		{name: "largest safe bill at full tip", billAmount: MaxBillAmount, splitBy: 1, pct: 100, wantFinite: true},
		{name: "largest float without tip", billAmount: math.MaxFloat64, splitBy: 1, pct: 0, wantFinite: true},
		{name: "huge bill split many ways", billAmount: 1e300, splitBy: math.MaxInt32, pct: 20, wantFinite: true},
		{name: "max int32 percentage", billAmount: 100, splitBy: 1, pct: math.MaxInt32, wantFinite: true},
		{name: "huge bill at full tip overflows", billAmount: 1e308, splitBy: 1, pct: 100, wantFinite: false},
		{name: "largest float at small tip overflows", billAmount: math.MaxFloat64, splitBy: 4, pct: 1, wantFinite: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := ComputeTip(tt.billAmount, tt.pct)
			total := ComputeTotalPerPerson(tt.billAmount, tt.splitBy, tt.pct)
			if got := Finite(tip, total); got != tt.wantFinite {
				t.Errorf("Finite(%v, %v) = %v, want %v", tip, total, got, tt.wantFinite)
			}
		})
	}
}

func TestComputeTip_MaxPercent(t *testing.T) {
	if got := ComputeTip(100, math.MaxInt32); got != math.MaxInt32 {
		t.Errorf("ComputeTip(100, MaxInt32) = %v, want %d", got, math.MaxInt32)
	}
}

func TestFinite(t *testing.T) {
	if !Finite() {
		t.Error("Finite() = false, want true")
	}
	if !Finite(0, -1, math.MaxFloat64) {
		t.Error("Finite on ordinary values = false, want true")
	}
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if Finite(1, v) {
			t.Errorf("Finite(1, %v) = true, want false", v)
		}
	}
}
