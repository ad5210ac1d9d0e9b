package series

import (
	"math"
	"testing"
)

func TestWinRate(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"empty", []float64{}, 0},
		{"all wins", []float64{0.01, 0.02, 0.03}, 1.0},
		{"all losses", []float64{-0.01, -0.02}, 0},
		{"mixed", []float64{0.01, -0.02, 0.03, -0.04}, 0.5},
		{"zero is not a win", []float64{0, 0, 0.01}, 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := winRate(tt.returns)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("winRate() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("winRate() = %v, outside [0, 1]", got)
			}
		})
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", []float64{}, 0},
		{"non-decreasing", []float64{0, 0.1, 0.1, 0.3}, 0},
		{"single dip", []float64{0, 0.2, 0.1, 0.4}, -0.1},
		{"deepest dip wins", []float64{0, 0.5, 0.2, 0.6, 0.45}, -0.3},
		{"all falling", []float64{0, -0.1, -0.3}, -0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maxDrawdown(tt.values)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("maxDrawdown() = %v, want %v", got, tt.want)
			}
			if got > 0 {
				t.Errorf("maxDrawdown() = %v, must be <= 0", got)
			}
		})
	}
}

func TestSharpe_ZeroVariance(t *testing.T) {
	cfg := DefaultConfig()

	// All returns equal: zero variance must yield the 0 sentinel,
	// not a division-by-zero panic or NaN.
	returns := []float64{0.01, 0.01, 0.01, 0.01}
	got := sharpe(0.04, returns, cfg)
	if got != 0 {
		t.Errorf("sharpe() with zero variance = %v, want 0", got)
	}
}

func TestAnnualize(t *testing.T) {
	// (1+r)^(252/n) - 1 compounding convention
	got := annualize(0.10, 252, 252)
	if math.Abs(got-0.10) > 1e-12 {
		t.Errorf("annualize over a full year = %v, want 0.10", got)
	}

	got = annualize(0.10, 126, 252)
	want := math.Pow(1.10, 2) - 1
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("annualize over half a year = %v, want %v", got, want)
	}

	if annualize(0.10, 0, 252) != 0 {
		t.Error("annualize with zero periods must return 0")
	}
}

func TestSummarize(t *testing.T) {
	cfg := DefaultConfig()
	returns := []float64{0.02, -0.01, 0.03}
	values := []float64{0, 0.02, 0.01, 0.04}

	s := summarize(returns, values, cfg)

	if s.TotalReturn != 0.04 {
		t.Errorf("TotalReturn = %v, want 0.04", s.TotalReturn)
	}
	if math.Abs(s.WinRate-2.0/3.0) > 1e-12 {
		t.Errorf("WinRate = %v, want 2/3", s.WinRate)
	}
	if math.Abs(s.MaxDrawdown-(-0.01)) > 1e-12 {
		t.Errorf("MaxDrawdown = %v, want -0.01", s.MaxDrawdown)
	}
	if s.Volatility <= 0 {
		t.Errorf("Volatility = %v, want > 0", s.Volatility)
	}
}
