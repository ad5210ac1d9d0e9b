package series

import (
	"errors"
	"time"
)

// ErrInvalidHorizon is returned when a non-positive horizon is requested.
// Callers rendering a presentation should substitute Empty() rather than
// surfacing the error to the viewer.
var ErrInvalidHorizon = errors.New("horizon days must be positive")

// Point is one sample of the paired cumulative return curves.
// Both curves are anchored at 0 on the first date.
type Point struct {
	Date      time.Time `json:"date"`
	Strategy  float64   `json:"strategy"`
	Benchmark float64   `json:"benchmark"`
}

// Summary holds the statistics derived from the strategy series.
// Conventions (fixed, see DESIGN.md):
//   - AnnualizedReturn = (1+TotalReturn)^(PeriodsPerYear/n) - 1, n = return periods
//   - Volatility = stdev(per-period returns) * sqrt(PeriodsPerYear)
//   - SharpeRatio = (AnnualizedReturn - RiskFreeRate) / Volatility; 0 when
//     Volatility is 0 (zero-variance sentinel, never a division by zero)
//   - MaxDrawdown = min over time of (value - running peak), always <= 0
type Summary struct {
	TotalReturn      float64 `json:"total_return"`
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	WinRate          float64 `json:"win_rate"`
	MaxDrawdown      float64 `json:"max_drawdown"`
}

// Config holds generation parameters
type Config struct {
	HorizonDays    int     `json:"horizon_days"`
	Seed           int64   `json:"seed"` // 0 = entropy-seeded
	PeriodsPerYear int     `json:"periods_per_year"`
	RiskFreeRate   float64 `json:"risk_free_rate"` // annual

	// Per-period return distributions. The strategy carries a higher drift
	// and lower volatility than the benchmark (hedging-dampened).
	StrategyDrift  float64 `json:"strategy_drift"`
	StrategyVol    float64 `json:"strategy_vol"`
	BenchmarkDrift float64 `json:"benchmark_drift"`
	BenchmarkVol   float64 `json:"benchmark_vol"`
}

// anchorDate is the first date of every generated index. The presentation
// covers a fixed Sep-Nov window; only the shape of the curves varies.
var anchorDate = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

// DefaultConfig returns the generation parameters used by the deck
func DefaultConfig() Config {
	return Config{
		HorizonDays:    75,
		Seed:           0,
		PeriodsPerYear: 252,
		RiskFreeRate:   0.03,
		StrategyDrift:  0.021,
		StrategyVol:    0.009,
		BenchmarkDrift: 0.0035,
		BenchmarkVol:   0.011,
	}
}

// Result is the full output of one generation run
type Result struct {
	Points  []Point `json:"points"`
	Summary Summary `json:"summary"`
	Config  Config  `json:"config"` // recorded for reproducibility
}

// Comparative is one named cumulative P&L curve for the comparison chart,
// sharing the date index of the main result.
type Comparative struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Final  float64   `json:"final"`
}

// Empty returns the safe fallback dataset: a zero-length series with zeroed
// statistics. The presentation layer renders it as an empty chart.
func Empty(cfg Config) *Result {
	return &Result{
		Points:  []Point{},
		Summary: Summary{},
		Config:  cfg,
	}
}
