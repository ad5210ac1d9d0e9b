package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// summarize derives the deck's headline statistics from the strategy
// per-period returns and the cumulative value curve.
func summarize(returns []float64, values []float64, cfg Config) Summary {
	if len(returns) == 0 {
		return Summary{}
	}

	total := values[len(values)-1]

	return Summary{
		TotalReturn:      total,
		AnnualizedReturn: annualize(total, len(returns), cfg.PeriodsPerYear),
		Volatility:       annualizedVolatility(returns, cfg.PeriodsPerYear),
		SharpeRatio:      sharpe(total, returns, cfg),
		WinRate:          winRate(returns),
		MaxDrawdown:      maxDrawdown(values),
	}
}

// annualize converts a total return over n periods to an annual figure
// using the compounding convention (1+r)^(periodsPerYear/n) - 1.
func annualize(totalReturn float64, periods, periodsPerYear int) float64 {
	if periods == 0 {
		return 0
	}
	return math.Pow(1.0+totalReturn, float64(periodsPerYear)/float64(periods)) - 1.0
}

// annualizedVolatility is the per-period standard deviation scaled by
// sqrt(periodsPerYear).
func annualizedVolatility(returns []float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(float64(periodsPerYear))
}

// sharpe is the annualized excess return over annualized volatility.
// Zero variance yields 0 rather than a division by zero.
func sharpe(totalReturn float64, returns []float64, cfg Config) float64 {
	volatility := annualizedVolatility(returns, cfg.PeriodsPerYear)
	if volatility == 0 {
		return 0
	}
	annual := annualize(totalReturn, len(returns), cfg.PeriodsPerYear)
	return (annual - cfg.RiskFreeRate) / volatility
}

// winRate is the fraction of periods with a positive return, in [0, 1]
func winRate(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	wins := 0
	for _, r := range returns {
		if r > 0 {
			wins++
		}
	}

	return float64(wins) / float64(len(returns))
}

// maxDrawdown is the minimum over time of (value - running peak).
// Always <= 0; exactly 0 only for a non-decreasing series.
func maxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	peak := values[0]
	maxDD := 0.0

	for _, v := range values {
		if v > peak {
			peak = v
		}
		dd := v - peak
		if dd < maxDD {
			maxDD = dd
		}
	}

	return maxDD
}
