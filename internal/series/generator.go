package series

import (
	"math"
	"math/rand"
	"time"
)

// Generator produces the synthetic performance dataset behind the deck's
// charts. Each generation run is an independent pure computation; a fixed
// non-zero seed makes the output bit-identical across runs.
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a new generator
func NewGenerator(config Config) *Generator {
	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate produces the paired cumulative return curves plus summary
// statistics. HorizonDays <= 0 fails with ErrInvalidHorizon.
func (g *Generator) Generate() (*Result, error) {
	cfg := g.config
	if cfg.HorizonDays <= 0 {
		return nil, ErrInvalidHorizon
	}

	dates := businessDays(anchorDate, cfg.HorizonDays)

	// First point is the anchor; one draw per subsequent date.
	strategyReturns := make([]float64, cfg.HorizonDays-1)
	benchmarkReturns := make([]float64, cfg.HorizonDays-1)
	for i := range strategyReturns {
		strategyReturns[i] = cfg.StrategyDrift + cfg.StrategyVol*g.rng.NormFloat64()
		benchmarkReturns[i] = cfg.BenchmarkDrift + cfg.BenchmarkVol*g.rng.NormFloat64()
	}

	points := make([]Point, cfg.HorizonDays)
	points[0] = Point{Date: dates[0]}
	strategyCum := 0.0
	benchmarkCum := 0.0
	for i := 1; i < cfg.HorizonDays; i++ {
		strategyCum += strategyReturns[i-1]
		benchmarkCum += benchmarkReturns[i-1]
		points[i] = Point{
			Date:      dates[i],
			Strategy:  strategyCum,
			Benchmark: benchmarkCum,
		}
	}

	strategyValues := make([]float64, len(points))
	for i, p := range points {
		strategyValues[i] = p.Strategy
	}

	return &Result{
		Points:  points,
		Summary: summarize(strategyReturns, strategyValues, cfg),
		Config:  cfg,
	}, nil
}

// comparativeSpec describes one curve of the comparison chart: per-period
// P&L draws, rescaled so the curve ends exactly at Final.
type comparativeSpec struct {
	name  string
	drift float64
	vol   float64
	final float64
}

// comparativeSpecs mirrors the four curves of the deck's headline chart.
var comparativeSpecs = []comparativeSpec{
	{name: "Our Algorithm", drift: 2593, vol: 1500, final: 124477},
	{name: "Bank Nifty", drift: 390, vol: 600, final: 18750},
	{name: "Nifty Index", drift: 260, vol: 400, final: 12500},
	{name: "Mutual Funds", drift: 173, vol: 250, final: 8333},
}

// Comparatives produces the named cumulative P&L curves for the comparison
// chart, one value per date of the main series.
func (g *Generator) Comparatives() ([]Comparative, error) {
	cfg := g.config
	if cfg.HorizonDays <= 0 {
		return nil, ErrInvalidHorizon
	}

	output := make([]Comparative, len(comparativeSpecs))
	for i, spec := range comparativeSpecs {
		values := make([]float64, cfg.HorizonDays)
		cum := 0.0
		for j := range values {
			cum += spec.drift + spec.vol*g.rng.NormFloat64()
			values[j] = cum
		}
		rescale(values, spec.final)
		output[i] = Comparative{
			Name:   spec.name,
			Values: values,
			Final:  spec.final,
		}
	}

	return output, nil
}

// rescale scales values in place so the last element equals final. A
// near-zero endpoint would blow the scale factor up; in that degenerate
// case the curve is replaced with a linear ramp to final.
func rescale(values []float64, final float64) {
	last := values[len(values)-1]
	if math.Abs(last) < 1e-9 {
		step := final / float64(len(values))
		for i := range values {
			values[i] = step * float64(i+1)
		}
		return
	}
	factor := final / last
	for i := range values {
		values[i] *= factor
	}
}

// businessDays returns n consecutive weekdays starting at the first
// weekday on or after start.
func businessDays(start time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	d := start
	for len(dates) < n {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			dates = append(dates, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return dates
}
