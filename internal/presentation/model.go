package presentation

import (
	"fmt"
	"time"

	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

// Deck is the complete view model consumed by the presentation layer:
// static content plus one freshly generated dataset. Each viewer session
// gets its own Deck; nothing is shared or cached across sessions.
type Deck struct {
	Content      *Content             `json:"content"`
	Performance  *series.Result       `json:"performance"`
	Comparatives []series.Comparative `json:"comparatives"`
	MetricCards  []MetricCard         `json:"metric_cards"`
	Comparison   []ComparisonRow      `json:"comparison"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

// MetricCard is one of the headline metric tiles
type MetricCard struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Note  string `json:"note"`
}

// ComparisonRow is one row of the strategy-vs-traditional table
type ComparisonRow struct {
	Metric         string `json:"metric"`
	Algorithm      string `json:"algorithm"`
	Traditional    string `json:"traditional"`
	Outperformance string `json:"outperformance"`
}

// baseline holds the best-traditional-investment column of the comparison
// table. These figures describe the comparison universe, not the generated
// dataset, so they are fixed.
type baselineFigures struct {
	totalReturn  float64 // rupees
	annualReturn float64
	dailyAverage float64 // rupees
	winRate      float64
	sharpeRatio  float64
}

var baseline = baselineFigures{
	totalReturn:  18750,
	annualReturn: 0.281,
	dailyAverage: 390,
	winRate:      0.52,
	sharpeRatio:  0.9,
}

// Builder assembles Decks from the generator output and static content
type Builder struct {
	config  series.Config
	content *Content
	logger  *logger.Logger
}

// NewBuilder creates a new deck builder
func NewBuilder(config series.Config, content *Content, log *logger.Logger) *Builder {
	return &Builder{
		config:  config,
		content: content,
		logger:  log,
	}
}

// Build generates a dataset and assembles the full deck model. Generation
// is decorative: any failure is logged and replaced with the empty
// fallback dataset so the presentation always renders.
func (b *Builder) Build() *Deck {
	gen := series.NewGenerator(b.config)

	result, err := gen.Generate()
	if err != nil {
		b.logger.WithError(err).Warn("Series generation failed, using empty fallback")
		result = series.Empty(b.config)
	}

	comparatives, err := gen.Comparatives()
	if err != nil {
		comparatives = []series.Comparative{}
	}

	return &Deck{
		Content:      b.content,
		Performance:  result,
		Comparatives: comparatives,
		MetricCards:  buildMetricCards(result, comparatives),
		Comparison:   buildComparison(result, comparatives),
		GeneratedAt:  time.Now().UTC(),
	}
}

// buildMetricCards derives the four headline tiles
func buildMetricCards(result *series.Result, comparatives []series.Comparative) []MetricCard {
	s := result.Summary

	return []MetricCard{
		{
			Value: FormatMoney(algorithmFinal(comparatives)),
			Label: "Total Returns",
			Note:  "2.5 Months",
		},
		{
			Value: FormatPercent(s.WinRate),
			Label: "Win Rate",
			Note:  "Controlled Risk",
		},
		{
			Value: FormatPercent(s.AnnualizedReturn),
			Label: "Annualized Return",
			Note:  "Risk-Adjusted",
		},
		{
			Value: fmt.Sprintf("%.2f", s.SharpeRatio),
			Label: "Sharpe Ratio",
			Note:  "Exceptional",
		},
	}
}

// buildComparison derives the strategy-vs-traditional table
func buildComparison(result *series.Result, comparatives []series.Comparative) []ComparisonRow {
	s := result.Summary
	final := algorithmFinal(comparatives)

	periods := len(result.Points) - 1
	dailyAverage := 0.0
	if periods > 0 {
		dailyAverage = final / float64(periods)
	}

	return []ComparisonRow{
		{
			Metric:         "Total Returns",
			Algorithm:      FormatMoney(final),
			Traditional:    FormatMoney(baseline.totalReturn),
			Outperformance: formatRatio(final, baseline.totalReturn),
		},
		{
			Metric:         "Annualized Return",
			Algorithm:      FormatPercent(s.AnnualizedReturn),
			Traditional:    FormatPercent(baseline.annualReturn),
			Outperformance: formatRatio(s.AnnualizedReturn, baseline.annualReturn),
		},
		{
			Metric:         "Daily Average",
			Algorithm:      FormatMoney(dailyAverage),
			Traditional:    FormatMoney(baseline.dailyAverage),
			Outperformance: formatRatio(dailyAverage, baseline.dailyAverage),
		},
		{
			Metric:         "Win Rate",
			Algorithm:      FormatPercent(s.WinRate),
			Traditional:    FormatPercent(baseline.winRate),
			Outperformance: formatDelta(s.WinRate, baseline.winRate),
		},
		{
			Metric:         "Sharpe Ratio",
			Algorithm:      fmt.Sprintf("%.2f", s.SharpeRatio),
			Traditional:    fmt.Sprintf("%.1f", baseline.sharpeRatio),
			Outperformance: formatRatio(s.SharpeRatio, baseline.sharpeRatio),
		},
	}
}

// algorithmFinal returns the final rupee value of the strategy curve, or 0
// for the empty fallback.
func algorithmFinal(comparatives []series.Comparative) float64 {
	if len(comparatives) == 0 {
		return 0
	}
	return comparatives[0].Final
}

// formatRatio expresses how far value exceeds base, e.g. "+564%"
func formatRatio(value, base float64) string {
	if base == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%+.0f%%", (value/base-1)*100)
}

// formatDelta expresses an absolute percentage-point gap, e.g. "+20%"
func formatDelta(value, base float64) string {
	return fmt.Sprintf("%+.0f%%", (value-base)*100)
}
