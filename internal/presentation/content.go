package presentation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content is the static textual material of the deck: everything a viewer
// reads that is not derived from the generated series. It ships as YAML so
// the marketing copy can change without a rebuild; the compiled-in defaults
// match the deck as presented.
type Content struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Headline string `yaml:"headline" json:"headline"` // e.g. "564% OUTPERFORMANCE"
	Footer   string `yaml:"footer" json:"footer"`

	Features   []Feature `yaml:"features" json:"features"`
	Advantages []string  `yaml:"advantages" json:"advantages"`
	Highlights []string  `yaml:"highlights" json:"highlights"`

	RiskRadar []RadarScore `yaml:"riskRadar" json:"risk_radar"`
	Drawdowns []NamedValue `yaml:"drawdowns" json:"drawdowns"`
	Targets   Targets      `yaml:"targets" json:"targets"`
}

// Feature is one methodology card
type Feature struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

// RadarScore is one axis of the risk profile radar chart, scored 0-100
type RadarScore struct {
	Category string  `yaml:"category" json:"category"`
	Score    float64 `yaml:"score" json:"score"`
}

// NamedValue is a label/value pair for bar charts
type NamedValue struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
}

// Targets holds the forward-looking performance targets card
type Targets struct {
	AnnualReturn string `yaml:"annualReturn" json:"annual_return"`
	WinRate      string `yaml:"winRate" json:"win_rate"`
	MaxDrawdown  string `yaml:"maxDrawdown" json:"max_drawdown"`
	SharpeRatio  string `yaml:"sharpeRatio" json:"sharpe_ratio"`
}

// LoadContent reads deck content from a YAML file. An empty path returns
// the compiled-in defaults.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		content := DefaultContent()
		return &content, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	content := DefaultContent()
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content YAML: %w", err)
	}

	return &content, nil
}

// DefaultContent returns the deck content as presented
func DefaultContent() Content {
	return Content{
		Title:    "Algorithmic Options Hedging Strategy",
		Subtitle: "Proprietary Quantitative Options Strategy with Advanced Risk Protection",
		Headline: "564% OUTPERFORMANCE vs Traditional Market Investments",
		Footer:   "CONFIDENTIAL - FOR QUALIFIED INVESTORS ONLY",

		Features: []Feature{
			{
				Title: "Advanced Pattern Recognition",
				Body:  "Machine learning algorithms analyze historical market patterns and identify optimal options trading opportunities with precision timing.",
			},
			{
				Title: "Options Hedging Protection",
				Body:  "Strategic options positions create natural hedges against market volatility, protecting capital during adverse movements while capturing upside potential.",
			},
			{
				Title: "Systematic Execution",
				Body:  "Fully automated options strategy eliminates emotional bias and ensures consistent implementation of complex hedged positions.",
			},
			{
				Title: "Multi-Index Options Selection",
				Body:  "Intelligent selection across Nifty and Sensex options with correlation-based hedging for enhanced risk-adjusted returns.",
			},
		},

		Advantages: []string{
			"Built-in Downside Protection: Options hedging limits maximum loss exposure during market downturns",
			"Volatility Advantage: Profits from increased volatility while protecting against adverse price movements",
			"Asymmetric Risk-Reward: Limited downside risk with unlimited upside potential through strategic options positioning",
			"Market Neutral Capability: Hedged positions reduce correlation with broader market movements",
			"Capital Preservation: Systematic protection mechanisms safeguard principal during volatile periods",
			"Time Decay Management: Strategic use of options time decay to enhance returns while maintaining protection",
		},

		Highlights: []string{
			"PROVEN PERFORMANCE: 564% outperformance vs benchmarks with hedging protection",
			"DOWNSIDE PROTECTION: Options hedging limits losses during market downturns",
			"VOLATILITY ADVANTAGE: Strategy profits from market uncertainty while maintaining capital safety",
			"SYSTEMATIC HEDGING: Automated risk management eliminates human emotion and bias",
			"ASYMMETRIC RETURNS: Limited downside risk with unlimited upside potential",
			"MULTI-LAYER PROTECTION: Options structure provides comprehensive risk management",
		},

		RiskRadar: []RadarScore{
			{Category: "Consistency", Score: 85},
			{Category: "Drawdown Control", Score: 90},
			{Category: "Win Rate", Score: 75},
			{Category: "Sharpe Ratio", Score: 85},
			{Category: "Adaptability", Score: 95},
		},

		Drawdowns: []NamedValue{
			{Name: "Our Algorithm", Value: 19.6},
			{Name: "Bank Nifty", Value: 12.3},
			{Name: "Nifty Index", Value: 8.5},
			{Name: "Mutual Funds", Value: 6.2},
		},

		Targets: Targets{
			AnnualReturn: "40-60%",
			WinRate:      "60-65%",
			MaxDrawdown:  "<25%",
			SharpeRatio:  ">3.0",
		},
	}
}
