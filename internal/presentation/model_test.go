package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{
		Env:      "development",
		LogLevel: "error",
	})
}

func testSeriesConfig(horizon int) series.Config {
	cfg := series.DefaultConfig()
	cfg.HorizonDays = horizon
	cfg.Seed = 42
	return cfg
}

func TestBuilder_Build(t *testing.T) {
	content := DefaultContent()
	builder := NewBuilder(testSeriesConfig(75), &content, testLogger())

	deck := builder.Build()
	require.NotNil(t, deck)

	assert.Equal(t, &content, deck.Content)
	assert.Len(t, deck.Performance.Points, 75)
	assert.Len(t, deck.Comparatives, 4)
	assert.Len(t, deck.MetricCards, 4)
	assert.Len(t, deck.Comparison, 5)
	assert.False(t, deck.GeneratedAt.IsZero())

	// Card values derive from the generated dataset
	assert.Equal(t, "Total Returns", deck.MetricCards[0].Label)
	assert.Equal(t, "₹124,477", deck.MetricCards[0].Value)

	// Table rows carry the fixed traditional baseline
	assert.Equal(t, "Total Returns", deck.Comparison[0].Metric)
	assert.Equal(t, "₹18,750", deck.Comparison[0].Traditional)
	assert.Equal(t, "+564%", deck.Comparison[0].Outperformance)
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	content := DefaultContent()

	first := NewBuilder(testSeriesConfig(75), &content, testLogger()).Build()
	second := NewBuilder(testSeriesConfig(75), &content, testLogger()).Build()

	assert.Equal(t, first.Performance, second.Performance)
	assert.Equal(t, first.MetricCards, second.MetricCards)
	assert.Equal(t, first.Comparison, second.Comparison)
}

func TestBuilder_Build_InvalidHorizonFallback(t *testing.T) {
	content := DefaultContent()
	builder := NewBuilder(testSeriesConfig(-1), &content, testLogger())

	// Generation failure must never propagate; the deck renders with the
	// empty fallback dataset instead.
	deck := builder.Build()
	require.NotNil(t, deck)

	assert.Empty(t, deck.Performance.Points)
	assert.Empty(t, deck.Comparatives)
	assert.Len(t, deck.MetricCards, 4)
	assert.Equal(t, "₹0", deck.MetricCards[0].Value)
	assert.Len(t, deck.Comparison, 5)
}
