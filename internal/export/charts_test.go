package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantpitch/pitchdeck/internal/presentation"
	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

func TestRenderAll(t *testing.T) {
	outputDir := t.TempDir()

	cfg := &config.Config{
		Env:      "development",
		LogLevel: "error",
		Export: config.ExportConfig{
			OutputDir: outputDir,
		},
	}
	log := logger.New(cfg)

	seriesConfig := series.DefaultConfig()
	seriesConfig.HorizonDays = 48
	seriesConfig.Seed = 42

	content := presentation.DefaultContent()
	deck := presentation.NewBuilder(seriesConfig, &content, log).Build()

	renderer := NewRenderer(cfg, log)
	require.NoError(t, renderer.RenderAll(deck))

	for _, name := range []string{performanceChartFile, drawdownChartFile} {
		info, err := os.Stat(filepath.Join(outputDir, name))
		require.NoError(t, err, "chart %s must exist", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}
