package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantpitch/pitchdeck/internal/export"
	"github.com/quantpitch/pitchdeck/internal/presentation"
	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the deck's charts as static PNG files",
	Long: `Generates one dataset and writes the performance and drawdown
charts to the export directory.

Example:
  go run ./cmd/deck export
  go run ./cmd/deck export --out charts/`,
	RunE: runExport,
}

var exportDir string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDir, "out", "", "output directory (overrides EXPORT_OUTPUT_DIR)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if exportDir != "" {
		cfg.Export.OutputDir = exportDir
	}

	log := logger.New(cfg)

	content, err := presentation.LoadContent(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("load deck content: %w", err)
	}

	seriesConfig := series.DefaultConfig()
	seriesConfig.HorizonDays = cfg.Series.HorizonDays
	seriesConfig.Seed = cfg.Series.Seed
	seriesConfig.PeriodsPerYear = cfg.Series.PeriodsPerYear
	seriesConfig.RiskFreeRate = cfg.Series.RiskFreeRate

	deck := presentation.NewBuilder(seriesConfig, content, log).Build()

	renderer := export.NewRenderer(cfg, log)
	if err := renderer.RenderAll(deck); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	fmt.Printf("Charts written to %s\n", cfg.Export.OutputDir)
	return nil
}
