package jobs

import (
	"context"
	"fmt"

	"github.com/quantpitch/pitchdeck/internal/export"
	"github.com/quantpitch/pitchdeck/internal/presentation"
	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

// ChartRefreshJob periodically re-exports the static charts so the hosted
// page rotates its sample dataset.
type ChartRefreshJob struct {
	config   *config.Config
	content  *presentation.Content
	renderer *export.Renderer
	logger   *logger.Logger
}

// NewChartRefreshJob creates a new chart refresh job
func NewChartRefreshJob(cfg *config.Config, content *presentation.Content, renderer *export.Renderer, log *logger.Logger) *ChartRefreshJob {
	return &ChartRefreshJob{
		config:   cfg,
		content:  content,
		renderer: renderer,
		logger:   log,
	}
}

// Name implements scheduler.Job
func (j *ChartRefreshJob) Name() string {
	return "chart_refresh"
}

// Schedule implements scheduler.Job
func (j *ChartRefreshJob) Schedule() string {
	return j.config.Export.RefreshSchedule
}

// Run generates a fresh dataset and rewrites the chart files
func (j *ChartRefreshJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.config.Export.RefreshTimeout)
	defer cancel()

	seriesConfig := series.DefaultConfig()
	seriesConfig.HorizonDays = j.config.Series.HorizonDays
	seriesConfig.PeriodsPerYear = j.config.Series.PeriodsPerYear
	seriesConfig.RiskFreeRate = j.config.Series.RiskFreeRate

	deck := presentation.NewBuilder(seriesConfig, j.content, j.logger).Build()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("chart refresh cancelled: %w", err)
	}

	return j.renderer.RenderAll(deck)
}
