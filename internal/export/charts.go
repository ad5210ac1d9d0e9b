package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/quantpitch/pitchdeck/internal/presentation"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

const (
	performanceChartFile = "performance.png"
	drawdownChartFile    = "drawdown.png"
)

// curveColors matches the deck's palette, strategy first
var curveColors = []color.RGBA{
	{R: 0x38, G: 0xa1, B: 0x69, A: 255},
	{R: 0xed, G: 0x89, B: 0x36, A: 255},
	{R: 0x31, G: 0x82, B: 0xce, A: 255},
	{R: 0x9f, G: 0x7a, B: 0xea, A: 255},
}

// Renderer writes the deck's charts as static PNG files for embedding in
// the hosted marketing page.
type Renderer struct {
	config *config.Config
	logger *logger.Logger
}

// NewRenderer creates a new chart renderer
func NewRenderer(cfg *config.Config, log *logger.Logger) *Renderer {
	return &Renderer{
		config: cfg,
		logger: log,
	}
}

// RenderAll writes every chart of the deck to the output directory
func (r *Renderer) RenderAll(deck *presentation.Deck) error {
	if err := os.MkdirAll(r.config.Export.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := r.renderPerformance(deck); err != nil {
		return fmt.Errorf("failed to render performance chart: %w", err)
	}

	if err := r.renderDrawdowns(deck); err != nil {
		return fmt.Errorf("failed to render drawdown chart: %w", err)
	}

	r.logger.WithField("dir", r.config.Export.OutputDir).Info("Charts exported")
	return nil
}

// renderPerformance draws the cumulative comparison line chart
func (r *Renderer) renderPerformance(deck *presentation.Deck) error {
	p := plot.New()
	p.Title.Text = "Cumulative Performance Comparison"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Cumulative Returns"
	p.X.Tick.Marker = monthlyTicks{}
	p.Legend.Top = true

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = dashes
	grid.Vertical.Dashes = dashes
	p.Add(grid)

	points := deck.Performance.Points
	for i, comparative := range deck.Comparatives {
		plotterData := make(plotter.XYs, 0, len(comparative.Values))
		for j, value := range comparative.Values {
			if j >= len(points) {
				break
			}
			plotterData = append(plotterData, plotter.XY{
				X: timeToFloat(points[j].Date),
				Y: value,
			})
		}

		line, err := plotter.NewLine(plotterData)
		if err != nil {
			return fmt.Errorf("failed to create line for %s: %w", comparative.Name, err)
		}
		line.LineStyle.Color = curveColors[i%len(curveColors)]
		if i > 0 {
			line.LineStyle.Dashes = dashes
		}
		p.Add(line)
		p.Legend.Add(comparative.Name, line)
	}

	path := filepath.Join(r.config.Export.OutputDir, performanceChartFile)
	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// renderDrawdowns draws the max drawdown comparison bar chart
func (r *Renderer) renderDrawdowns(deck *presentation.Deck) error {
	drawdowns := deck.Content.Drawdowns

	values := make(plotter.Values, len(drawdowns))
	labels := make([]string, len(drawdowns))
	for i, d := range drawdowns {
		values[i] = d.Value
		labels[i] = d.Name
	}

	p := plot.New()
	p.Title.Text = "Maximum Drawdown Comparison"
	p.Y.Label.Text = "Drawdown (%)"
	p.NominalX(labels...)

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = curveColors[0]
	p.Add(bars)

	path := filepath.Join(r.config.Export.OutputDir, drawdownChartFile)
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// monthlyTicks labels the X axis with month boundaries
type monthlyTicks struct{}

// Ticks implements plot.Ticker
func (monthlyTicks) Ticks(min, max float64) []plot.Tick {
	timeMin := time.Unix(int64(min), 0).UTC()
	timeMax := time.Unix(int64(max), 0).UTC()

	ticks := []plot.Tick{}
	t := time.Date(timeMin.Year(), timeMin.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !t.After(timeMax) {
		if !t.Before(timeMin) {
			ticks = append(ticks, plot.Tick{
				Value: timeToFloat(t),
				Label: t.Format("Jan 2006"),
			})
		}
		t = t.AddDate(0, 1, 0)
	}

	return ticks
}

func timeToFloat(t time.Time) float64 {
	return float64(t.Unix())
}
