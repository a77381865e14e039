package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"housing-market-analysis/models"
	"housing-market-analysis/utils"
)

// Canvas size is fixed; every run overwrites the previous PNGs.
const (
	canvasWidth  = 10 * vg.Inch
	canvasHeight = 6 * vg.Inch
)

var (
	trendColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	scatterColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// Renderer draws the two analysis charts into the output directory.
type Renderer struct {
	logger *utils.Logger
	outDir string
}

// NewRenderer creates a Renderer that writes PNGs under outDir, creating the
// directory if absent.
func NewRenderer(outDir string, logger *utils.Logger) (*Renderer, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("charts: create output dir: %w", err)
	}
	return &Renderer{logger: logger, outDir: outDir}, nil
}

// PriceTrend renders a line chart of mean list price by sale year, one value
// label per point, and saves it as a PNG under the output directory.
func (r *Renderer) PriceTrend(rows []models.AggregateRow, filename string) error {
	p := plot.New()
	p.Title.Text = "Average List Price by Sale Year"
	p.X.Label.Text = "Sale Year"
	p.Y.Label.Text = "Average List Price"
	p.Y.Tick.Marker = currencyTicker{}
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(rows))
	labels := make([]string, len(rows))
	ticks := make([]plot.Tick, len(rows))
	for i, row := range rows {
		xys[i] = plotter.XY{X: float64(row.Year), Y: row.AvgPrice}
		labels[i] = utils.FormatCurrency(row.AvgPrice)
		ticks[i] = plot.Tick{Value: float64(row.Year), Label: fmt.Sprintf("%d", row.Year)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("charts: price trend line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = trendColor

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("charts: price trend points: %w", err)
	}
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Color = trendColor

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("charts: price trend labels: %w", err)
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].XAlign = text.XCenter
		valueLabels.TextStyle[i].YAlign = text.YBottom
		valueLabels.TextStyle[i].Font.Size = vg.Points(9)
	}

	p.Add(line, points, valueLabels)
	return r.save(p, filename)
}

// PriceVsSqft renders a scatter of list price against living area and saves
// it as a PNG under the output directory.
func (r *Renderer) PriceVsSqft(listings []*models.Listing, filename string) error {
	p := plot.New()
	p.Title.Text = "List Price vs Square Footage"
	p.X.Label.Text = "Square Feet"
	p.Y.Label.Text = "List Price"
	p.X.Tick.Marker = thousandsTicker{}
	p.Y.Tick.Marker = currencyTicker{}
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(listings))
	for i, l := range listings {
		xys[i] = plotter.XY{X: l.Sqft, Y: l.ListPrice}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("charts: price vs sqft scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = scatterColor

	p.Add(scatter)
	return r.save(p, filename)
}

func (r *Renderer) save(p *plot.Plot, filename string) error {
	path := filepath.Join(r.outDir, filename)
	if err := p.Save(canvasWidth, canvasHeight, path); err != nil {
		return fmt.Errorf("charts: save %s: %w", path, err)
	}
	r.logger.Info("[charts] Saved %s", path)
	return nil
}

// currencyTicker relabels the default ticks as whole-dollar amounts with
// comma grouping.
type currencyTicker struct{}

func (currencyTicker) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = utils.FormatCurrency(t.Value)
	}
	return ticks
}

// thousandsTicker relabels the default ticks with comma grouping.
type thousandsTicker struct{}

func (thousandsTicker) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = utils.FormatThousands(t.Value)
	}
	return ticks
}
