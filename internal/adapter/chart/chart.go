// Package chart renders the per-dataset PNG charts with gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	red       = color.RGBA{R: 255, A: 255}
	lineBlue  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	lineOrng  = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	gridColor = color.NRGBA{R: 176, G: 176, B: 176, A: 77} // ~30% opacity

	// districtPalette colors exam bars in order, cycling when there are more
	// districts than colors.
	districtPalette = []color.Color{
		color.RGBA{B: 255, A: 255},               // blue
		color.RGBA{G: 128, A: 255},               // green
		color.RGBA{R: 255, A: 255},               // red
		color.RGBA{R: 128, B: 128, A: 255},       // purple
		color.RGBA{R: 255, G: 165, A: 255},       // orange
		color.RGBA{R: 165, G: 42, B: 42, A: 255}, // brown
	}
)

// Renderer draws charts at a fixed page size.
// It implements pipeline.ChartRenderer.
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// NewRenderer creates a Renderer producing images of widthIn x heightIn inches.
func NewRenderer(widthIn, heightIn float64) *Renderer {
	return &Renderer{
		width:  vg.Length(widthIn) * vg.Inch,
		height: vg.Length(heightIn) * vg.Inch,
	}
}

// DistrictColor returns the bar color for the i-th district.
func DistrictColor(i int) color.Color {
	return districtPalette[i%len(districtPalette)]
}

// RenderEarthquakes draws a bar per year with the number of earthquakes that
// year. Years are nominal labels so they print without digit grouping.
func (r *Renderer) RenderEarthquakes(path string, s domain.EarthquakeSummary) error {
	p := newPlot("Earthquakes by Year in Nepal", "Year", "Number of Earthquakes")

	values := make(plotter.Values, len(s.ByYear))
	labels := make([]string, len(s.ByYear))
	for i, yc := range s.ByYear {
		values[i] = float64(yc.Count)
		labels[i] = strconv.Itoa(yc.Year)
	}

	bars, err := plotter.NewBarChart(values, r.barWidth(len(values)))
	if err != nil {
		return fmt.Errorf("earthquake chart: %w", err)
	}
	bars.Color = red
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	return r.save(p, path)
}

// RenderTemperatures draws one line per city across the months in input
// order, with distinct markers, a legend and a light grid.
func (r *Renderer) RenderTemperatures(path string, records []domain.TemperatureRecord) error {
	p := newPlot("Monthly Temperature in Nepal", "Month", "Temperature (°C)")
	p.Legend.Top = true

	months := make([]string, len(records))
	kathmandu := make(plotter.XYs, len(records))
	pokhara := make(plotter.XYs, len(records))
	for i, rec := range records {
		months[i] = rec.Month
		kathmandu[i] = plotter.XY{X: float64(i), Y: rec.Kathmandu}
		pokhara[i] = plotter.XY{X: float64(i), Y: rec.Pokhara}
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	series := []struct {
		name  string
		xys   plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
	}{
		{domain.CityKathmandu, kathmandu, lineBlue, draw.CircleGlyph{}},
		{domain.CityPokhara, pokhara, lineOrng, draw.BoxGlyph{}},
	}
	for _, s := range series {
		line, points, err := plotter.NewLinePoints(s.xys)
		if err != nil {
			return fmt.Errorf("temperature chart %s: %w", s.name, err)
		}
		line.Color = s.color
		line.Width = vg.Points(2)
		points.GlyphStyle.Shape = s.shape
		points.GlyphStyle.Color = s.color
		points.GlyphStyle.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(s.name, line, points)
	}

	p.NominalX(months...)
	return r.save(p, path)
}

// RenderExams draws one colored bar per district with its mean pass
// percentage printed above the bar.
func (r *Renderer) RenderExams(path string, s domain.ExamSummary) error {
	p := newPlot("Pass Percentage by District in Nepal", "District", "Pass Percentage (%)")

	names := make([]string, len(s.Districts))
	points := make(plotter.XYs, len(s.Districts))
	texts := make([]string, len(s.Districts))
	width := r.barWidth(len(s.Districts))
	top := 0.0

	for i, d := range s.Districts {
		bar, err := plotter.NewBarChart(plotter.Values{d.PassPercent}, width)
		if err != nil {
			return fmt.Errorf("exam chart %s: %w", d.District, err)
		}
		bar.XMin = float64(i)
		bar.Color = DistrictColor(i)
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)

		names[i] = d.District
		points[i] = plotter.XY{X: float64(i), Y: d.PassPercent}
		texts[i] = domain.FormatFixed(d.PassPercent, domain.PercentPlaces) + "%"
		top = max(top, d.PassPercent)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
	if err != nil {
		return fmt.Errorf("exam chart labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
	}
	labels.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(labels)

	p.NominalX(names...)
	p.Y.Min = 0
	if top > 0 {
		p.Y.Max = top * 1.1
	}

	return r.save(p, path)
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// barWidth spreads n bars over roughly 70% of the drawable width.
func (r *Renderer) barWidth(n int) vg.Length {
	if n < 1 {
		n = 1
	}
	w := (r.width - 2*vg.Inch) * 0.7 / vg.Length(n)
	return min(max(w, vg.Points(4)), vg.Points(80))
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("save chart %s: %w: %w", path, domain.ErrOutputWrite, err)
	}
	return nil
}
