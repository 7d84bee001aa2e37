package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/chartkit-org/chartkit/engine"
)

// ============================================================================
// PNG EXPORT — Raster rendering via go-chart
// ============================================================================
// Maps the aggregation (not the primitives) onto go-chart's own chart types.
// Used by the CLI --format png path; the HTML/SVG emitters stay dependency
// free.
// ============================================================================

const (
	pngWidth  = 1024
	pngHeight = 512
)

// PNG writes one chart as a PNG raster. Empty aggregations cannot be
// rasterized — go-chart needs at least one value — and return an error.
func PNG(cr engine.ChartRender, w io.Writer) error {
	if cr.Err != nil {
		return cr.Err
	}
	if len(cr.Aggregation) == 0 {
		return fmt.Errorf("no data to plot for chart %q", cr.Spec.Title)
	}

	switch cr.Spec.Kind {
	case engine.Pie:
		return pngPie(cr, w)
	case engine.Bar, engine.Column:
		return pngBars(cr, w)
	case engine.Line:
		return pngLine(cr, w)
	}
	return fmt.Errorf("%w: %q", engine.ErrUnsupportedChartKind, cr.Spec.Kind)
}

func chartValues(agg engine.AggregationResult) []chart.Value {
	values := make([]chart.Value, 0, len(agg))
	for _, p := range agg {
		values = append(values, chart.Value{Label: p.Label, Value: p.Value})
	}
	return values
}

func pngPie(cr engine.ChartRender, w io.Writer) error {
	if cr.Aggregation.Total() == 0 {
		return fmt.Errorf("pie chart %q has zero total", cr.Spec.Title)
	}
	graph := chart.PieChart{
		Title:  cr.Spec.Title,
		Width:  pngHeight,
		Height: pngHeight,
		Values: chartValues(cr.Aggregation),
	}
	return graph.Render(chart.PNG, w)
}

func pngBars(cr engine.ChartRender, w io.Writer) error {
	graph := chart.BarChart{
		Title:    cr.Spec.Title,
		Width:    pngWidth,
		Height:   pngHeight,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: chartValues(cr.Aggregation),
	}
	return graph.Render(chart.PNG, w)
}

func pngLine(cr engine.ChartRender, w io.Writer) error {
	xs := make([]float64, 0, len(cr.Aggregation))
	ys := make([]float64, 0, len(cr.Aggregation))
	for i, p := range cr.Aggregation {
		xs = append(xs, float64(i))
		ys = append(ys, p.Value)
	}
	if len(xs) == 1 {
		// go-chart needs at least two x values to build ranges.
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:  cr.Spec.Title,
		Width:  pngWidth,
		Height: pngHeight,
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return graph.Render(chart.PNG, w)
}
