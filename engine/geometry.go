package engine

import "fmt"

// ============================================================================
// GEOMETRY GENERATOR — AggregationResult → Draw Primitives
// ============================================================================
// Polymorphic over chart kind. Every kind shares the same contracts:
//   - color for index i = palette[i mod len(palette)]
//   - insertion order of the aggregation is drawing order
//   - degenerate inputs (empty, single label, all-zero) produce degenerate
//     geometry, never an error
// ============================================================================

// DefaultPalette is the color cycle used when a spec carries none.
// Referenced, never mutated.
var DefaultPalette = []string{
	"#4CAF50", "#FF9800", "#2196F3", "#F44336", "#9C27B0",
}

// ============================================================================
// PRIMITIVES — Closed tagged variant
// ============================================================================

// Primitive is one renderable shape with resolved coordinates. The set of
// implementations is closed: Wedge, Rect, Point, Segment. Primitives are
// constructed fresh per render call and carry no references into the engine.
type Primitive interface {
	primitive()
}

// Wedge is a pie slice spanning [Start, End) degrees, clockwise from the
// top of the circle.
type Wedge struct {
	Label  string  `json:"label"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// Span returns the angular size of the wedge in degrees.
func (w Wedge) Span() float64 { return w.End - w.Start }

// LargeArc returns the SVG large-arc-flag: 1 if the wedge spans more than a
// half circle, else 0.
func (w Wedge) LargeArc() int {
	if w.Span() > 180 {
		return 1
	}
	return 0
}

// Rect is a bar or column body.
type Rect struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// Point is a line-chart marker.
type Point struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// Segment connects two consecutive line-chart points.
type Segment struct {
	Label string  `json:"label"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"color"`
}

func (Wedge) primitive()   {}
func (Rect) primitive()    {}
func (Point) primitive()   {}
func (Segment) primitive() {}

// ============================================================================
// GEOMETRY — Reference dimensions
// ============================================================================

// Geometry holds the reference dimensions shapes are scaled into.
// Chart-space y grows downward.
type Geometry struct {
	PieRadius    float64 // wedge radius
	PieCX, PieCY float64 // circle center
	BarLength    float64 // full-scale extent along the value axis
	BarThickness float64 // bar/column cross-axis size
	BarGap       float64 // gap between adjacent bars/columns
	LineWidth    float64 // line-chart reference width
	LineHeight   float64 // line-chart reference height
	PointRadius  float64 // line-chart marker radius
}

// DefaultGeometry returns the standard reference dimensions.
func DefaultGeometry() Geometry {
	return Geometry{
		PieRadius:    100,
		PieCX:        110,
		PieCY:        110,
		BarLength:    320,
		BarThickness: 28,
		BarGap:       8,
		LineWidth:    320,
		LineHeight:   180,
		PointRadius:  4,
	}
}

// Generate converts an aggregation into draw primitives using the default
// geometry. See Geometry.Generate.
func Generate(agg AggregationResult, kind ChartKind, palette []string) ([]Primitive, error) {
	return DefaultGeometry().Generate(agg, kind, palette)
}

// Generate converts an aggregation into draw primitives for the given chart
// kind. An empty aggregation yields an empty list; an unknown kind is an
// ErrUnsupportedChartKind.
func (g Geometry) Generate(agg AggregationResult, kind ChartKind, palette []string) ([]Primitive, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChartKind, kind)
	}
	if len(agg) == 0 {
		return []Primitive{}, nil
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	switch kind {
	case Pie:
		return g.pie(agg, palette), nil
	case Bar:
		return g.bar(agg, palette), nil
	case Column:
		return g.column(agg, palette), nil
	default: // Line
		return g.line(agg, palette), nil
	}
}

// ============================================================================
// PIE — cumulative wedge angles
// ============================================================================

func (g Geometry) pie(agg AggregationResult, palette []string) []Primitive {
	total := agg.Total()
	if total == 0 {
		// Degenerate zero-size wedges instead of dividing by zero.
		total = 1
	}

	prims := make([]Primitive, 0, len(agg))
	cumulative := 0.0
	for i, p := range agg {
		span := p.Value / total * 360
		prims = append(prims, Wedge{
			Label:  p.Label,
			Start:  cumulative,
			End:    cumulative + span,
			CX:     g.PieCX,
			CY:     g.PieCY,
			Radius: g.PieRadius,
			Color:  cycleColor(palette, i),
		})
		cumulative += span
	}
	return prims
}

// ============================================================================
// BAR / COLUMN — same scaling, transposed axis
// ============================================================================

func (g Geometry) bar(agg AggregationResult, palette []string) []Primitive {
	max := safeMax(agg)
	pitch := g.BarThickness + g.BarGap

	prims := make([]Primitive, 0, len(agg))
	for i, p := range agg {
		prims = append(prims, Rect{
			Label:  p.Label,
			X:      0,
			Y:      float64(i) * pitch,
			Width:  p.Value / max * g.BarLength,
			Height: g.BarThickness,
			Color:  cycleColor(palette, i),
		})
	}
	return prims
}

func (g Geometry) column(agg AggregationResult, palette []string) []Primitive {
	max := safeMax(agg)
	pitch := g.BarThickness + g.BarGap

	prims := make([]Primitive, 0, len(agg))
	for i, p := range agg {
		extent := p.Value / max * g.BarLength
		prims = append(prims, Rect{
			Label:  p.Label,
			X:      float64(i) * pitch,
			Y:      g.BarLength - extent,
			Width:  g.BarThickness,
			Height: extent,
			Color:  cycleColor(palette, i),
		})
	}
	return prims
}

// ============================================================================
// LINE — one point per label, segments between consecutive points
// ============================================================================

func (g Geometry) line(agg AggregationResult, palette []string) []Primitive {
	max := safeMax(agg)
	n := len(agg)

	points := make([]Point, n)
	for i, p := range agg {
		fx := 0.5 // single label sits at the midpoint
		if n > 1 {
			fx = float64(i) / float64(n-1)
		}
		points[i] = Point{
			Label:  p.Label,
			X:      fx * g.LineWidth,
			Y:      (1 - p.Value/max) * g.LineHeight,
			Radius: g.PointRadius,
			Color:  cycleColor(palette, i),
		}
	}

	prims := make([]Primitive, 0, 2*n-1)
	for _, pt := range points {
		prims = append(prims, pt)
	}
	for i := 1; i < n; i++ {
		prims = append(prims, Segment{
			Label: points[i-1].Label,
			X1:    points[i-1].X,
			Y1:    points[i-1].Y,
			X2:    points[i].X,
			Y2:    points[i].Y,
			Color: points[i-1].Color,
		})
	}
	return prims
}

// ============================================================================
// SHARED HELPERS
// ============================================================================

// safeMax returns the aggregation maximum, substituting 1 when the maximum
// is 0 so all-zero values degrade to zero-size shapes instead of NaN.
func safeMax(agg AggregationResult) float64 {
	if max := agg.MaxValue(); max != 0 {
		return max
	}
	return 1
}

// cycleColor assigns palette[i mod len(palette)] — palettes shorter than
// the label count cycle.
func cycleColor(palette []string, i int) string {
	return palette[i%len(palette)]
}
