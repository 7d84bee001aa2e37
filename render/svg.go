package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/chartkit-org/chartkit/engine"
	"github.com/chartkit-org/chartkit/schema"
)

// ============================================================================
// SVG EMITTER — Inline SVG geometry
// ============================================================================
// Wedges become arc paths, rects become <rect>, points become <circle>,
// segments become <line>. Coordinates come straight from the primitives.
// ============================================================================

const svgPad = 20

// SVG renders one chart's primitives as an inline <svg> block with a title.
func SVG(cr engine.ChartRender, labels schema.LabelsConfig) string {
	var sb strings.Builder
	sb.WriteString(`<div class="chart">`)
	sb.WriteString(fmt.Sprintf(`<h2 style="font-size:%s;">%s</h2>`,
		labels.TitleFontSize, escapeHTML(cr.Spec.Title)))

	if cr.Err != nil {
		sb.WriteString(fmt.Sprintf(`<div class="chart-error">Unable to render chart: %s</div>`,
			escapeHTML(cr.Err.Error())))
		sb.WriteString(`</div>`)
		return sb.String()
	}

	width, height := canvasSize(cr.Primitives)
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		width, height, width, height))

	for _, p := range cr.Primitives {
		switch v := p.(type) {
		case engine.Wedge:
			sb.WriteString(wedgePath(v))
		case engine.Rect:
			sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"><title>%s</title></rect>`,
				v.X, v.Y, v.Width, v.Height, v.Color, escapeHTML(v.Label)))
		case engine.Segment:
			sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"/>`,
				v.X1, v.Y1, v.X2, v.Y2, v.Color))
		case engine.Point:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"><title>%s</title></circle>`,
				v.X, v.Y, v.Radius, v.Color, escapeHTML(v.Label)))
		}
	}

	sb.WriteString(`</svg></div>`)
	return sb.String()
}

// wedgePath emits a pie slice as an SVG path. Angles are degrees clockwise
// from the top of the circle; the arc uses the wedge's large-arc flag.
func wedgePath(w engine.Wedge) string {
	if w.Span() <= 0 {
		// Zero-size wedge from a degenerate total — nothing to draw.
		return ""
	}
	if w.Span() >= 360 {
		// Arc endpoints would coincide; a full circle draws cleaner.
		return fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"><title>%s</title></circle>`,
			w.CX, w.CY, w.Radius, w.Color, escapeHTML(w.Label))
	}

	x1, y1 := arcPoint(w.CX, w.CY, w.Radius, w.Start)
	x2, y2 := arcPoint(w.CX, w.CY, w.Radius, w.End)
	return fmt.Sprintf(`<path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s"><title>%s</title></path>`,
		w.CX, w.CY, x1, y1, w.Radius, w.Radius, w.LargeArc(), x2, y2, w.Color, escapeHTML(w.Label))
}

// arcPoint converts a clockwise-from-top angle to a circle boundary point.
func arcPoint(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

// canvasSize derives the viewport from the primitives' extents.
func canvasSize(prims []engine.Primitive) (float64, float64) {
	var maxX, maxY float64
	grow := func(x, y float64) {
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, p := range prims {
		switch v := p.(type) {
		case engine.Wedge:
			grow(v.CX+v.Radius, v.CY+v.Radius)
		case engine.Rect:
			grow(v.X+v.Width, v.Y+v.Height)
		case engine.Segment:
			grow(v.X1, v.Y1)
			grow(v.X2, v.Y2)
		case engine.Point:
			grow(v.X+v.Radius, v.Y+v.Radius)
		}
	}
	return maxX + svgPad, maxY + svgPad
}
