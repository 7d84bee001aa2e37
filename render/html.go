package render

import (
	"fmt"
	"strings"

	"github.com/chartkit-org/chartkit/engine"
	"github.com/chartkit-org/chartkit/schema"
)

// ============================================================================
// HTML EMITTER — Inline-styled div rendering
// ============================================================================
// Pie wedges become proportion rows, bars and columns become scaled divs,
// line points become a dot list. No SVG, no scripts — static markup only.
// ============================================================================

// HTML renders one chart's primitives as an inline-styled div block.
func HTML(cr engine.ChartRender, labels schema.LabelsConfig) string {
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

	switch cr.Spec.Kind {
	case engine.Pie:
		emitPieRows(&sb, cr, labels)
	case engine.Bar, engine.Column:
		emitBars(&sb, cr, labels)
	case engine.Line:
		emitDots(&sb, cr, labels)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

// emitPieRows renders each wedge as a proportion row: a colored div whose
// width percentage equals the wedge's share of the circle.
func emitPieRows(sb *strings.Builder, cr engine.ChartRender, labels schema.LabelsConfig) {
	for _, p := range cr.Primitives {
		w, ok := p.(engine.Wedge)
		if !ok {
			continue
		}
		percent := w.Span() / 360 * 100
		sb.WriteString(`<div style="margin:5px 0;">`)
		sb.WriteString(fmt.Sprintf(
			`<div style="width:%.1f%%; background:%s; color:white; padding:5px; border-radius:4px; font-size:%s;">%s (%.1f%%)</div>`,
			percent, w.Color, labels.LabelFontSize, escapeHTML(w.Label), percent))
		sb.WriteString(`</div>`)
	}
}

// emitBars renders rect extents as labelled divs. Bars and columns share
// the markup; only the container class and the extent axis differ.
func emitBars(sb *strings.Builder, cr engine.ChartRender, labels schema.LabelsConfig) {
	containerClass := "bar-container"
	if cr.Spec.Kind == engine.Column {
		containerClass = "column-container"
	}
	sb.WriteString(fmt.Sprintf(`<div class="%s">`, containerClass))
	for _, p := range cr.Primitives {
		r, ok := p.(engine.Rect)
		if !ok {
			continue
		}
		extent := r.Width
		if cr.Spec.Kind == engine.Column {
			extent = r.Height
		}
		value := valueFor(cr.Aggregation, r.Label)
		sb.WriteString(fmt.Sprintf(
			`<div class="%s"><div style="width:%.0fpx;background:%s;font-size:%s;">%s (%.1f)</div></div>`,
			cr.Spec.Kind, extent, r.Color, labels.LabelFontSize, escapeHTML(r.Label), value))
	}
	sb.WriteString(`</div>`)
}

// emitDots renders line-chart points as a labelled dot list, dot position
// following the point's normalized height.
func emitDots(sb *strings.Builder, cr engine.ChartRender, labels schema.LabelsConfig) {
	sb.WriteString(`<div style="margin-top:10px;">`)
	for _, p := range cr.Primitives {
		pt, ok := p.(engine.Point)
		if !ok {
			continue // segments have no div representation
		}
		value := valueFor(cr.Aggregation, pt.Label)
		size := pt.Radius * 2
		sb.WriteString(fmt.Sprintf(
			`<div style="display:flex;align-items:center;margin:4px 0;">`+
				`<div class="line-point" style="background:%s;width:%.0fpx;height:%.0fpx;"></div>`+
				`<span style="margin-left:5px;font-size:%s;">%s (%.1f)</span></div>`,
			pt.Color, size, size, labels.LabelFontSize, escapeHTML(pt.Label), value))
	}
	sb.WriteString(`</div>`)
}
