package render

import "strings"

// ============================================================================
// PAGE BUILDER — Whole-report HTML document
// ============================================================================

// pageCSS is the report stylesheet. Shared by both emitters.
const pageCSS = `body { font-family: Arial, sans-serif; padding: 20px; background: #f9f9f9; }
h1 { font-size: 28px; margin-bottom: 30px; }
h2 { font-size: 22px; margin-top: 40px; margin-bottom: 10px; }
.chart { background: white; border-radius: 8px; padding: 20px; margin-bottom: 40px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
.chart-error { color: #F44336; padding: 10px; border: 1px dashed #F44336; border-radius: 4px; }
.bar-container, .column-container { margin-top: 10px; }
.bar, .column { height: 30px; margin: 5px 0; background: #eee; position: relative; }
.bar div, .column div { height: 100%; text-align: right; padding-right: 8px; color: white; font-weight: bold; border-radius: 4px; display: flex; align-items: center; justify-content: flex-end; }
.line-point { display: inline-block; border-radius: 50%; margin-right: 5px; }`

// Page assembles the full report document, one chart block per entry, using
// the requested emitter. Failed charts render as placeholder blocks; the
// page itself always assembles.
func Page(blocks []Block, emitter Emitter) string {
	var sb strings.Builder
	sb.WriteString("<html><head><style>")
	sb.WriteString(pageCSS)
	sb.WriteString("</style></head><body>")
	sb.WriteString("<h1>Generated Report</h1>")

	for _, b := range blocks {
		switch emitter {
		case EmitterSVG:
			sb.WriteString(SVG(b.Render, b.Labels))
		default:
			sb.WriteString(HTML(b.Render, b.Labels))
		}
	}

	sb.WriteString("</body></html>")
	return sb.String()
}
