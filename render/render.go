// Package render converts engine draw primitives into concrete markup:
// inline-styled HTML divs, inline SVG, full report pages, and PNG rasters.
// The engine knows nothing about these representations.
package render

import (
	"strings"

	"github.com/chartkit-org/chartkit/engine"
	"github.com/chartkit-org/chartkit/schema"
)

// ============================================================================
// RENDER — Shared emitter plumbing
// ============================================================================

// Emitter names a markup flavor for chart bodies.
type Emitter string

const (
	EmitterHTML Emitter = "html" // inline-styled divs
	EmitterSVG  Emitter = "svg"  // inline SVG geometry
)

// Block pairs one chart's engine output with its presentation settings.
type Block struct {
	Render engine.ChartRender
	Labels schema.LabelsConfig
}

// escapeHTML escapes text for embedding in markup.
func escapeHTML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}

// valueFor looks up a label's aggregated value for annotation text.
func valueFor(agg engine.AggregationResult, label string) float64 {
	for _, p := range agg {
		if p.Label == label {
			return p.Value
		}
	}
	return 0
}
