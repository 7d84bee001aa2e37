// Package chartkit turns tabular data plus a declarative chart layout into
// rendered report output.
//
// Usage:
//
//	import "github.com/chartkit-org/chartkit/engine"
//
//	view := engine.Records(records)
//	results := engine.Render(view, specs,
//	    engine.WithPalette([]string{"#4CAF50", "#FF9800"}),
//	)
//
// The engine groups records by a label field, reduces each group via a named
// calculation (count, sum, average, min, max), and converts the resulting
// label→value pairs into renderable geometry: pie wedges, bar and column
// rectangles, line-chart points and segments.
//
// Markup emission is handled separately by the render package. The engine
// never assumes a visual representation — it produces draw primitives only,
// and all computation is local and synchronous.
package chartkit
