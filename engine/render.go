package engine

// ============================================================================
// RENDERER — Dispatcher over chart specs
// ============================================================================
// Entry point: Render(view, specs, opts...)
//
// Pipeline per spec:
//   1. Apply the spec's filter → SubView
//   2. Aggregate by label field + calculation
//   3. Generate geometry for the chart kind
//
// A failing spec records its error on that chart's result and never aborts
// the remaining charts — the caller decides between a placeholder and a
// request-level failure.
// ============================================================================

// ChartRender is the engine output for one ChartSpec: the aggregation it was
// built from and the ordered draw primitives, or the error that stopped it.
type ChartRender struct {
	Spec        ChartSpec
	Aggregation AggregationResult
	Primitives  []Primitive
	Err         error
}

// Render runs every spec against the view independently. The returned slice
// is in spec order and always has len(specs) entries.
func Render(view Dataset, specs []ChartSpec, opts ...Option) []ChartRender {
	cfg := applyOptions(opts)

	results := make([]ChartRender, len(specs))
	for i, spec := range specs {
		results[i] = renderOne(view, spec, cfg)
	}
	return results
}

// RenderChart runs a single spec against the view.
func RenderChart(view Dataset, spec ChartSpec, opts ...Option) ChartRender {
	return renderOne(view, spec, applyOptions(opts))
}

func renderOne(view Dataset, spec ChartSpec, cfg *config) ChartRender {
	result := ChartRender{Spec: spec}

	filtered := ApplyFilter(view, spec.Filter)

	agg, err := Aggregate(filtered, spec.LabelField, spec.ValueField, spec.Calculation)
	if err != nil {
		result.Err = err
		return result
	}
	result.Aggregation = agg

	palette := spec.Palette
	if len(palette) == 0 {
		palette = cfg.Palette
	}

	prims, err := cfg.Geometry.Generate(agg, spec.Kind, palette)
	if err != nil {
		result.Err = err
		return result
	}
	result.Primitives = prims
	return result
}
