package engine

import "errors"

// ============================================================================
// CHARTKIT ENGINE TYPES — Aggregation + Chart Geometry
// ============================================================================
// The engine is a pure function of its inputs: records and chart specs in,
// draw primitives out. It holds no cross-call state and performs no I/O.
// ============================================================================

// ============================================================================
// RECORD — Generic data row
// ============================================================================

// Record is a single data row: an arbitrary mapping from field name to a
// scalar value (string, number, or absent). Records are owned by the caller
// and never mutated by the engine.
type Record map[string]any

// ============================================================================
// CHART KIND / CALCULATION — Closed enumerations
// ============================================================================

// ChartKind identifies the geometry a chart produces.
type ChartKind string

const (
	Pie    ChartKind = "pie"
	Bar    ChartKind = "bar"
	Column ChartKind = "column"
	Line   ChartKind = "line"
)

// Valid reports whether the kind is one of the four supported geometries.
func (k ChartKind) Valid() bool {
	switch k {
	case Pie, Bar, Column, Line:
		return true
	}
	return false
}

// Calculation names the reduction applied to each label group.
type Calculation string

const (
	Count   Calculation = "count"
	Sum     Calculation = "sum"
	Average Calculation = "average"
	Min     Calculation = "min"
	Max     Calculation = "max"
)

// Valid reports whether the calculation is one of the supported reductions.
func (c Calculation) Valid() bool {
	switch c {
	case Count, Sum, Average, Min, Max:
		return true
	}
	return false
}

// ============================================================================
// CHART SPEC — Declarative description of one chart
// ============================================================================

// ChartSpec describes a single chart to render.
type ChartSpec struct {
	Kind        ChartKind   `json:"kind"`
	Calculation Calculation `json:"calculation"`

	// LabelField is the grouping key. Empty means a single implicit
	// group labelled "All". A record missing the field groups under
	// "Unknown".
	LabelField string `json:"labelField,omitempty"`

	// ValueField is the field reduced by the calculation. Ignored for
	// count; required for sum/average/min/max.
	ValueField string `json:"valueField,omitempty"`

	Title string `json:"title,omitempty"`

	// Palette is the ordered color cycle. Empty means DefaultPalette.
	Palette []string `json:"palette,omitempty"`

	// Filter restricts which records feed the chart. Keys are field
	// names; a record must match one of the allowed values for every
	// listed field. Empty means all records.
	Filter Filter `json:"filter,omitempty"`
}

// ============================================================================
// AGGREGATION RESULT — Ordered label→value pairs
// ============================================================================

// Pair is one aggregated label and its reduced value.
type Pair struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AggregationResult is an ordered sequence of unique labels and their
// values. Order is first-seen order of labels over the input — it is never
// re-sorted. Values are always finite numbers.
type AggregationResult []Pair

// Total returns the sum of all values.
func (a AggregationResult) Total() float64 {
	var total float64
	for _, p := range a {
		total += p.Value
	}
	return total
}

// MaxValue returns the largest value, or 0 for an empty result.
func (a AggregationResult) MaxValue() float64 {
	if len(a) == 0 {
		return 0
	}
	m := a[0].Value
	for _, p := range a[1:] {
		if p.Value > m {
			m = p.Value
		}
	}
	return m
}

// Labels returns the labels in aggregation order.
func (a AggregationResult) Labels() []string {
	labels := make([]string, len(a))
	for i, p := range a {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the values in aggregation order.
func (a AggregationResult) Values() []float64 {
	values := make([]float64, len(a))
	for i, p := range a {
		values[i] = p.Value
	}
	return values
}

// ============================================================================
// ERRORS
// ============================================================================

// ErrUnsupportedChartKind is returned for a chart kind outside
// {pie, bar, column, line}.
var ErrUnsupportedChartKind = errors.New("unsupported chart kind")

// ErrUnsupportedCalculation is returned for a calculation outside
// {count, sum, average, min, max}.
var ErrUnsupportedCalculation = errors.New("unsupported calculation")
