package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// AGGREGATOR — Grouping and Reduction via Dataset
// ============================================================================
// Single pass over the view. Groups keep first-seen insertion order (order
// slice + map, never a bare hash iteration). Each group reduces to exactly
// one finite value.
// ============================================================================

// Fallback labels for the grouping key.
const (
	// UnknownLabel groups records whose label field is missing or nil.
	UnknownLabel = "Unknown"
	// AllLabel is the single implicit group used when no label field is set.
	AllLabel = "All"
)

// accumulator collects the per-group running reduction state.
type accumulator struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (a *accumulator) add(v float64) {
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.count++
	a.sum += v
}

func (a *accumulator) reduce(calc Calculation) float64 {
	if a.count == 0 {
		return 0
	}
	switch calc {
	case Count:
		return float64(a.count)
	case Sum:
		return a.sum
	case Average:
		return a.sum / float64(a.count)
	case Min:
		return a.min
	case Max:
		return a.max
	}
	return 0
}

// Aggregate groups records by labelField and reduces each group to one value.
//
// Grouping key: the stringified labelField value; "Unknown" when the field
// is missing or nil; a single "All" group when labelField is empty.
// For count each record contributes 1 regardless of valueField. For the
// numeric reductions each record's valueField is coerced via Coerce — a
// record is never dropped from its group.
//
// Output order is first-occurrence order of each label in the input.
func Aggregate(view Dataset, labelField, valueField string, calc Calculation) (AggregationResult, error) {
	if !calc.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCalculation, calc)
	}

	grouped := make(map[string]*accumulator)
	order := make([]string, 0)

	n := view.Len()
	for i := 0; i < n; i++ {
		key := labelFor(view, i, labelField)
		acc, exists := grouped[key]
		if !exists {
			acc = &accumulator{}
			grouped[key] = acc
			order = append(order, key)
		}
		if calc == Count {
			acc.add(1)
			continue
		}
		raw, _ := view.Field(i, valueField)
		acc.add(Coerce(raw))
	}

	result := make(AggregationResult, 0, len(order))
	for _, key := range order {
		result = append(result, Pair{
			Label: key,
			Value: grouped[key].reduce(calc),
		})
	}
	return result, nil
}

// labelFor extracts the grouping key for a record.
func labelFor(view Dataset, i int, labelField string) string {
	if labelField == "" {
		return AllLabel
	}
	raw, ok := view.Field(i, labelField)
	if !ok || raw == nil {
		return UnknownLabel
	}
	return formatLabel(raw)
}

// formatLabel stringifies a raw field value for use as a group label.
func formatLabel(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ============================================================================
// NUMERIC COERCION — Total function, never fails
// ============================================================================

// Coerce converts a raw field value to a number. The domain is total:
// numbers pass through, numeric strings parse, and everything else —
// missing fields, non-numeric strings, NaN/Inf — becomes 0. A lenient-data
// policy: bad values zero out instead of dropping the record or erroring.
func Coerce(raw any) float64 {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case int32:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint64:
		v = float64(n)
	case bool:
		if n {
			v = 1
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		v = parsed
	case interface{ Float64() (float64, error) }: // json.Number
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		v = parsed
	default:
		return 0
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
