package engine

import "strings"

// ============================================================================
// FILTERS — Generic Field-Based Filtering via Dataset
// ============================================================================
// Single-pass filter: checks ALL field constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// ============================================================================

// Filter restricts which records feed a chart. Keys are field names, values
// are the allowed stringified field values. Fields are AND-combined; values
// within a field are OR-combined. Matching is case-insensitive.
type Filter map[string][]string

// IsEmpty returns true if no constraints are set.
func (f Filter) IsEmpty() bool {
	for _, vals := range f {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ApplyFilter returns a view of records matching all field constraints.
// An empty filter returns the original view unchanged.
func ApplyFilter(view Dataset, filter Filter) Dataset {
	if filter.IsEmpty() {
		return view
	}

	// Pre-build lowercase lookup sets for each constrained field
	sets := make(map[string]map[string]bool)
	for field, allowed := range filter {
		if len(allowed) > 0 {
			sets[field] = toLowerSet(allowed)
		}
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for field, set := range sets {
			raw, ok := view.Field(i, field)
			if !ok || !set[strings.ToLower(formatLabel(raw))] {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
