package engine

// ============================================================================
// DATASET — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns consumer data. It reads through this interface.
//
// Implementations:
//   RecordsView    — wraps []Record (JSON requests, CSV, ad-hoc)
//   DomainView[T]  — reads typed structs via accessor functions (zero-copy)
//   SubView        — filtered subset (indices into parent, zero-copy)
//
// Consumers register accessors once; the engine reads in tight loops.
// ============================================================================

// Dataset provides indexed access to a sequence of records.
// Field returns the raw value at index i and whether the field is present.
type Dataset interface {
	Len() int
	Field(index int, key string) (any, bool)
}

// ============================================================================
// RECORDS VIEW — wraps []Record
// ============================================================================

// RecordsView wraps a []Record slice as a Dataset.
type RecordsView struct {
	records []Record
}

// Records creates a Dataset from a []Record slice. Zero-copy — holds the
// slice by reference.
func Records(records []Record) Dataset {
	return &RecordsView{records: records}
}

func (v *RecordsView) Len() int { return len(v.records) }

func (v *RecordsView) Field(i int, key string) (any, bool) {
	if i < 0 || i >= len(v.records) {
		return nil, false
	}
	val, ok := v.records[i][key]
	return val, ok
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent Dataset.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  Dataset
	indices []int
}

func newSubView(parent Dataset, indices []int) Dataset {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Field(i int, key string) (any, bool) {
	if i < 0 || i >= len(v.indices) {
		return nil, false
	}
	return v.parent.Field(v.indices[i], key)
}

// ============================================================================
// DOMAIN ADAPTER — Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewDomainAdapter[Order]().
//	    Field("city", func(o Order) any { return o.City }).
//	    Field("amount", func(o Order) any { return o.Amount })
//
//	view := adapter.Bind(orders)
//	results := engine.Render(view, specs)
//
// ============================================================================

// DomainAdapter builds a Dataset from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	fields map[string]func(T) any
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{fields: make(map[string]func(T) any)}
}

// Field registers an accessor for a named field.
func (a *DomainAdapter[T]) Field(key string, fn func(T) any) *DomainAdapter[T] {
	a.fields[key] = fn
	return a
}

// Bind creates a Dataset from a data slice. Zero-copy — holds reference.
func (a *DomainAdapter[T]) Bind(data []T) Dataset {
	return &DomainView[T]{data: data, fields: a.fields}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data   []T
	fields map[string]func(T) any
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Field(i int, key string) (any, bool) {
	if i < 0 || i >= len(v.data) {
		return nil, false
	}
	fn, ok := v.fields[key]
	if !ok {
		return nil, false
	}
	return fn(v.data[i]), true
}
