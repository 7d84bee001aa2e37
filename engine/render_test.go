package engine

import (
	"errors"
	"testing"
)

func TestRenderMultipleSpecs(t *testing.T) {
	view := Records([]Record{
		{"city": "A", "amt": "10"},
		{"city": "B", "amt": "bad"},
		{"city": "A", "amt": "5"},
	})

	specs := []ChartSpec{
		{Kind: Pie, Calculation: Count, LabelField: "city"},
		{Kind: Bar, Calculation: Sum, LabelField: "city", ValueField: "amt"},
	}

	results := Render(view, specs)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("result %d errored: %v", i, r.Err)
		}
		if len(r.Primitives) != 2 {
			t.Errorf("result %d has %d primitives, want 2", i, len(r.Primitives))
		}
	}

	assertPairs(t, results[1].Aggregation, []Pair{{"A", 15}, {"B", 0}})
}

// A bad chart kind poisons only its own result, never the siblings.
func TestRenderIsolatesFailures(t *testing.T) {
	view := Records([]Record{{"city": "A"}})

	specs := []ChartSpec{
		{Kind: ChartKind("donut"), Calculation: Count, LabelField: "city"},
		{Kind: Pie, Calculation: Count, LabelField: "city"},
	}

	results := Render(view, specs)
	if !errors.Is(results[0].Err, ErrUnsupportedChartKind) {
		t.Errorf("result 0 err = %v, want ErrUnsupportedChartKind", results[0].Err)
	}
	if results[1].Err != nil {
		t.Errorf("result 1 errored: %v", results[1].Err)
	}
	if len(results[1].Primitives) != 1 {
		t.Errorf("result 1 has %d primitives, want 1", len(results[1].Primitives))
	}
}

func TestRenderEmptyDatasetAnyKind(t *testing.T) {
	view := Records(nil)
	for _, kind := range []ChartKind{Pie, Bar, Column, Line} {
		r := RenderChart(view, ChartSpec{Kind: kind, Calculation: Count, LabelField: "x"})
		if r.Err != nil {
			t.Errorf("kind %s errored on empty dataset: %v", kind, r.Err)
		}
		if len(r.Primitives) != 0 {
			t.Errorf("kind %s produced %d primitives on empty dataset", kind, len(r.Primitives))
		}
	}
}

func TestRenderSpecFilter(t *testing.T) {
	view := Records([]Record{
		{"city": "A", "cat": "food", "amt": 3.0},
		{"city": "A", "cat": "rent", "amt": 9.0},
		{"city": "B", "cat": "food", "amt": 4.0},
	})

	r := RenderChart(view, ChartSpec{
		Kind:        Bar,
		Calculation: Sum,
		LabelField:  "city",
		ValueField:  "amt",
		Filter:      Filter{"cat": {"food"}},
	})
	if r.Err != nil {
		t.Fatalf("render failed: %v", r.Err)
	}
	assertPairs(t, r.Aggregation, []Pair{{"A", 3}, {"B", 4}})
}

func TestRenderWithPaletteOption(t *testing.T) {
	view := Records([]Record{{"c": "x"}, {"c": "y"}})
	palette := []string{"#000000"}

	r := RenderChart(view, ChartSpec{Kind: Pie, Calculation: Count, LabelField: "c"},
		WithPalette(palette))
	if r.Err != nil {
		t.Fatalf("render failed: %v", r.Err)
	}
	for i, p := range r.Primitives {
		if p.(Wedge).Color != "#000000" {
			t.Errorf("wedge %d ignored the palette option", i)
		}
	}

	// A spec-level palette wins over the option.
	r = RenderChart(view, ChartSpec{
		Kind: Pie, Calculation: Count, LabelField: "c", Palette: []string{"#ffffff"},
	}, WithPalette(palette))
	if r.Primitives[0].(Wedge).Color != "#ffffff" {
		t.Error("spec palette should take precedence over the render option")
	}
}

func TestRenderWithGeometryOption(t *testing.T) {
	g := DefaultGeometry()
	g.BarLength = 100

	view := Records([]Record{{"c": "x", "v": 5.0}})
	r := RenderChart(view, ChartSpec{Kind: Bar, Calculation: Sum, LabelField: "c", ValueField: "v"},
		WithGeometry(g))
	if r.Err != nil {
		t.Fatalf("render failed: %v", r.Err)
	}
	if w := r.Primitives[0].(Rect).Width; w != 100 {
		t.Errorf("bar width = %v, want 100 from geometry option", w)
	}
}
