package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chartkit-org/chartkit/engine"
	"github.com/chartkit-org/chartkit/schema"
)

func testLabels() schema.LabelsConfig {
	return schema.LabelsConfig{TitleFontSize: "20px", LabelFontSize: "14px"}
}

func renderChart(t *testing.T, kind engine.ChartKind, records []engine.Record, spec engine.ChartSpec) engine.ChartRender {
	t.Helper()
	spec.Kind = kind
	cr := engine.RenderChart(engine.Records(records), spec)
	if cr.Err != nil {
		t.Fatalf("engine render failed: %v", cr.Err)
	}
	return cr
}

var cityRecords = []engine.Record{
	{"city": "A", "amt": "10"},
	{"city": "B", "amt": "4"},
	{"city": "A", "amt": "5"},
}

// ── HTML ─────────────────────────────────────────────────────────────────────

func TestHTMLPieProportionRows(t *testing.T) {
	cr := renderChart(t, engine.Pie, cityRecords, engine.ChartSpec{
		Calculation: engine.Sum, LabelField: "city", ValueField: "amt", Title: "Sales",
	})
	out := HTML(cr, testLabels())

	for _, want := range []string{
		"<h2 style=\"font-size:20px;\">Sales</h2>",
		"A (78.9%)", // 15 of 19
		"B (21.1%)",
		engine.DefaultPalette[0],
		engine.DefaultPalette[1],
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q\n%s", want, out)
		}
	}
}

func TestHTMLBarExtents(t *testing.T) {
	cr := renderChart(t, engine.Bar, cityRecords, engine.ChartSpec{
		Calculation: engine.Sum, LabelField: "city", ValueField: "amt", Title: "Sales",
	})
	out := HTML(cr, testLabels())

	if !strings.Contains(out, `class="bar-container"`) {
		t.Error("bar output missing container class")
	}
	// A is the max → full reference length
	if !strings.Contains(out, "width:320px") {
		t.Errorf("bar output missing full-scale width\n%s", out)
	}
	if !strings.Contains(out, "A (15.0)") || !strings.Contains(out, "B (4.0)") {
		t.Errorf("bar output missing value annotations\n%s", out)
	}
}

func TestHTMLLineDots(t *testing.T) {
	cr := renderChart(t, engine.Line, cityRecords, engine.ChartSpec{
		Calculation: engine.Count, LabelField: "city",
	})
	out := HTML(cr, testLabels())

	if !strings.Contains(out, "line-point") {
		t.Errorf("line output missing dots\n%s", out)
	}
	if !strings.Contains(out, "A (2.0)") {
		t.Errorf("line output missing annotation\n%s", out)
	}
}

func TestHTMLEscapesLabels(t *testing.T) {
	records := []engine.Record{{"city": `<b>&"x"</b>`}}
	cr := renderChart(t, engine.Pie, records, engine.ChartSpec{
		Calculation: engine.Count, LabelField: "city", Title: "<script>",
	})
	out := HTML(cr, testLabels())

	if strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Errorf("output contains unescaped markup\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("title not escaped\n%s", out)
	}
}

func TestHTMLErrorPlaceholder(t *testing.T) {
	cr := engine.RenderChart(engine.Records(cityRecords), engine.ChartSpec{
		Kind: engine.ChartKind("donut"), Calculation: engine.Count, LabelField: "city", Title: "Broken",
	})
	if cr.Err == nil {
		t.Fatal("expected a render error")
	}

	out := HTML(cr, testLabels())
	if !strings.Contains(out, "chart-error") {
		t.Errorf("error chart should render a placeholder block\n%s", out)
	}
}

// ── SVG ──────────────────────────────────────────────────────────────────────

func TestSVGPieWedgePaths(t *testing.T) {
	cr := renderChart(t, engine.Pie, cityRecords, engine.ChartSpec{
		Calculation: engine.Sum, LabelField: "city", ValueField: "amt", Title: "Sales",
	})
	out := SVG(cr, testLabels())

	if !strings.Contains(out, "<svg") {
		t.Fatalf("missing svg element\n%s", out)
	}
	if !strings.Contains(out, `<path d="M `) {
		t.Errorf("missing wedge path\n%s", out)
	}
	// A holds 78.9% of the circle → large-arc flag set on its arc
	if !strings.Contains(out, " 0 1 1 ") {
		t.Errorf("missing large-arc flag on majority wedge\n%s", out)
	}
}

func TestSVGSingleLabelFullCircle(t *testing.T) {
	cr := renderChart(t, engine.Pie, []engine.Record{{"city": "A"}}, engine.ChartSpec{
		Calculation: engine.Count, LabelField: "city",
	})
	out := SVG(cr, testLabels())

	if !strings.Contains(out, "<circle") {
		t.Errorf("full-circle wedge should emit a circle\n%s", out)
	}
	if strings.Contains(out, "<path") {
		t.Errorf("full-circle wedge should not emit an arc path\n%s", out)
	}
}

func TestSVGBarRects(t *testing.T) {
	cr := renderChart(t, engine.Column, cityRecords, engine.ChartSpec{
		Calculation: engine.Sum, LabelField: "city", ValueField: "amt",
	})
	out := SVG(cr, testLabels())

	if strings.Count(out, "<rect") != 2 {
		t.Errorf("want 2 rects\n%s", out)
	}
}

func TestSVGLineSegmentsAndPoints(t *testing.T) {
	cr := renderChart(t, engine.Line, cityRecords, engine.ChartSpec{
		Calculation: engine.Count, LabelField: "city",
	})
	out := SVG(cr, testLabels())

	if strings.Count(out, "<circle") != 2 {
		t.Errorf("want 2 points\n%s", out)
	}
	if strings.Count(out, "<line") != 1 {
		t.Errorf("want 1 segment\n%s", out)
	}
}

// ── Page ─────────────────────────────────────────────────────────────────────

func TestPageAssemblesAllCharts(t *testing.T) {
	good := renderChart(t, engine.Pie, cityRecords, engine.ChartSpec{
		Calculation: engine.Count, LabelField: "city", Title: "Good",
	})
	bad := engine.RenderChart(engine.Records(cityRecords), engine.ChartSpec{
		Kind: engine.ChartKind("donut"), Calculation: engine.Count, Title: "Bad",
	})

	page := Page([]Block{
		{Render: good, Labels: testLabels()},
		{Render: bad, Labels: testLabels()},
	}, EmitterHTML)

	for _, want := range []string{
		"<h1>Generated Report</h1>",
		"Good",
		"chart-error", // failed chart renders a placeholder, page still assembles
		"</body></html>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageSVGEmitter(t *testing.T) {
	cr := renderChart(t, engine.Bar, cityRecords, engine.ChartSpec{
		Calculation: engine.Count, LabelField: "city",
	})
	page := Page([]Block{{Render: cr, Labels: testLabels()}}, EmitterSVG)
	if !strings.Contains(page, "<svg") {
		t.Error("svg emitter page missing svg markup")
	}
}

// ── PNG ──────────────────────────────────────────────────────────────────────

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPNGExport(t *testing.T) {
	for _, kind := range []engine.ChartKind{engine.Pie, engine.Bar, engine.Column, engine.Line} {
		cr := renderChart(t, kind, cityRecords, engine.ChartSpec{
			Calculation: engine.Sum, LabelField: "city", ValueField: "amt", Title: "Sales",
		})
		var buf bytes.Buffer
		if err := PNG(cr, &buf); err != nil {
			t.Fatalf("PNG(%s) failed: %v", kind, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
			t.Errorf("PNG(%s) output is not a PNG", kind)
		}
	}
}

func TestPNGEmptyAggregationErrors(t *testing.T) {
	cr := engine.RenderChart(engine.Records(nil), engine.ChartSpec{
		Kind: engine.Pie, Calculation: engine.Count, LabelField: "city",
	})
	var buf bytes.Buffer
	if err := PNG(cr, &buf); err == nil {
		t.Error("empty aggregation should not rasterize")
	}
}
