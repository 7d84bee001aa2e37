package schema

import (
	"fmt"

	"github.com/chartkit-org/chartkit/engine"
)

// ============================================================================
// VALIDATION — ChartDef → engine.ChartSpec
// ============================================================================

// Validate checks a ChartDef against the closed kind and calculation sets.
// An unknown calculation is rejected here rather than silently dropped to
// zero — a wrong chart is worse than a failed one.
func Validate(def ChartDef) error {
	kind := engine.ChartKind(def.Type)
	if !kind.Valid() {
		return fmt.Errorf("chart %q: %w: %q", def.Title, engine.ErrUnsupportedChartKind, def.Type)
	}

	calc := normalizeCalculation(def.Calculation)
	if !calc.Valid() {
		return fmt.Errorf("chart %q: %w: %q", def.Title, engine.ErrUnsupportedCalculation, def.Calculation)
	}

	if calc != engine.Count && def.ValueField == "" {
		return fmt.Errorf("chart %q: calculation %q requires value_field", def.Title, calc)
	}
	return nil
}

// ToChartSpec converts a validated ChartDef into an engine spec.
func ToChartSpec(def ChartDef) engine.ChartSpec {
	labels := def.LabelSettings()
	return engine.ChartSpec{
		Kind:        engine.ChartKind(def.Type),
		Calculation: normalizeCalculation(def.Calculation),
		LabelField:  def.Field,
		ValueField:  def.ValueField,
		Title:       def.Title,
		Palette:     labels.Colors,
	}
}

// normalizeCalculation applies the request default: an omitted calculation
// means count.
func normalizeCalculation(raw string) engine.Calculation {
	if raw == "" {
		return engine.Count
	}
	return engine.Calculation(raw)
}
