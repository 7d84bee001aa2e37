package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Render()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Palette  []string // fallback palette for specs that carry none
	Geometry Geometry // reference dimensions for generated shapes
}

// WithPalette sets the fallback color cycle used when a ChartSpec carries
// no palette of its own.
func WithPalette(palette []string) Option {
	return func(c *config) {
		c.Palette = palette
	}
}

// WithGeometry overrides the reference dimensions shapes are scaled into.
func WithGeometry(g Geometry) Option {
	return func(c *config) {
		c.Geometry = g
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Palette:  DefaultPalette,
		Geometry: DefaultGeometry(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
