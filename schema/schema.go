// Package schema defines the report request wire shape and validates chart
// definitions before they reach the engine.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/chartkit-org/chartkit/engine"
)

// ============================================================================
// SCHEMA — Report request types
// ============================================================================
// The transport layer decodes a ReportRequest, validates each ChartDef, and
// hands engine.ChartSpec values to the engine. Validation is the boundary
// where unsupported kinds and calculations are rejected — the engine refuses
// them too, but charts should fail here with a useful message first.
// ============================================================================

// Font size defaults applied when a LabelsConfig omits them.
const (
	DefaultTitleFontSize = "20px"
	DefaultLabelFontSize = "14px"
)

// ReportRequest is the full payload: a dataset plus a chart layout.
type ReportRequest struct {
	Data   []engine.Record `json:"data"`
	Layout Layout          `json:"layout"`
}

// Layout is the ordered list of charts to render.
type Layout struct {
	Charts []ChartDef `json:"charts"`
}

// ChartDef describes one chart in the request.
type ChartDef struct {
	Type        string        `json:"type"`
	Title       string        `json:"title,omitempty"`
	Calculation string        `json:"calculation,omitempty"`
	Field       string        `json:"field,omitempty"`
	ValueField  string        `json:"value_field,omitempty"`
	Labels      *LabelsConfig `json:"labels,omitempty"`
}

// LabelsConfig holds presentation settings for a chart's labels.
type LabelsConfig struct {
	TitleFontSize string   `json:"titleFontSize,omitempty"`
	LabelFontSize string   `json:"labelFontSize,omitempty"`
	Colors        []string `json:"colors,omitempty"`
}

// ParseRequest decodes a JSON ReportRequest.
func ParseRequest(data []byte) (*ReportRequest, error) {
	var req ReportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse report request: %w", err)
	}
	return &req, nil
}

// LabelSettings returns the chart's label settings with defaults filled in.
func (d ChartDef) LabelSettings() LabelsConfig {
	cfg := LabelsConfig{
		TitleFontSize: DefaultTitleFontSize,
		LabelFontSize: DefaultLabelFontSize,
	}
	if d.Labels == nil {
		return cfg
	}
	if d.Labels.TitleFontSize != "" {
		cfg.TitleFontSize = d.Labels.TitleFontSize
	}
	if d.Labels.LabelFontSize != "" {
		cfg.LabelFontSize = d.Labels.LabelFontSize
	}
	cfg.Colors = d.Labels.Colors
	return cfg
}
