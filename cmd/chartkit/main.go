// Package main provides the CLI entrypoint for chartkit.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chartkit-org/chartkit/config"
	"github.com/chartkit-org/chartkit/engine"
	"github.com/chartkit-org/chartkit/helpers"
	"github.com/chartkit-org/chartkit/render"
	"github.com/chartkit-org/chartkit/schema"
	"github.com/chartkit-org/chartkit/server"
)

const version = "0.1.0"

var (
	configPath string

	serveAddr    string
	serveEmitter string

	renderData   string
	renderLayout string
	renderOut    string
	renderFormat string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "chartkit",
		Short:        "Turn tabular data plus a chart layout into rendered reports",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "chartkit.toml", "Path to TOML config file")

	rootCmd.AddCommand(newServeCmd(), newRenderCmd(), newVersionCmd())
	return rootCmd
}

// ── serve ─────────────────────────────────────────────────────────────────────

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report endpoint (POST /generate)",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides env and config file)")
	cmd.Flags().StringVar(&serveEmitter, "emitter", "", "Chart markup emitter: html or svg")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.FromEnv()

	fileCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if fileCfg.Server.Addr != "" {
		cfg.Addr = fileCfg.Server.Addr
	}
	if fileCfg.Server.Emitter != "" {
		cfg.Emitter = render.Emitter(fileCfg.Server.Emitter)
	}

	// Flags win over env and file.
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveEmitter != "" {
		cfg.Emitter = render.Emitter(serveEmitter)
	}

	return server.New(cfg).ListenAndServe()
}

// ── render ────────────────────────────────────────────────────────────────────

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report from a data file and a layout file",
		Example: `  chartkit render --data sales.csv --layout charts.json --out report.html
  chartkit render --data sales.json --layout charts.json --format svg
  chartkit render --data sales.csv --layout charts.json --format png --out charts.png`,
		RunE: runRender,
	}
	cmd.Flags().StringVar(&renderData, "data", "", "Path to data file (.csv or .json)")
	cmd.Flags().StringVar(&renderLayout, "layout", "", "Path to layout JSON file")
	cmd.Flags().StringVar(&renderOut, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&renderFormat, "format", "", "Output format: html, svg, or png")
	cmd.MarkFlagRequired("data")
	cmd.MarkFlagRequired("layout")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	format := renderFormat
	if format == "" {
		if fileCfg, err := config.Load(configPath); err == nil && fileCfg.Render.Format != "" {
			format = fileCfg.Render.Format
		} else {
			format = "html"
		}
	}

	records, err := loadRecords(renderData)
	if err != nil {
		return err
	}

	layoutBytes, err := os.ReadFile(renderLayout)
	if err != nil {
		return fmt.Errorf("failed to read layout file: %w", err)
	}
	parsed, err := schema.ParseRequest(layoutBytes)
	if err != nil {
		return err
	}
	req := &schema.ReportRequest{Data: records, Layout: parsed.Layout}

	out := os.Stdout
	if renderOut != "" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "html", "svg":
		page := server.GeneratePage(req, render.Emitter(format))
		_, err = out.WriteString(page)
		return err
	case "png":
		return renderPNGs(req, out)
	default:
		return fmt.Errorf("unknown format %q (want html, svg, or png)", format)
	}
}

// renderPNGs rasterizes each chart. With --out, multiple charts write
// numbered sibling files; a single chart writes straight to the target.
func renderPNGs(req *schema.ReportRequest, out *os.File) error {
	view := engine.Records(req.Data)

	for i, def := range req.Layout.Charts {
		if err := schema.Validate(def); err != nil {
			return err
		}
		cr := engine.RenderChart(view, schema.ToChartSpec(def))
		if cr.Err != nil {
			return cr.Err
		}

		target := out
		if len(req.Layout.Charts) > 1 && out != os.Stdout {
			path := numberedPath(out.Name(), i)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			target = f
		}
		if err := render.PNG(cr, target); err != nil {
			return err
		}
		if target != out {
			target.Close()
		}
	}
	return nil
}

// numberedPath turns report.png into report-1.png, report-2.png, ...
func numberedPath(path string, i int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%d%s", base, i+1, ext)
}

func loadRecords(path string) ([]engine.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return helpers.ParseCSV(data)
	}

	// JSON: either a bare record array or a full request's data field.
	req, err := schema.ParseRequest(data)
	if err == nil && len(req.Data) > 0 {
		return req.Data, nil
	}
	var records []engine.Record
	if jsonErr := json.Unmarshal(data, &records); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", jsonErr)
	}
	return records, nil
}

// ── version ───────────────────────────────────────────────────────────────────

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chartkit %s\n", version)
		},
	}
}
