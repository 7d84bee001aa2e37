// Package server exposes the report engine over HTTP.
package server

import (
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chartkit-org/chartkit/engine"
	"github.com/chartkit-org/chartkit/render"
	"github.com/chartkit-org/chartkit/schema"
)

// ============================================================================
// HTTP SERVER — POST /generate
// ============================================================================
// The transport layer: decodes a ReportRequest, validates each chart, runs
// the engine, and emits the assembled page. Individual chart failures become
// placeholder blocks; only a malformed request fails the whole call.
// ============================================================================

// maxRequestBytes caps the accepted request body.
const maxRequestBytes = 16 << 20

// Server routes report generation requests.
type Server struct {
	cfg    Config
	router *mux.Router
}

// New creates a Server with its routes registered.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg, router: mux.NewRouter()}
	s.router.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts serving on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("chartkit: listening on %s (emitter=%s)", s.cfg.Addr, s.cfg.Emitter)
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	req, err := schema.ParseRequest(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("chartkit: rendering %d charts over %d records", len(req.Layout.Charts), len(req.Data))

	page := GeneratePage(req, s.cfg.Emitter)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, page)
}

// GeneratePage runs every chart in the request and assembles the report
// page. Invalid or failing charts render as placeholder blocks so sibling
// charts always survive.
func GeneratePage(req *schema.ReportRequest, emitter render.Emitter) string {
	view := engine.Records(req.Data)

	blocks := make([]render.Block, 0, len(req.Layout.Charts))
	for _, def := range req.Layout.Charts {
		block := render.Block{Labels: def.LabelSettings()}

		if err := schema.Validate(def); err != nil {
			log.Printf("chartkit: chart %q rejected: %v", def.Title, err)
			block.Render = engine.ChartRender{
				Spec: engine.ChartSpec{Title: def.Title},
				Err:  err,
			}
			blocks = append(blocks, block)
			continue
		}

		block.Render = engine.RenderChart(view, schema.ToChartSpec(def))
		if block.Render.Err != nil {
			log.Printf("chartkit: chart %q failed: %v", def.Title, block.Render.Err)
		}
		blocks = append(blocks, block)
	}

	return render.Page(blocks, emitter)
}
