package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/chartkit-org/chartkit/render"
)

const reportPayload = `{
	"data": [
		{"city": "A", "amt": "10"},
		{"city": "B", "amt": "bad"},
		{"city": "A", "amt": "5"}
	],
	"layout": {"charts": [
		{"type": "bar", "title": "Sales by City", "calculation": "sum", "field": "city", "value_field": "amt"},
		{"type": "donut", "title": "Broken", "calculation": "count", "field": "city"}
	]}
}`

func newTestServer() *httptest.Server {
	return httptest.NewServer(New(DefaultConfig()).Handler())
}

func TestGenerateEndpoint(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/generate", "application/json", strings.NewReader(reportPayload))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (bad chart must not fail the request)", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(body)

	if !strings.Contains(page, "Sales by City") {
		t.Error("page missing the valid chart")
	}
	// B's "bad" amount coerces to zero, the record stays in the group
	if !strings.Contains(page, "B (0.0)") {
		t.Errorf("page missing zero-coerced group\n%s", page)
	}
	if !strings.Contains(page, "chart-error") {
		t.Error("page missing the placeholder for the unsupported chart kind")
	}
}

func TestGenerateMalformedRequest(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/generate", "application/json", strings.NewReader(`{"data": [`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/generate")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestFromEnv(t *testing.T) {
	envy.Temp(func() {
		envy.Set(EnvAddr, ":9999")
		envy.Set(EnvEmitter, "svg")

		cfg := FromEnv()
		if cfg.Addr != ":9999" {
			t.Errorf("Addr = %q, want :9999", cfg.Addr)
		}
		if cfg.Emitter != render.EmitterSVG {
			t.Errorf("Emitter = %q, want svg", cfg.Emitter)
		}
	})
}

func TestFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg := FromEnv()
		if cfg.Addr != ":8080" || cfg.Emitter != render.EmitterHTML {
			t.Errorf("defaults = %+v", cfg)
		}
	})
}
