package server

import (
	"github.com/gobuffalo/envy"

	"github.com/chartkit-org/chartkit/render"
)

// Environment variables consulted by FromEnv.
const (
	EnvAddr    = "CHARTKIT_ADDR"
	EnvEmitter = "CHARTKIT_EMITTER"
)

// Config holds the server settings.
type Config struct {
	Addr    string
	Emitter render.Emitter
}

// DefaultConfig returns the baseline settings.
func DefaultConfig() Config {
	return Config{
		Addr:    ":8080",
		Emitter: render.EmitterHTML,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for anything unset.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.Addr = envy.Get(EnvAddr, cfg.Addr)
	if e := envy.Get(EnvEmitter, ""); e != "" {
		cfg.Emitter = render.Emitter(e)
	}
	return cfg
}
