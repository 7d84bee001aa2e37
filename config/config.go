// Package config provides TOML file configuration for the CLI and server.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the optional chartkit.toml configuration file.
type FileConfig struct {
	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
}

// ServerConfig maps server settings.
type ServerConfig struct {
	Addr    string `toml:"addr"`
	Emitter string `toml:"emitter"` // "html" or "svg"
}

// RenderConfig maps CLI render defaults.
type RenderConfig struct {
	Format string `toml:"format"` // "html", "svg", or "png"
}

// Load reads a TOML config from the given path. A missing file is not an
// error — defaults apply.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
