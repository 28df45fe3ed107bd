// Package config loads fred-mcp.json, the optional per-project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the fred-mcp.json configuration.
type Config struct {
	BaseURL        string        `json:"baseUrl"`
	TimeoutSeconds int           `json:"timeoutSeconds"`
	Export         ExportConfig  `json:"export"`
	Publish        PublishConfig `json:"publish"`
}

// ExportConfig fences where get_series_data may write exported files.
type ExportConfig struct {
	Allow []string `json:"allow"`
}

// PublishConfig defines the manifest and the external publish actions.
type PublishConfig struct {
	Manifest string `json:"manifest"`
	Build    string `json:"build"`
	Upload   string `json:"upload"`
}

// Load reads fred-mcp.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	p := filepath.Join(dir, "fred-mcp.json")
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading fred-mcp.json: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing fred-mcp.json: %w", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.stlouisfed.org"
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 30
	}
	if cfg.Export.Allow == nil {
		cfg.Export.Allow = []string{"**/*.json"}
	}
	if cfg.Publish.Manifest == "" {
		cfg.Publish.Manifest = "pyproject.toml"
	}
	if cfg.Publish.Build == "" {
		cfg.Publish.Build = "uv build"
	}
	if cfg.Publish.Upload == "" {
		cfg.Publish.Upload = "uv publish"
	}
}
