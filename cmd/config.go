package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"realincome/datamapper"
	"realincome/sdmx"
)

// Config holds all application configuration.
type Config struct {
	CacheDir   string            `yaml:"cache_dir"`
	SDMX       sdmx.Config       `yaml:"sdmx"`
	DataMapper datamapper.Config `yaml:"datamapper"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. An empty path or a missing file yields the zero config, which
// the clients default themselves.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("RI_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("RI_SDMX_DATA_URL"); v != "" {
		cfg.SDMX.DataBaseURL = v
	}
	if v := os.Getenv("RI_SDMX_STRUCTURE_URL"); v != "" {
		cfg.SDMX.StructureBaseURL = v
	}
	if v := os.Getenv("RI_DATAMAPPER_URL"); v != "" {
		cfg.DataMapper.BaseURL = v
	}

	return cfg, nil
}
