package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings. Precedence is flag, then INFLO_* variable,
// then the YAML file, then the defaults below.
type Config struct {
	APIURL    string `yaml:"api_url"`
	StatePath string `yaml:"state_path"`
	Token     string `yaml:"token"`
	LogLevel  string `yaml:"log_level"`
}

const defaultAPIURL = "http://localhost:8080"

// LoadConfig reads path when it exists and applies environment overrides and defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config yaml: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// DefaultConfigPath is ~/.config/inflo/config.yaml, or ./inflo.yaml without a config dir.
func DefaultConfigPath() string {
	if path := os.Getenv("INFLO_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inflo.yaml"
	}
	return filepath.Join(dir, "inflo", "config.yaml")
}

func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("INFLO_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("INFLO_STATE"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("INFLO_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("INFLO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.StatePath == "" {
		cfg.StatePath = defaultStatePath()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".inflo", "state.db")
	}
	return filepath.Join(dir, "inflo", "state.db")
}
