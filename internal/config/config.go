package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "models/gemini-2.0-flash"

const (
	defaultClusterLimit = 5
	defaultPostLimit    = 5
)

// Config holds everything the tool reads at startup. Credentials come from
// the environment; the result limits and the model default can also be set in
// an optional config file. Read-only after Load.
type Config struct {
	MembitAPIKey string `yaml:"-"`
	GoogleAPIKey string `yaml:"-"`

	GeminiModel  string `yaml:"gemini_model"`
	ClusterLimit int    `yaml:"cluster_limit"`
	PostLimit    int    `yaml:"post_limit"`
}

// SummaryEnabled reports whether the optional Gemini summarizer is
// configured. Resolved once at startup; absence of the key is not an error.
func (c *Config) SummaryEnabled() bool {
	return c.GoogleAPIKey != ""
}

// GetClusterLimit returns the number of clusters to request, defaulting to 5.
func (c *Config) GetClusterLimit() int {
	if c.ClusterLimit <= 0 {
		return defaultClusterLimit
	}
	return c.ClusterLimit
}

// GetPostLimit returns the number of posts to request, defaulting to 5.
func (c *Config) GetPostLimit() int {
	if c.PostLimit <= 0 {
		return defaultPostLimit
	}
	return c.PostLimit
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "membit-insight", "config.yaml")
}

// Load reads the optional config file and the environment. It fails when
// MEMBIT_API_KEY is absent; a missing config file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// First run, or env-only setup. Defaults apply.
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.MembitAPIKey = strings.TrimSpace(os.Getenv("MEMBIT_API_KEY"))
	if cfg.MembitAPIKey == "" {
		return nil, errors.New("missing API key: set MEMBIT_API_KEY in your environment")
	}

	cfg.GoogleAPIKey = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))

	if model := strings.TrimSpace(os.Getenv("GOOGLE_GEMINI_MODEL")); model != "" {
		cfg.GeminiModel = model
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}

	return cfg, nil
}
