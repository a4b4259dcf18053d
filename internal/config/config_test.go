package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// missingConfigPath points Load at a file that does not exist, so only the
// environment set by the test applies.
func missingConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestLoadMissingAPIKeyFails(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "")

	_, err := Load(missingConfigPath(t))
	if err == nil {
		t.Fatal("expected error when MEMBIT_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "MEMBIT_API_KEY") {
		t.Errorf("error = %q, want it to name the variable", err)
	}
}

func TestLoadWhitespaceAPIKeyFails(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "   ")

	if _, err := Load(missingConfigPath(t)); err == nil {
		t.Fatal("expected error for whitespace-only MEMBIT_API_KEY")
	}
}

func TestLoadEnvOnlyDefaults(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "mk-123")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_GEMINI_MODEL", "")

	cfg, err := Load(missingConfigPath(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MembitAPIKey != "mk-123" {
		t.Errorf("MembitAPIKey = %q", cfg.MembitAPIKey)
	}
	if cfg.SummaryEnabled() {
		t.Error("expected summaries disabled without GOOGLE_API_KEY")
	}
	if cfg.GeminiModel != DefaultGeminiModel {
		t.Errorf("GeminiModel = %q, want default %q", cfg.GeminiModel, DefaultGeminiModel)
	}
	if cfg.GetClusterLimit() != 5 {
		t.Errorf("GetClusterLimit() = %d, want 5", cfg.GetClusterLimit())
	}
	if cfg.GetPostLimit() != 5 {
		t.Errorf("GetPostLimit() = %d, want 5", cfg.GetPostLimit())
	}
}

func TestLoadGoogleKeyEnablesSummary(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "mk-123")
	t.Setenv("GOOGLE_API_KEY", "gk-456")
	t.Setenv("GOOGLE_GEMINI_MODEL", "")

	cfg, err := Load(missingConfigPath(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.SummaryEnabled() {
		t.Error("expected summaries enabled with GOOGLE_API_KEY")
	}
}

func TestLoadModelFromEnv(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "mk-123")
	t.Setenv("GOOGLE_GEMINI_MODEL", "models/gemini-2.5-pro")

	cfg, err := Load(missingConfigPath(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiModel != "models/gemini-2.5-pro" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "mk-123")
	t.Setenv("GOOGLE_GEMINI_MODEL", "")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `gemini_model: models/gemini-1.5-flash
cluster_limit: 3
post_limit: 8
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiModel != "models/gemini-1.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.GetClusterLimit() != 3 {
		t.Errorf("GetClusterLimit() = %d, want 3", cfg.GetClusterLimit())
	}
	if cfg.GetPostLimit() != 8 {
		t.Errorf("GetPostLimit() = %d, want 8", cfg.GetPostLimit())
	}
}

func TestEnvModelOverridesFile(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "mk-123")
	t.Setenv("GOOGLE_GEMINI_MODEL", "models/from-env")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("gemini_model: models/from-file\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiModel != "models/from-env" {
		t.Errorf("GeminiModel = %q, want env value", cfg.GeminiModel)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Setenv("MEMBIT_API_KEY", "mk-123")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("cluster_limit: [not a number\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %q", err)
	}
}

func TestLimitGetters(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, 5},  // default
		{-2, 5}, // invalid falls back to default
		{12, 12},
	}
	for _, tt := range tests {
		cfg := &Config{ClusterLimit: tt.limit, PostLimit: tt.limit}
		if got := cfg.GetClusterLimit(); got != tt.want {
			t.Errorf("GetClusterLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
		if got := cfg.GetPostLimit(); got != tt.want {
			t.Errorf("GetPostLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
