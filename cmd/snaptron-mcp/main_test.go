package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))

	if cfg.Snaptron.BaseURL != "http://snaptron.cs.jhu.edu" {
		t.Errorf("Expected default base URL, got %s", cfg.Snaptron.BaseURL)
	}
	if cfg.Server.Port != "4250" {
		t.Errorf("Expected default port 4250, got %s", cfg.Server.Port)
	}
	if cfg.Snaptron.GetTimeout() != 60*time.Second {
		t.Errorf("Expected 60s default timeout, got %v", cfg.Snaptron.GetTimeout())
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snaptron-mcp.toml")
	content := `
[server]
name = "Snaptron-Test"
port = "9999"

[snaptron]
base_url = "http://localhost:8000"
timeout = "5s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := loadConfig(path)

	if cfg.Server.Name != "Snaptron-Test" {
		t.Errorf("Expected server name from file, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Snaptron.BaseURL != "http://localhost:8000" {
		t.Errorf("Expected base URL from file, got %s", cfg.Snaptron.BaseURL)
	}
	if cfg.Snaptron.GetTimeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Snaptron.GetTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SNAPTRON_BASE_URL", "http://snaptron.example.org")
	t.Setenv("SNAPTRON_MCP_PORT", "4300")
	t.Setenv("SNAPTRON_LOG_LEVEL", "warn")

	cfg := loadConfig("")

	if cfg.Snaptron.BaseURL != "http://snaptron.example.org" {
		t.Errorf("Expected env base URL override, got %s", cfg.Snaptron.BaseURL)
	}
	if cfg.Server.Port != "4300" {
		t.Errorf("Expected env port override, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected env log level override, got %s", cfg.Logging.Level)
	}
}

func TestSnaptronConfig_GetTimeout_InvalidFallsBack(t *testing.T) {
	cfg := SnaptronConfig{Timeout: "not-a-duration"}
	if cfg.GetTimeout() != 60*time.Second {
		t.Errorf("Expected 60s fallback, got %v", cfg.GetTimeout())
	}
}
