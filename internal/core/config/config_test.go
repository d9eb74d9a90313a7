package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	manager := NewManager(t.TempDir())

	cfg, err := manager.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultTimeout.Std() != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %s", cfg.DefaultTimeout.Std())
	}
	if cfg.PollInterval.Std() != 100*time.Millisecond {
		t.Errorf("Expected poll interval 100ms, got %s", cfg.PollInterval.Std())
	}
	if cfg.MCP.Transport != "stdio" {
		t.Errorf("Expected stdio transport, got %q", cfg.MCP.Transport)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	content := `defaultTimeout: 45s
pollInterval: 250ms
mcp:
  transport: http
  http:
    port: 8080
    auth:
      type: bearer
      bearer: secret
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := NewManager(tmpDir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DefaultTimeout.Std() != 45*time.Second {
		t.Errorf("Expected 45s, got %s", cfg.DefaultTimeout.Std())
	}
	if cfg.PollInterval.Std() != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %s", cfg.PollInterval.Std())
	}
	if cfg.MCP.Transport != "http" || cfg.MCP.HTTP.Port != 8080 {
		t.Errorf("Unexpected MCP config: %+v", cfg.MCP)
	}
	if cfg.MCP.HTTP.Auth.Bearer != "secret" {
		t.Errorf("Expected bearer token, got %q", cfg.MCP.HTTP.Auth.Bearer)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("defaultTimeout: soon\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := NewManager(tmpDir).Load(); err == nil {
		t.Error("Expected error for invalid duration")
	}
}

func TestLoad_InvalidTransport(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("mcp:\n  transport: carrier-pigeon\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := NewManager(tmpDir).Load(); err == nil {
		t.Error("Expected error for unsupported transport")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	manager := NewManager(tmpDir)

	cfg := DefaultConfig()
	cfg.DefaultTimeout = Duration(10 * time.Second)

	if err := manager.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultTimeout.Std() != 10*time.Second {
		t.Errorf("Round trip lost timeout: %s", loaded.DefaultTimeout.Std())
	}
}
