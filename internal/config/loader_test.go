package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Store.Backend != "file" {
		t.Errorf("Expected backend 'file', got '%s'", cfg.Store.Backend)
	}
	if cfg.Store.Key != DefaultKey {
		t.Errorf("Expected key '%s', got '%s'", DefaultKey, cfg.Store.Key)
	}
	if cfg.Board.Strict {
		t.Error("Expected lenient lookups by default")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.Log.Level)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadFromProjectOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global", "config.yaml")
	project := filepath.Join(dir, "project", "config.yaml")

	writeFile(t, global, `
store:
  backend: redis
  redis:
    addr: cache:6379
log:
  level: info
`)
	writeFile(t, project, `
store:
  backend: sqlite
  sqlite:
    path: /tmp/board.db
board:
  strict: true
`)

	cfg, err := LoadFrom(global, project)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Expected project backend 'sqlite', got '%s'", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "cache:6379" {
		t.Errorf("Expected global redis addr to survive, got '%s'", cfg.Store.Redis.Addr)
	}
	if cfg.Store.SQLite.Path != "/tmp/board.db" {
		t.Errorf("Unexpected sqlite path '%s'", cfg.Store.SQLite.Path)
	}
	if !cfg.Board.Strict {
		t.Error("Expected strict lookups from project config")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected log level 'info', got '%s'", cfg.Log.Level)
	}
	if cfg.Store.Key != DefaultKey {
		t.Errorf("Expected default key to survive, got '%s'", cfg.Store.Key)
	}
}

func TestLoadFromMissingFiles(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "nope.yaml"), "")
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Expected defaults, got backend '%s'", cfg.Store.Backend)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "store: [unclosed")
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("TADA_STORE_BACKEND", "postgres")
	t.Setenv("TADA_STORE_POSTGRES_DSN", "postgres://db/tada")
	t.Setenv("TADA_BOARD_STRICT", "true")

	cfg, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Backend != "postgres" {
		t.Errorf("Expected backend from env, got '%s'", cfg.Store.Backend)
	}
	if cfg.Store.Postgres.DSN != "postgres://db/tada" {
		t.Errorf("Unexpected DSN '%s'", cfg.Store.Postgres.DSN)
	}
	if !cfg.Board.Strict {
		t.Error("Expected strict from env")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := expandHome("~/data"); got != "/home/tester/data" {
		t.Errorf("Unexpected expansion '%s'", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("Unexpected expansion '%s'", got)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Store.Backend != "file" || cfg.UI.Theme != "classic" {
		t.Errorf("Unexpected config from default file: %+v", cfg)
	}
}
