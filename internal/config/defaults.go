package config

import (
	"os"
	"path/filepath"
)

// DefaultKey matches the key the browser board used in local storage.
const DefaultKey = "taskManager"

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "file",
			Key:     DefaultKey,
			Dir:     filepath.Join(GlobalDir(), "data"),
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
			SQLite: SQLiteConfig{
				Path: filepath.Join(GlobalDir(), "board.db"),
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		UI: UIConfig{
			Theme: "classic",
		},
	}
}

// WriteDefault writes a commented starter config to path.
func WriteDefault(path string) error {
	content := `# tada configuration
store:
  backend: file        # file | redis | sqlite | postgres
  key: taskManager
  # dir: ~/.tada/data
  # redis:
  #   addr: localhost:6379
  #   db: 0
  # sqlite:
  #   path: ~/.tada/board.db
  # postgres:
  #   dsn: postgres://localhost:5432/tada

board:
  strict: false        # report unknown ids instead of ignoring them

log:
  level: warn
  format: text

ui:
  theme: classic       # classic | neon | mono
`
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
