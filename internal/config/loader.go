package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envKeys are the settings that may be overridden with TADA_* variables,
// e.g. TADA_STORE_BACKEND or TADA_STORE_REDIS_ADDR.
var envKeys = []string{
	"store.backend",
	"store.key",
	"store.dir",
	"store.redis.addr",
	"store.redis.password",
	"store.redis.db",
	"store.sqlite.path",
	"store.postgres.dsn",
	"board.strict",
	"log.level",
	"log.format",
	"ui.theme",
}

// Load merges defaults, the global file, the project file and the environment.
func Load() (*Config, error) {
	return LoadFrom(GlobalConfigPath(), ProjectConfigPath())
}

// LoadFrom merges the given files in order over the defaults; later files
// win. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := loadFile(p, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	if err := loadEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Store.Dir = expandHome(cfg.Store.Dir)
	cfg.Store.SQLite.Path = expandHome(cfg.Store.SQLite.Path)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func loadEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix("TADA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}
	return v.Unmarshal(cfg)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// GlobalDir is ~/.tada.
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tada"
	}
	return filepath.Join(home, ".tada")
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".tada", "config.yaml")
}
