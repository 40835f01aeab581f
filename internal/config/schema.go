package config

// Config is the merged tada configuration.
type Config struct {
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Board BoardConfig `yaml:"board" mapstructure:"board"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	UI    UIConfig    `yaml:"ui" mapstructure:"ui"`
}

// StoreConfig selects and configures the snapshot backend.
type StoreConfig struct {
	// file | redis | sqlite | postgres
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Key the board snapshot is stored under.
	Key string `yaml:"key" mapstructure:"key"`

	// Directory used by the file backend.
	Dir string `yaml:"dir" mapstructure:"dir"`

	Redis    RedisConfig    `yaml:"redis" mapstructure:"redis"`
	SQLite   SQLiteConfig   `yaml:"sqlite" mapstructure:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// BoardConfig tunes board behavior.
type BoardConfig struct {
	// Strict reports lookups of unknown ids as errors instead of ignoring them.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // text | json
}

type UIConfig struct {
	Theme string `yaml:"theme" mapstructure:"theme"` // classic | neon | mono
}
