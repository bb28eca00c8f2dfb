package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/transitrank/pkg/errors"
)

// DefaultConfigFile is looked up in the working directory when --config
// is not given.
const DefaultConfigFile = "transitrank.toml"

// Config holds settings read from the TOML config file. Flags take
// precedence: a config value applies only where the corresponding flag
// was left at its default.
type Config struct {
	Rank   RankConfig   `toml:"rank"`
	Cache  CacheConfig  `toml:"cache"`
	Report ReportConfig `toml:"report"`
}

// RankConfig overrides rank propagation parameters.
type RankConfig struct {
	Damping    float64 `toml:"damping"`
	Iterations int     `toml:"iterations"`
	Collapse   bool    `toml:"collapse"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis" or "none".
	Backend string `toml:"backend"`
	// Dir is the file backend's directory; empty means the default.
	Dir   string      `toml:"dir"`
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ReportConfig sets the default report destination.
type ReportConfig struct {
	Path string `toml:"path"`
}

// loadConfig reads the config file at path. An empty path falls back to
// [DefaultConfigFile] when present; a missing default file yields a zero
// config, but an explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return Config{}, apperrors.New(apperrors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, nil
}
