package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/transitrank/pkg/cache"
	"github.com/matzehuels/transitrank/pkg/pipeline"
)

// newCacheBackend builds the cache backend selected by cfg.
func newCacheBackend(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "", "file":
		return cache.NewFileCache(cfg.Dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (expected file, redis or none)", cfg.Backend)
	}
}

// resolveCacheDir returns the file backend's directory, mirroring the
// default used by [cache.NewFileCache].
func resolveCacheDir(cfg CacheConfig) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "transitrank"), nil
}

// newRunner builds a pipeline runner from the loaded config.
func newRunner(ctx context.Context, cfg Config, logger *log.Logger) (*pipeline.Runner, error) {
	c, err := newCacheBackend(ctx, cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return pipeline.NewRunner(c, cache.NewDefaultKeyer(), logger), nil
}
