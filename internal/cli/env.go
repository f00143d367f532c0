package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/phrase-canvas/internal/config"
	"github.com/elektrokombinacija/phrase-canvas/internal/store"
)

// env is what every command needs: settings, an open store and the
// repository over it.
type env struct {
	cfg    config.Config
	store  store.Store
	repo   *store.Repository
	logger *log.Logger
}

func (e *env) Close() error {
	return e.store.Close()
}

// loadEnv reads the config at path (or the default path) and opens the
// configured store. The logger level follows the config unless verbose.
func loadEnv(ctx context.Context, path string, verbose bool) (*env, error) {
	logger := loggerFromContext(ctx)

	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if !verbose {
		logger.SetLevel(parseLevel(cfg.Log.Level))
	}
	logger.Debug("config loaded", "path", path, "backend", cfg.Store.Backend)

	s, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if fs, ok := s.(*store.FileStore); ok {
		logger.Debug("file store opened", "dir", fs.Path())
	}
	return &env{
		cfg:    cfg,
		store:  s,
		repo:   store.NewRepository(s, logger),
		logger: logger,
	}, nil
}

// openStore creates the backend named by cfg.
func openStore(ctx context.Context, cfg config.Store) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendFile, "":
		return store.NewFileStore(cfg.Dir)
	case config.BackendRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
