package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lazypower/pond/internal/config"
	"github.com/lazypower/pond/internal/store"
)

// openStack loads config, builds the logger, and opens the database. The
// caller owns closing the returned DB and syncing the logger.
func openStack() (config.Config, *store.DB, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, nil, err
	}

	log, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return cfg, nil, nil, fmt.Errorf("resolve db path: %w", err)
		}
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, db, log, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
