package storage

import (
	"context"
	"database/sql"
	"fmt"

	"learning_tracker/internal/domain/progress"
	"learning_tracker/internal/infra/config"
	idb "learning_tracker/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// Open builds the Store selected by cfg.StoreDriver. The returned close
// function releases any database connection and is never nil.
func Open(ctx context.Context, cfg *config.AppConfig, logger *logrus.Entry) (progress.Store, func() error, error) {
	noop := func() error { return nil }
	log := logger.WithField("driver", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case config.StoreDriverFile:
		store, err := NewFileStore(cfg.StorePath)
		if err != nil {
			return nil, noop, err
		}
		log.WithField("path", cfg.StorePath).Info("File store ready")
		return store, noop, nil

	case config.StoreDriverSQLite:
		db, err := idb.NewSQLiteConnection(cfg.StorePath)
		if err != nil {
			return nil, noop, err
		}
		return initSQLStore(ctx, db, idb.DialectSQLite, log.WithField("path", cfg.StorePath))

	case config.StoreDriverPostgres:
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return initSQLStore(ctx, db, idb.DialectPostgres, log)

	case config.StoreDriverMemory:
		log.Warn("Memory store selected, progress will not survive a restart")
		return NewMemoryStore(), noop, nil
	}

	return nil, noop, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

func initSQLStore(ctx context.Context, db *sql.DB, dialect idb.Dialect, log *logrus.Entry) (progress.Store, func() error, error) {
	if err := idb.InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, func() error { return nil }, err
	}
	log.Info("Database store ready")
	return idb.NewKVRepository(db, dialect), db.Close, nil
}
