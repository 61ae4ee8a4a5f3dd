package fitquest

import (
	"time"

	"go.uber.org/zap"

	"github.com/fitquest/fitquest-cli/internal/app"
	"github.com/fitquest/fitquest-cli/internal/db"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withStore(run func(store.KV) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	kv := store.NewSQLite(sqldb)

	// Eager midnight rollover: regenerate missions and zero progress
	// when the last refresh happened on a different day.
	if _, err := service.EnsureDailyReset(kv, time.Now()); err != nil {
		return err
	}
	return run(kv)
}

func newLogger() *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
