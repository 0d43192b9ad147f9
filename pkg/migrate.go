package database

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"workout-plan-bot/internal/models/config"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

var dialects = map[string]string{
	config.DriverSQLite:   "sqlite3",
	config.DriverPostgres: "postgres",
}

// goose хранит диалект и FS в глобальных переменных
var gooseMu sync.Mutex

// Migrate применяет все миграции для драйвера. Вывод goose идёт в log.
func Migrate(db *sqlx.DB, driver string, log *zap.Logger) error {
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	dir, err := fs.Sub(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to get migrations directory: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(dir)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(zap.NewStdLog(log.Named("goose")))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
