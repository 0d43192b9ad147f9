package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"workout-plan-bot/internal/models/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// New открывает подключение к БД, выбранной в конфиге, и применяет миграции.
func New(cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	if cfg.Driver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite не поддерживает несколько писателей
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err = Migrate(db, cfg.Driver, log); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		log.Info("connected to SQLite", zap.String("path", cfg.Path))
	} else {
		log.Info("connected to PostgreSQL",
			zap.String("host", cfg.Host), zap.Int("port", cfg.Port), zap.String("db", cfg.Name))
	}
	return db, nil
}
