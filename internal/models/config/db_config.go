package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	SessionStoreMemory   = "memory"
	SessionStoreDatabase = "database"
)

// DatabaseConfig конфигурация БД
type DatabaseConfig struct {
	Driver   string
	Path     string // для sqlite
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
}

// DSN возвращает строку подключения для выбранного драйвера.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Name, d.SSLMode,
	)
}

// Load загружает конфигурацию из окружения (и из .env, если он есть)
func Load() (*Config, error) {
	cfg := read()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStorage загружает конфигурацию для утилит без бота: токен не обязателен.
func LoadStorage() (*Config, error) {
	cfg := read()
	if errors := cfg.databaseErrors(); len(errors) > 0 {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}
	return cfg, nil
}

func read() *Config {
	// .env не обязателен
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Environment: env,
		Timezone:    getEnv("TIMEZONE", ""),
		Bot: BotConfig{
			Token:        getEnv("BOT_TOKEN", ""),
			Debug:        getEnvAsBool("BOT_DEBUG", env != "production"),
			SessionStore: getEnv("SESSION_STORE", SessionStoreDatabase),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			Path:     getEnv("DB_PATH", "data/workout.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "workout"),
			SSLMode:  getEnv("DB_SSLMODE", getSSLMode(env)),
		},
		Catalog: CatalogConfig{
			Path:  getEnv("CATALOG_PATH", ""),
			Sheet: getEnv("CATALOG_SHEET", "amina"),
		},
		Reminder: ReminderConfig{
			Enabled: getEnvAsBool("REMINDER_ENABLED", false),
			At:      getEnv("REMINDER_TIME", "08:00"),
		},
	}
	return cfg
}

// validate проверяет обязательные параметры
func (c *Config) validate() error {
	var errors []string

	if c.Bot.Token == "" {
		errors = append(errors, "BOT_TOKEN is required")
	}

	errors = append(errors, c.databaseErrors()...)

	if c.Bot.SessionStore != SessionStoreMemory && c.Bot.SessionStore != SessionStoreDatabase {
		errors = append(errors, fmt.Sprintf("unsupported SESSION_STORE %q", c.Bot.SessionStore))
	}

	if _, err := c.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid TIMEZONE %q", c.Timezone))
	}

	if c.Reminder.Enabled {
		if _, err := time.Parse("15:04", c.Reminder.At); err != nil {
			errors = append(errors, fmt.Sprintf("invalid REMINDER_TIME %q, want HH:MM", c.Reminder.At))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) databaseErrors() []string {
	var errors []string

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			errors = append(errors, "DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.Username == "" {
			errors = append(errors, "DB_USER is required for postgres")
		}
		if c.Database.Password == "" && c.IsProduction() {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
	default:
		errors = append(errors, fmt.Sprintf("unsupported DB_DRIVER %q", c.Database.Driver))
	}
	return errors
}

// getSSLMode возвращает режим SSL в зависимости от окружения
func getSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}
