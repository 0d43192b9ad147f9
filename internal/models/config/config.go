package config

import "time"

// Config основной конфиг
type Config struct {
	Environment string
	Timezone    string
	Bot         BotConfig
	Database    DatabaseConfig
	Catalog     CatalogConfig
	Reminder    ReminderConfig
}

type BotConfig struct {
	Token string
	Debug bool
	// SessionStore: "memory" или "database"
	SessionStore string
}

// CatalogConfig - откуда загружать общий каталог программ при старте.
type CatalogConfig struct {
	Path  string
	Sheet string
}

type ReminderConfig struct {
	Enabled bool
	At      string // "08:00"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location возвращает часовой пояс, по которому определяется "сегодня".
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
