package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds every environment-driven setting the service needs.
type AppConfig struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Either a full DATABASE_URL or the individual DB_* parts.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"buycourse"`

	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`

	AdminAPIKey string `envconfig:"ADMIN_API_KEY"`
	JWTSecret   string `envconfig:"JWT_SECRET"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	// Destination number for the WhatsApp checkout handoff, digits only
	// with country code (e.g. 94771234567).
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER"`
}

// Load reads .env if present and resolves the typed config from the environment.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// DSN returns the postgres connection string, preferring DATABASE_URL.
func (c AppConfig) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// IsProduction reports whether the service runs with production settings.
func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}
