package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Accrual  AccrualConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AccrualConfig controls the monthly leave accrual job. The interval is how
// often the scheduler checks; the per-employee month guard makes frequent
// checks harmless.
type AccrualConfig struct {
	CheckInterval time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine; the process environment wins either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_backend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	accrualInterval, err := time.ParseDuration(getEnv("LEAVE_ACCRUAL_CHECK_INTERVAL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_ACCRUAL_CHECK_INTERVAL: %w", err)
	}
	config.Accrual = AccrualConfig{CheckInterval: accrualInterval}

	return config, nil
}

// DatabaseURL builds the pgx connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host,
		c.Database.Port, c.Database.Name, c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
