// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL
	PostgresDSN string

	// Auth
	JWTSecret     string
	TokenLifetime time.Duration
	EmailDomain   string
	OTPIssuer     string

	// Ingestion
	CSVPath     string
	IngestDelay time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:         getEnv("PORT", "8000"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresDSN: getEnv("POSTGRES_DSN", "host=db port=5432 user=postgres password=postgres dbname=flights sslmode=disable"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenLifetime: time.Duration(getEnvAsInt("TOKEN_LIFETIME_MINUTES", 300)) * time.Minute,
		EmailDomain:   getEnv("EMAIL_DOMAIN", "@flughafenabc"),
		OTPIssuer:     getEnv("OTP_ISSUER", "FlughafenABC"),

		CSVPath:     getEnv("CSV_PATH", "flights_clean.csv"),
		IngestDelay: time.Duration(getEnvAsInt("INGEST_DELAY", 5)) * time.Second,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
