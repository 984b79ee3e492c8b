package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminPassword is used for the bootstrap admin when ADMIN_DEFAULT_PASSWORD is unset.
const DefaultAdminPassword = "admin123"

// Config holds the application configuration.
type Config struct {
	ServerPort     int
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseURL    string
	SessionSecret  []byte
	SessionTTL     time.Duration
	AdminPassword  string
	BcryptCost     int
	LogLevel       string
	AllowedOrigins []string
	Production     bool // Secure cookies when true
}

// Load loads configuration from an optional .env file and environment variables.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid BCRYPT_COST %q", os.Getenv("BCRYPT_COST"))
	}

	driver := getEnv("DATABASE_DRIVER", "sqlite")
	if driver != "sqlite" && driver != "postgres" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	return &Config{
		ServerPort:     port,
		DatabaseDriver: driver,
		DatabaseURL:    getEnv("DATABASE_URL", "./vocab.db"),
		SessionSecret:  []byte(os.Getenv("SESSION_SECRET")),
		SessionTTL:     ttl,
		AdminPassword:  getEnv("ADMIN_DEFAULT_PASSWORD", DefaultAdminPassword),
		BcryptCost:     cost,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		Production:     os.Getenv("APP_ENV") == "production",
	}, nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (c *Config) ValidateServer() error {
	if len(c.SessionSecret) == 0 {
		return fmt.Errorf("SESSION_SECRET must be set")
	}
	return nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
