package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries every process-wide setting. It is loaded once at startup
// and read-only afterwards; in particular the signing secret never rotates
// within a process lifetime.
type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	JWTSecret       string
	TokenTTL        time.Duration
	PasswordScheme  string
}

// Load reads configuration from a .env file (when present) and the process
// environment. A TOKEN_TTL of zero or empty issues non-expiring tokens.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:       getEnv("JWT_SECRET", "customized-secret-key"),
		TokenTTL:        getDurationEnv("TOKEN_TTL", 0),
		PasswordScheme:  getEnv("PASSWORD_SCHEME", "bcrypt"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Invalid %s value %q, using default.", key, value)
		return defaultValue
	}
	return d
}
