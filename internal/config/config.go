package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds the process configuration, loaded once at startup. The JWT
// settings are handed to the token manager at construction time; nothing
// reads them through globals afterwards.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

const devSecret = "dev-secret-change-in-production"

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/taskdeck?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", devSecret),
		JWTExpiry:   getDurationEnv("JWT_EXPIRY", 24*time.Hour),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
