package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, sourced from environment
// variables (optionally seeded from a .env file).
type Config struct {
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
}

// Load reads configuration from the environment. DATABASE_URL and
// REDIS_ADDR are optional: without them the server falls back to the
// in-memory store and the log-only notifier.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          ":8080",
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = fmt.Sprintf(":%s", p)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg
}
