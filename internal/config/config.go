package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	backend := StoreBackend(strings.ToLower(getEnv("STORE_BACKEND", string(BackendSQLite))))
	switch backend {
	case BackendSQLite, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	getInt := func(key string, fallback int) (int, error) {
		raw := getEnv(key, "")
		if raw == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, raw)
		}
		return n, nil
	}

	poolSize, err := getInt("REDIS_POOL_SIZE", 10)
	if err != nil {
		return Config{}, err
	}
	minIdle, err := getInt("REDIS_MIN_IDLE_CONNS", 2)
	if err != nil {
		return Config{}, err
	}

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: backend,
		DBName:       getEnv("DB_NAME", "rollforteams.db"),
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		Redis: RedisConfig{
			URL:          getEnv("REDIS_URL", "redis://localhost:6379"),
			PoolSize:     poolSize,
			MinIdleConns: minIdle,
		},
		LogLevel: level,
	}
	return cfg, nil
}
