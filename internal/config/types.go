package config

import "github.com/charmbracelet/log"

// StoreBackend selects where players are persisted.
type StoreBackend string

const (
	BackendSQLite StoreBackend = "sqlite"
	BackendRedis  StoreBackend = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	Port         string
	StoreBackend StoreBackend
	DBName       string
	Turso        TursoConfig
	Redis        RedisConfig
	LogLevel     log.Level
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
}
