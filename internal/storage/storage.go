package storage

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rollforteams/internal/config"
	"github.com/mauv0809/rollforteams/internal/database"
	"github.com/mauv0809/rollforteams/internal/player"
	"github.com/mauv0809/rollforteams/internal/player/redis"
)

// Open connects the player store selected by cfg.StoreBackend.
// The returned teardown releases the underlying connections.
func Open(cfg config.Config) (player.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		s, err := redis.New(redis.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using Redis player store")
		teardown := func() {
			if err := s.Close(); err != nil {
				log.Error("Failed to close redis client", "error", err)
			}
		}
		return s, teardown, nil
	case config.BackendSQLite, "":
		db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			return nil, nil, err
		}
		return player.New(db), teardown, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
