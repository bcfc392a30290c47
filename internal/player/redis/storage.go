package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mauv0809/rollforteams/internal/player"
)

// Storage is a Redis-backed implementation of player.Store.
// Players are msgpack encoded; their order lives in a sorted set
// scored by an insertion counter.
type Storage struct {
	client *redis.Client
}

// Ensure Storage implements the interface
var _ player.Store = (*Storage)(nil)

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// ListAll returns players in the order they were added.
func (s *Storage) ListAll(ctx context.Context) ([]player.Player, error) {
	ids, err := s.client.ZRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read player index: %w", err)
	}
	players := make([]player.Player, 0, len(ids))
	if len(ids) == 0 {
		return players, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			log.Warn("Player in index has no record", "playerID", ids[i])
			continue
		}
		var p player.Player
		if err := msgpack.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("failed to decode player %s: %w", ids[i], err)
		}
		players = append(players, p)
	}
	return players, nil
}

func (s *Storage) Add(ctx context.Context, name string) (player.Player, error) {
	p, err := player.NewPlayer(name)
	if err != nil {
		return player.Player{}, err
	}
	if err := s.save(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("failed to add player %q: %w", p.Name, err)
	}
	log.Info("Added player to the store", "playerID", p.ID, "name", p.Name)
	return p, nil
}

// save stores p and appends it to the index. The score comes from a
// counter, so players added within the same millisecond keep their order.
func (s *Storage) save(ctx context.Context, p player.Player) error {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return err
	}

	seq, err := s.client.Incr(ctx, sequenceKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate player sequence: %w", err)
	}

	// Use pipeline for atomic save + index update
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(p.ID), data, 0)
		pipe.ZAdd(ctx, playersIndexKey(), redis.Z{Score: float64(seq), Member: p.ID})
		return nil
	})
	return err
}

func (s *Storage) Remove(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, playerKey(id))
		pipe.ZRem(ctx, playersIndexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove player %s: %w", id, err)
	}
	if del.Val() == 0 {
		return player.ErrPlayerNotFound
	}
	log.Info("Removed player from the store", "playerID", id)
	return nil
}

// Clear deletes every player and the index.
func (s *Storage) Clear(ctx context.Context) error {
	ids, err := s.client.ZRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read player index: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, playerKey(id))
	}
	keys = append(keys, playersIndexKey())
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}
	log.Info("Player store cleared", "count", len(ids))
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
