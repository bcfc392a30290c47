package player

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new SQL backed Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// NewPlayer validates the name and stamps a fresh ID and creation time.
// CreatedAt is truncated to milliseconds, the precision both backends keep.
func NewPlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrInvalidName
	}
	return Player{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.UnixMilli(time.Now().UnixMilli()).UTC(),
	}, nil
}

// ListAll returns all players in insertion order.
func (s *store) ListAll(ctx context.Context) ([]Player, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM players ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		var p Player
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		p.CreatedAt = time.UnixMilli(createdAt).UTC()
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

func (s *store) Add(ctx context.Context, name string) (Player, error) {
	p, err := NewPlayer(name)
	if err != nil {
		return Player{}, err
	}
	_, err = s.db.ExecContext(ctx, "INSERT INTO players (id, name, created_at) VALUES (?, ?, ?)", p.ID, p.Name, p.CreatedAt.UnixMilli())
	if err != nil {
		return Player{}, fmt.Errorf("failed to add player %q: %w", p.Name, err)
	}
	log.Info("Added player to the store", "playerID", p.ID, "name", p.Name)
	return p, nil
}

func (s *store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to remove player %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPlayerNotFound
	}
	log.Info("Removed player from the store", "playerID", id)
	return nil
}

// Clear deletes every player.
func (s *store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM players"); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}
	log.Info("Player store cleared")
	return nil
}

func (s *store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
