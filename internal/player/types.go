package player

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidName    = errors.New("player name must not be empty")
)

// store handles all database operations for players.
type store struct {
	db *sql.DB
}

// Player represents a participant in the roll for teams pool.
type Player struct {
	ID        string    `json:"id" msgpack:"id"`
	Name      string    `json:"name" msgpack:"name"`
	CreatedAt time.Time `json:"created_at" msgpack:"created_at"`
}
