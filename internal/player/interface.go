package player

import "context"

// Repository is the read side consumed by the page handlers.
type Repository interface {
	// ListAll returns every player in the order the backing store keeps them.
	ListAll(ctx context.Context) ([]Player, error)
}

// Store is the full player store used by seeding and admin tooling.
type Store interface {
	Repository
	Add(ctx context.Context, name string) (Player, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
