package player_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/rollforteams/internal/database"
	"github.com/mauv0809/rollforteams/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (player.Store, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	return player.New(db), db, teardown
}

func TestListAll_Empty(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	players, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestAddAndListAll(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	names := []string{"Zoe", "Adam", "Mia"}
	var added []player.Player
	for _, name := range names {
		p, err := store.Add(ctx, name)
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		added = append(added, p)
	}

	players, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)

	// Insertion order, not alphabetical.
	for i, p := range players {
		assert.Equal(t, added[i].ID, p.ID)
		assert.Equal(t, names[i], p.Name)
		assert.True(t, added[i].CreatedAt.Equal(p.CreatedAt))
	}
}

func TestAdd_TrimsAndRejectsEmptyNames(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	p, err := store.Add(ctx, "  Player One  ")
	require.NoError(t, err)
	assert.Equal(t, "Player One", p.Name)

	_, err = store.Add(ctx, "   ")
	assert.ErrorIs(t, err, player.ErrInvalidName)

	players, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestRemove(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	p1, err := store.Add(ctx, "Player One")
	require.NoError(t, err)
	p2, err := store.Add(ctx, "Player Two")
	require.NoError(t, err)

	t.Run("removes an existing player", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, p1.ID))

		players, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, p2.ID, players[0].ID)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		err := store.Remove(ctx, p1.ID)
		assert.ErrorIs(t, err, player.ErrPlayerNotFound)
	})
}

func TestClear(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO players (id, name, created_at) VALUES
		('p1', 'Player One', 1),
		('p2', 'Player Two', 2)`)
	require.NoError(t, err)

	players, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 2)

	require.NoError(t, store.Clear(ctx))

	players, err = store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestListAll_ClosedDatabase(t *testing.T) {
	store, db, _ := setupTestDB(t)
	require.NoError(t, db.Close())

	_, err := store.ListAll(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}
