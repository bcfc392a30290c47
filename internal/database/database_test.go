package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	// Check if the 'players' table was created
	var playersTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='players'").Scan(&playersTableName)
	require.NoError(t, err, "Querying for players table should not produce an error")
	assert.Equal(t, "players", playersTableName, "The 'players' table should be created")

	var indexName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='idx_players_created_at'").Scan(&indexName)
	require.NoError(t, err)
	assert.Equal(t, "idx_players_created_at", indexName)
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.db")

	db, teardown, err := InitDB(path, "", "")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO players (id, name, created_at) VALUES ('p1', 'Player One', 1)")
	require.NoError(t, err)
	teardown()

	// Reopening runs the migrations again and must keep existing rows.
	db, teardown, err = InitDB(path, "", "")
	require.NoError(t, err)
	defer teardown()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM players").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLibsqlDSN(t *testing.T) {
	tests := []struct {
		name       string
		primaryURL string
		token      string
		want       string
	}{
		{"adds token", "libsql://db.turso.io", "secret", "libsql://db.turso.io?authToken=secret"},
		{"keeps existing query", "libsql://db.turso.io?tls=1", "secret", "libsql://db.turso.io?authToken=secret&tls=1"},
		{"replaces existing token", "libsql://db.turso.io?authToken=old", "new", "libsql://db.turso.io?authToken=new"},
		{"escapes token", "libsql://db.turso.io", "a+b/c=", "libsql://db.turso.io?authToken=a%2Bb%2Fc%3D"},
		{"no token", "http://127.0.0.1:8080", "", "http://127.0.0.1:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := libsqlDSN(tt.primaryURL, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := libsqlDSN("://missing-scheme", "secret")
	assert.Error(t, err)
}
