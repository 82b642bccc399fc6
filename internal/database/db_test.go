// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package database_test

import (
	"context"
	"testing"

	"codeberg.org/mvisser/accountportal/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemory(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PingContext(context.Background()))
}

func TestOpen_RunsMigrations(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"users", "sessions"} {
		var count int
		err := db.Get(&count,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestOpen_UniqueEmailIndex(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO users (name, username, email, password_hash) VALUES ('A', 'a', 'a@x.com', 'h')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (name, username, email, password_hash) VALUES ('B', 'b', 'a@x.com', 'h')`)
	assert.Error(t, err)
}
