// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"
	"time"

	"codeberg.org/mvisser/accountportal/internal/models"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"codeberg.org/mvisser/accountportal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetSession(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	sess := &models.Session{
		ID:        "sess-1",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateSession(ctx, sess))

	got, err := repo.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.False(t, got.Expired())
}

func TestGetSession_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetSession(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteSession(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")
	sess := &models.Session{ID: "sess-1", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(ctx, sess))

	require.NoError(t, repo.DeleteSession(ctx, "sess-1"))

	_, err := repo.GetSession(ctx, "sess-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteUserSessions(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")
	expires := time.Now().Add(time.Hour)
	require.NoError(t, repo.CreateSession(ctx, &models.Session{ID: "s1", UserID: user.ID, ExpiresAt: expires}))
	require.NoError(t, repo.CreateSession(ctx, &models.Session{ID: "s2", UserID: user.ID, ExpiresAt: expires}))

	require.NoError(t, repo.DeleteUserSessions(ctx, user.ID))

	_, err := repo.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetSession(ctx, "s2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteExpiredSessions(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")
	require.NoError(t, repo.CreateSession(ctx, &models.Session{
		ID: "old", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, repo.CreateSession(ctx, &models.Session{
		ID: "live", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteExpiredSessions(ctx))

	_, err := repo.GetSession(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetSession(ctx, "live")
	assert.NoError(t, err)
}
