// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package session_test

import (
	"context"
	"testing"
	"time"

	"codeberg.org/mvisser/accountportal/internal/config"
	"codeberg.org/mvisser/accountportal/internal/models"
	"codeberg.org/mvisser/accountportal/internal/services/session"
	"codeberg.org/mvisser/accountportal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndResolve(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	cookie, err := m.Create(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "_test_session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	// Cookie carries the signed reference, never the session ID itself
	assert.NotEmpty(t, cookie.Value)

	sess, err := m.Resolve(ctx, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
}

func TestResolve_TamperedCookie(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)

	_, err := m.Resolve(context.Background(), "garbage-value")

	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestResolve_FreshIDPerLogin(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	c1, err := m.Create(ctx, user.ID)
	require.NoError(t, err)
	c2, err := m.Create(ctx, user.ID)
	require.NoError(t, err)

	s1, err := m.Resolve(ctx, c1.Value)
	require.NoError(t, err)
	s2, err := m.Resolve(ctx, c2.Value)
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)
}

func TestResolve_Expired(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	m, err := session.NewManager(repo, &config.SessionConfig{
		CookieName: "_test_session",
		MaxAge:     -1, // already past deadline on creation
		HashKey:    testutil.TestHashKey,
	})
	require.NoError(t, err)

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")
	cookie, err := m.Create(ctx, user.ID)
	require.NoError(t, err)

	_, err = m.Resolve(ctx, cookie.Value)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestDestroy(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")
	cookie, err := m.Create(ctx, user.ID)
	require.NoError(t, err)

	expired, err := m.Destroy(ctx, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, -1, expired.MaxAge)
	assert.Empty(t, expired.Value)

	_, err = m.Resolve(ctx, cookie.Value)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestDestroy_GarbageCookie(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)

	expired, err := m.Destroy(context.Background(), "garbage")

	require.NoError(t, err)
	assert.Equal(t, -1, expired.MaxAge)
}

func TestFlashRoundTrip(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)

	cookie, err := m.FlashCookie("Email not found")
	require.NoError(t, err)
	assert.Equal(t, session.FlashCookieName, cookie.Name)

	message, ok := m.DecodeFlash(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "Email not found", message)
}

func TestDecodeFlash_Tampered(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	m := testutil.NewSessionManager(t, repo)

	_, ok := m.DecodeFlash("garbage")

	assert.False(t, ok)
}

func TestSessionExpiredHelper(t *testing.T) {
	live := &models.Session{ExpiresAt: time.Now().Add(time.Minute)}
	stale := &models.Session{ExpiresAt: time.Now().Add(-time.Minute)}

	assert.False(t, live.Expired())
	assert.True(t, stale.Expired())
}
