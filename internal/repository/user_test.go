// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"codeberg.org/mvisser/accountportal/internal/models"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"codeberg.org/mvisser/accountportal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := &models.User{
		Name:              "Ann",
		Username:          "ann",
		Email:             "a@x.com",
		PasswordHash:      "$2a$10$fakehash",
		VerificationToken: sql.NullString{String: "tok123", Valid: true},
	}

	err := repo.CreateUser(ctx, user)

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	err := repo.CreateUser(ctx, &models.User{
		Name:         "Other",
		Username:     "other",
		Email:        "a@x.com",
		PasswordHash: "hash",
	})

	assert.Error(t, err)
}

func TestGetUserByID(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	created := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	user, err := repo.GetUserByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsVerified)
}

func TestGetUserByID_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetUserByID(context.Background(), 4711)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	created := testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	user, err := repo.GetUserByEmail(ctx, "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@x.com")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEmailExists(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	exists, err := repo.EmailExists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "b@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUsernameExists(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestUser(t, repo, "Ann", "ann", "a@x.com", "pw")

	exists, err := repo.UsernameExists(ctx, "ann")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestConsumeVerificationToken(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	created := testutil.NewUnverifiedUser(t, repo, "Ann", "ann", "a@x.com", "pw", "tok123")

	err := repo.ConsumeVerificationToken(ctx, "tok123")
	require.NoError(t, err)

	user, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.False(t, user.VerificationToken.Valid)
}

func TestConsumeVerificationToken_AtMostOnce(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewUnverifiedUser(t, repo, "Ann", "ann", "a@x.com", "pw", "tok123")

	require.NoError(t, repo.ConsumeVerificationToken(ctx, "tok123"))

	err := repo.ConsumeVerificationToken(ctx, "tok123")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConsumeVerificationToken_Unknown(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	err := repo.ConsumeVerificationToken(context.Background(), "never-issued")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
