// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package appcontext_test

import (
	"context"
	"testing"

	"codeberg.org/mvisser/accountportal/internal/appcontext"
	"codeberg.org/mvisser/accountportal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWithUser(t *testing.T) {
	user := &models.User{ID: 1, Name: "Ann"}
	ctx := appcontext.WithUser(context.Background(), user)

	assert.Equal(t, user, appcontext.GetUser(ctx))
	assert.True(t, appcontext.IsAuthenticated(ctx))
}

func TestGetUser_Anonymous(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, appcontext.GetUser(ctx))
	assert.False(t, appcontext.IsAuthenticated(ctx))
}
