// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package appcontext provides typed context keys and accessors shared
// across packages.
package appcontext

import (
	"context"

	"codeberg.org/mvisser/accountportal/internal/models"
)

type userContextKey struct{}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns the authenticated user from the context, or nil if the
// request is anonymous.
func GetUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userContextKey{}).(*models.User); ok {
		return user
	}
	return nil
}

// IsAuthenticated returns true if the context has an authenticated user.
func IsAuthenticated(ctx context.Context) bool {
	return GetUser(ctx) != nil
}
