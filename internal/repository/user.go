// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"codeberg.org/mvisser/accountportal/internal/models"
)

// CreateUser inserts a new user and fills in its assigned ID.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, username, email, password_hash, verification_token, is_verified)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.Username, user.Email, user.PasswordHash, user.VerificationToken, user.IsVerified)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their exact email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// EmailExists checks if a user with the given email exists.
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE email = ?`, email)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UsernameExists checks if a user with the given username exists.
func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE username = ?`, username)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ConsumeVerificationToken marks the user holding the token as verified and
// clears the token. The conditional WHERE makes consumption at-most-once:
// a concurrent attempt with the same token sees zero affected rows.
// Returns ErrNotFound when the token does not match any user.
func (r *Repository) ConsumeVerificationToken(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET is_verified = 1, verification_token = NULL, updated_at = CURRENT_TIMESTAMP
		 WHERE verification_token = ?`,
		token)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
