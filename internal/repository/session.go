// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"codeberg.org/mvisser/accountportal/internal/models"
)

// CreateSession inserts a new session row.
func (r *Repository) CreateSession(ctx context.Context, session *models.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`,
		session.ID, session.UserID, session.ExpiresAt)
	return err
}

// GetSession retrieves a session by its opaque ID.
func (r *Repository) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `SELECT * FROM sessions WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &session, nil
}

// DeleteSession deletes a session by ID.
func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// DeleteUserSessions deletes all sessions for a user.
func (r *Repository) DeleteUserSessions(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

// DeleteExpiredSessions deletes sessions past their deadline.
func (r *Repository) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, time.Now())
	return err
}
