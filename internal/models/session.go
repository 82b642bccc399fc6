// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package models

import "time"

// Session is a server-side session row. The browser only ever sees the
// opaque ID, wrapped in a signed cookie.
type Session struct {
	ID        string    `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the session is past its deadline.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
