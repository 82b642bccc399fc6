// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package models defines the persistent data types.
package models

import (
	"database/sql"
	"time"
)

// User is an account row. VerificationToken is set while the account is
// unverified and cleared in the same statement that sets IsVerified.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID                int64          `db:"id" json:"id"`
	Name              string         `db:"name" json:"name"`
	Username          string         `db:"username" json:"username"`
	Email             string         `db:"email" json:"email"`
	PasswordHash      string         `db:"password_hash" json:"-"`
	VerificationToken sql.NullString `db:"verification_token" json:"-"`
	IsVerified        bool           `db:"is_verified" json:"is_verified"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}
