// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package session manages server-side sessions. The session row lives in
// the database keyed by an opaque ID; the browser holds that ID wrapped in
// a securecookie-signed cookie and nothing else.
package session

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"codeberg.org/mvisser/accountportal/internal/config"
	"codeberg.org/mvisser/accountportal/internal/models"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// ErrNoSession is returned when a cookie does not resolve to a live session.
var ErrNoSession = errors.New("no valid session")

// Manager creates, resolves and destroys sessions.
type Manager struct {
	repo       *repository.Repository
	codec      *securecookie.SecureCookie
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewManager creates a session manager from configuration. An empty hash
// key generates an ephemeral one, which invalidates cookies on restart.
func NewManager(repo *repository.Repository, cfg *config.SessionConfig) (*Manager, error) {
	hashKey, err := keyFromHex(cfg.HashKey)
	if err != nil {
		return nil, fmt.Errorf("invalid session hash key: %w", err)
	}
	if hashKey == nil {
		slog.Warn("session hash key not configured, generating ephemeral key")
		hashKey = securecookie.GenerateRandomKey(64)
	}

	blockKey, err := keyFromHex(cfg.BlockKey)
	if err != nil {
		return nil, fmt.Errorf("invalid session block key: %w", err)
	}

	return &Manager{
		repo:       repo,
		codec:      securecookie.New(hashKey, blockKey),
		cookieName: cfg.CookieName,
		maxAge:     time.Duration(cfg.MaxAge) * time.Second,
		secure:     cfg.CookieSecure,
	}, nil
}

func keyFromHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

// CookieName returns the configured session cookie name.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// Create starts a new session for the user and returns the cookie to set.
// A fresh session ID is issued on every login, never reused.
func (m *Manager) Create(ctx context.Context, userID int64) (*http.Cookie, error) {
	sess := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.maxAge),
	}

	if err := m.repo.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	encoded, err := m.codec.Encode(m.cookieName, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session cookie: %w", err)
	}

	return m.newCookie(encoded, int(m.maxAge.Seconds())), nil
}

// Resolve maps a cookie value to a live session. Tampered cookies, unknown
// IDs and expired sessions all come back as ErrNoSession; expired rows are
// deleted on the way out.
func (m *Manager) Resolve(ctx context.Context, cookieValue string) (*models.Session, error) {
	var id string
	if err := m.codec.Decode(m.cookieName, cookieValue, &id); err != nil {
		return nil, ErrNoSession
	}

	sess, err := m.repo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if sess.Expired() {
		if err := m.repo.DeleteSession(ctx, sess.ID); err != nil {
			slog.Error("failed to delete expired session", "error", err)
		}
		return nil, ErrNoSession
	}

	return sess, nil
}

// Destroy removes the session referenced by the cookie value and returns
// the expired cookie to send to the client.
func (m *Manager) Destroy(ctx context.Context, cookieValue string) (*http.Cookie, error) {
	var id string
	if err := m.codec.Decode(m.cookieName, cookieValue, &id); err == nil {
		if err := m.repo.DeleteSession(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete session: %w", err)
		}
	}

	return m.newCookie("", -1), nil
}

func (m *Manager) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
