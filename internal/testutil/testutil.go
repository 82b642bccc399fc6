// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"codeberg.org/mvisser/accountportal/internal/config"
	"codeberg.org/mvisser/accountportal/internal/database"
	"codeberg.org/mvisser/accountportal/internal/i18n"
	"codeberg.org/mvisser/accountportal/internal/models"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"codeberg.org/mvisser/accountportal/internal/services/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// TestHashKey is a fixed securecookie hash key for tests.
const TestHashKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

var i18nOnce sync.Once

// InitI18n loads the translation bundle once for the test binary.
func InitI18n(t *testing.T) {
	t.Helper()
	i18nOnce.Do(func() {
		if err := i18n.Init(); err != nil {
			t.Fatalf("i18n init: %v", err)
		}
	})
}

// NewTestDB creates an in-memory SQLite database for tests.
// Returns both the database connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, repository.New(db)
}

// NewTestUser creates a verified user with the given email and password.
func NewTestUser(t *testing.T, repo *repository.Repository, name, username, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsVerified:   true,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

// NewUnverifiedUser creates an unverified user holding a verification token.
func NewUnverifiedUser(t *testing.T, repo *repository.Repository, name, username, email, password, token string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:              name,
		Username:          username,
		Email:             email,
		PasswordHash:      string(hash),
		VerificationToken: sql.NullString{String: token, Valid: true},
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

// NewSessionManager creates a session manager with test keys.
func NewSessionManager(t *testing.T, repo *repository.Repository) *session.Manager {
	t.Helper()
	m, err := session.NewManager(repo, &config.SessionConfig{
		CookieName: "_test_session",
		MaxAge:     3600,
		HashKey:    TestHashKey,
	})
	require.NoError(t, err)
	return m
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// SentMail records one delivery made through the FakeMailer.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// FakeMailer records sends instead of talking to an SMTP server.
type FakeMailer struct {
	mu   sync.Mutex
	sent []SentMail

	// Err, when set, is returned by Send to simulate mailer failure.
	Err error
}

// Send records the message, or fails with Err.
func (m *FakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of the recorded deliveries.
func (m *FakeMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SentMail(nil), m.sent...)
}
