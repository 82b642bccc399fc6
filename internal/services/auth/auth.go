// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package auth implements registration, login and email verification.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"codeberg.org/mvisser/accountportal/internal/i18n"
	"codeberg.org/mvisser/accountportal/internal/mailer"
	"codeberg.org/mvisser/accountportal/internal/models"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailNotFound     = errors.New("email not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
	ErrInvalidToken      = errors.New("invalid or expired verification token")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidEmail      = errors.New("invalid email format")
)

type Service struct {
	repo    *repository.Repository
	mailer  mailer.Mailer
	baseURL string
}

func NewService(repo *repository.Repository, m mailer.Mailer, baseURL string) *Service {
	return &Service{
		repo:    repo,
		mailer:  m,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// NormalizeEmail lowercases and trims an email address. Emails are
// normalized once on the way in, so store lookups stay exact-match.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// RegisterParams holds the parameters for user registration.
type RegisterParams struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Register creates an unverified user, issues a verification token and
// sends the verification email.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	email := NormalizeEmail(params.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.repo.UsernameExists(ctx, params.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	token, err := newVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &models.User{
		Name:              params.Name,
		Username:          params.Username,
		Email:             email,
		PasswordHash:      passwordHash,
		VerificationToken: sql.NullString{String: token, Valid: true},
		IsVerified:        false,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.sendVerification(ctx, user, token); err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	slog.Info("register_success", "user_id", user.ID, "email", email)

	return user, nil
}

// sendVerification mails the verification link for a freshly issued token.
func (s *Service) sendVerification(ctx context.Context, user *models.User, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, token)

	subject := i18n.T(ctx, "email_verification_subject")
	body := i18n.TData(ctx, "email_verification_body", map[string]any{
		"Name":      user.Name,
		"VerifyURL": verifyURL,
	})

	return s.mailer.Send(ctx, user.Email, subject, body)
}

// Login authenticates a user by email and password. The two failure modes
// are reported separately, matching what the login page shows.
//
// When the email is unknown no bcrypt comparison runs, so the response is
// measurably faster for unknown emails. Known timing side channel, accepted.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("login_failed", "email", email, "reason", "email_not_found")
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Warn("login_failed", "email", email, "reason", "password_incorrect")
			return nil, ErrPasswordIncorrect
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	slog.Info("login_success", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// VerifyEmail consumes a verification token. A token is consumed at most
// once: the repository clears it in the same conditional update that flips
// the verified flag, so a repeat call reports ErrInvalidToken.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	err := s.repo.ConsumeVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Info("verify_failed", "reason", "token_not_found")
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to consume verification token: %w", err)
	}

	slog.Info("verify_success")
	return nil
}
