// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package middleware provides the access-gate middleware.
package middleware

import (
	"errors"
	"net/http"

	"codeberg.org/mvisser/accountportal/internal/appcontext"
	"codeberg.org/mvisser/accountportal/internal/i18n"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"codeberg.org/mvisser/accountportal/internal/services/session"
	"github.com/labstack/echo/v4"
)

// LoadUser resolves the session cookie on every request and attaches the
// user to the request context. Anything that fails to resolve (no cookie,
// tampered cookie, expired session, deleted user) leaves the request
// anonymous; it never errors the request.
func LoadUser(sessions *session.Manager, repo *repository.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessions.CookieName())
			if err != nil {
				return next(c)
			}

			sess, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					return err
				}
				return next(c)
			}

			user, err := repo.GetUserByID(c.Request().Context(), sess.UserID)
			if err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				return next(c)
			}

			ctx := appcontext.WithUser(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireAuthenticated redirects anonymous requests to the login page.
func RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !appcontext.IsAuthenticated(c.Request().Context()) {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// RequireVerified sends authenticated but unverified users back to the
// login page with a notice. Stacked after RequireAuthenticated.
func RequireVerified(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := appcontext.GetUser(c.Request().Context())
			if user == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if !user.IsVerified {
				message := i18n.T(c.Request().Context(), "flash_verify_first")
				if cookie, err := sessions.FlashCookie(message); err == nil {
					c.SetCookie(cookie)
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// RequireAnonymous keeps logged-in users away from the login and signup
// pages by redirecting them to the dashboard.
func RequireAnonymous(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if appcontext.IsAuthenticated(c.Request().Context()) {
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return next(c)
	}
}
