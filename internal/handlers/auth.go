// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"codeberg.org/mvisser/accountportal/internal/appcontext"
	"codeberg.org/mvisser/accountportal/internal/i18n"
	"codeberg.org/mvisser/accountportal/internal/services/auth"
	"codeberg.org/mvisser/accountportal/internal/services/session"
	"codeberg.org/mvisser/accountportal/internal/templates"
	"github.com/labstack/echo/v4"
)

// AuthHandlers contains the handlers for login, signup, verification and
// logout.
type AuthHandlers struct {
	authService *auth.Service
	sessions    *session.Manager
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(authService *auth.Service, sessions *session.Manager) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		sessions:    sessions,
	}
}

// popFlash reads and clears the one-shot flash notice, if any.
func (h *AuthHandlers) popFlash(c echo.Context) string {
	cookie, err := c.Cookie(session.FlashCookieName)
	if err != nil {
		return ""
	}

	c.SetCookie(h.sessions.ClearFlashCookie())

	message, ok := h.sessions.DecodeFlash(cookie.Value)
	if !ok {
		return ""
	}
	return message
}

// flashRedirect sets a localized flash notice and redirects.
func (h *AuthHandlers) flashRedirect(c echo.Context, messageID, target string) error {
	message := i18n.T(c.Request().Context(), messageID)

	cookie, err := h.sessions.FlashCookie(message)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusSeeOther, target)
}

// LoginPage renders the login form.
func (h *AuthHandlers) LoginPage(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Login(h.popFlash(c), csrfToken(c)))
}

// Login authenticates the posted credentials and starts a session.
func (h *AuthHandlers) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailNotFound):
			return h.flashRedirect(c, "flash_email_not_found", "/login")
		case errors.Is(err, auth.ErrPasswordIncorrect):
			return h.flashRedirect(c, "flash_password_incorrect", "/login")
		default:
			slog.Error("login_error", "error", err)
			return err
		}
	}

	cookie, err := h.sessions.Create(c.Request().Context(), user.ID)
	if err != nil {
		slog.Error("session_create_error", "error", err, "user_id", user.ID)
		return err
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SignupPage renders the signup form.
func (h *AuthHandlers) SignupPage(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Signup(h.popFlash(c), csrfToken(c)))
}

// Signup creates an unverified account and sends the verification email.
func (h *AuthHandlers) Signup(c echo.Context) error {
	params := auth.RegisterParams{
		Name:     c.FormValue("name"),
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	_, err := h.authService.Register(c.Request().Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			return h.flashRedirect(c, "flash_email_taken", "/signup")
		case errors.Is(err, auth.ErrUsernameTaken):
			return h.flashRedirect(c, "flash_username_taken", "/signup")
		case errors.Is(err, auth.ErrInvalidEmail):
			return h.flashRedirect(c, "flash_invalid_email", "/signup")
		default:
			slog.Error("signup_error", "error", err)
			return err
		}
	}

	return h.flashRedirect(c, "flash_signup_success", "/login")
}

// VerifyEmail consumes a verification token from the emailed link.
func (h *AuthHandlers) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")

	err := h.authService.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return c.String(http.StatusBadRequest, i18n.T(c.Request().Context(), "verify_invalid"))
		}
		slog.Error("verify_error", "error", err)
		return err
	}

	return c.String(http.StatusOK, i18n.T(c.Request().Context(), "verify_success"))
}

// Dashboard renders the dashboard. The route guards guarantee an
// authenticated, verified user by the time this runs.
func (h *AuthHandlers) Dashboard(c echo.Context) error {
	user := appcontext.GetUser(c.Request().Context())
	if user == nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return Render(c, http.StatusOK, templates.Dashboard(user.Name, csrfToken(c)))
}

// Logout destroys the current session and redirects to the login page.
func (h *AuthHandlers) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.sessions.CookieName())
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	expired, err := h.sessions.Destroy(c.Request().Context(), cookie.Value)
	if err != nil {
		slog.Error("logout_error", "error", err)
		return err
	}
	c.SetCookie(expired)

	return c.Redirect(http.StatusSeeOther, "/login")
}
