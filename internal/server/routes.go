// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package server

import (
	"codeberg.org/mvisser/accountportal/internal/handlers"
	"codeberg.org/mvisser/accountportal/internal/middleware"
	"codeberg.org/mvisser/accountportal/internal/repository"
	"codeberg.org/mvisser/accountportal/internal/services/auth"
	"codeberg.org/mvisser/accountportal/internal/services/session"
	"github.com/labstack/echo/v4"
)

func setupRoutes(e *echo.Echo, repo *repository.Repository, authService *auth.Service, sessions *session.Manager) {
	e.Use(middleware.LoadUser(sessions, repo))

	h := handlers.New(repo)
	authHandler := handlers.NewAuth(authService, sessions)

	// Static files
	e.Static("/static", "static")

	// Public pages
	e.GET("/", h.Home)
	e.GET("/learnmore", h.LearnMore)
	e.GET("/documentation", h.Documentation)
	e.GET("/health", h.Health)

	// Anonymous-only pages
	e.GET("/login", authHandler.LoginPage, middleware.RequireAnonymous)
	e.POST("/login", authHandler.Login, middleware.RequireAnonymous)
	e.GET("/signup", authHandler.SignupPage, middleware.RequireAnonymous)
	e.POST("/signup", authHandler.Signup, middleware.RequireAnonymous)

	// Verification link from the signup email
	e.GET("/verify-email", authHandler.VerifyEmail)

	// Protected pages
	e.GET("/dashboard", authHandler.Dashboard, middleware.RequireAuthenticated, middleware.RequireVerified(sessions))
	e.DELETE("/logout", authHandler.Logout, middleware.RequireAuthenticated)
	e.POST("/logout", authHandler.Logout, middleware.RequireAuthenticated)

	// Unmatched routes
	e.RouteNotFound("/*", handlers.NotFound)
}
