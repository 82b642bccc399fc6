// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP handlers.
package handlers

import (
	"net/http"

	"codeberg.org/mvisser/accountportal/internal/repository"
	"codeberg.org/mvisser/accountportal/internal/templates"
	"github.com/labstack/echo/v4"
)

// Handlers contains the handlers for the public pages.
type Handlers struct {
	repo *repository.Repository
}

// New creates a new Handlers instance.
func New(repo *repository.Repository) *Handlers {
	return &Handlers{repo: repo}
}

// Health returns the health status, including a database ping.
func (h *Handlers) Health(c echo.Context) error {
	if err := h.repo.DB().PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Home renders the landing page.
func (h *Handlers) Home(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Home())
}

// LearnMore renders the learn-more page.
func (h *Handlers) LearnMore(c echo.Context) error {
	return Render(c, http.StatusOK, templates.LearnMore())
}

// Documentation renders the documentation page.
func (h *Handlers) Documentation(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Documentation())
}

// NotFound renders the 404 page for unmatched routes.
func NotFound(c echo.Context) error {
	return Render(c, http.StatusNotFound, templates.NotFoundPage())
}
