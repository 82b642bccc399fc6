// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package session

import "net/http"

// FlashCookieName is the one-shot notice cookie, read and cleared on the
// next page render.
const FlashCookieName = "_flash"

// FlashCookie encodes a one-shot notice into a signed cookie.
func (m *Manager) FlashCookie(message string) (*http.Cookie, error) {
	encoded, err := m.codec.Encode(FlashCookieName, message)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     FlashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// DecodeFlash extracts the notice from a flash cookie value. Tampered or
// stale cookies read as absent.
func (m *Manager) DecodeFlash(cookieValue string) (string, bool) {
	var message string
	if err := m.codec.Decode(FlashCookieName, cookieValue, &message); err != nil {
		return "", false
	}
	return message, true
}

// ClearFlashCookie returns the cookie that removes the flash notice.
func (m *Manager) ClearFlashCookie() *http.Cookie {
	return &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
