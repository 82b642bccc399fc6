// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenLength is the number of random bytes in a verification token.
const tokenLength = 32

// newVerificationToken returns a hex-encoded token with 256 bits of entropy.
func newVerificationToken() (string, error) {
	bytes := make([]byte, tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
