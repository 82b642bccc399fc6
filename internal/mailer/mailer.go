// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package mailer sends outgoing email. The Mailer interface keeps the SMTP
// transport out of the handlers and makes it fakeable in tests.
package mailer

import "context"

// Mailer delivers a single message to a recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
