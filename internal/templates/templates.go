// Copyright 2026 Maarten Visser
// Licensed under the EUPL-1.2

// Package templates holds the page components. They are authored directly
// against the templ API since the pages are small and static.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps body content in the shared HTML layout.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/style.css"></head><body><main class="container">`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func raw(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// flashBlock renders a flash notice, or nothing when the message is empty.
func flashBlock(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<p class="flash" role="alert">%s</p>`, templ.EscapeString(message))
		return err
	})
}

// csrfField renders the hidden CSRF form field.
func csrfField(token string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<input type="hidden" name="csrf_token" value="%s">`, templ.EscapeString(token))
		return err
	})
}

// Home renders the landing page.
func Home() templ.Component {
	return page("Home", raw(
		`<h1>Welcome</h1>`+
			`<p>Create an account or log in to reach your dashboard.</p>`+
			`<nav><a href="/login">Log in</a> <a href="/signup">Sign up</a> <a href="/learnmore">Learn more</a></nav>`))
}

// LearnMore renders the learn-more page.
func LearnMore() templ.Component {
	return page("Learn More", raw(
		`<h1>Learn More</h1>`+
			`<p>Sign up with your email address, confirm the verification link we send you and log in.</p>`+
			`<p><a href="/">Back</a></p>`))
}

// Documentation renders the documentation page.
func Documentation() templ.Component {
	return page("Documentation", raw(
		`<h1>Documentation</h1>`+
			`<p>Accounts require a verified email address before the dashboard becomes available.</p>`+
			`<p><a href="/">Back</a></p>`))
}

// Login renders the login form with an optional flash message.
func Login(flash, csrfToken string) templ.Component {
	return page("Log in", templ.Join(
		raw(`<h1>Log in</h1>`),
		flashBlock(flash),
		raw(`<form method="post" action="/login">`),
		csrfField(csrfToken),
		raw(`<label>Email <input type="email" name="email" required></label>`+
			`<label>Password <input type="password" name="password" required></label>`+
			`<button type="submit">Log in</button>`+
			`</form>`+
			`<p>No account yet? <a href="/signup">Sign up</a></p>`),
	))
}

// Signup renders the signup form with an optional flash message.
func Signup(flash, csrfToken string) templ.Component {
	return page("Sign up", templ.Join(
		raw(`<h1>Sign up</h1>`),
		flashBlock(flash),
		raw(`<form method="post" action="/signup">`),
		csrfField(csrfToken),
		raw(`<label>Name <input type="text" name="name" required></label>`+
			`<label>Username <input type="text" name="username" required></label>`+
			`<label>Email <input type="email" name="email" required></label>`+
			`<label>Password <input type="password" name="password" required></label>`+
			`<button type="submit">Sign up</button>`+
			`</form>`+
			`<p>Already registered? <a href="/login">Log in</a></p>`),
	))
}

// Dashboard renders the dashboard for a verified user.
func Dashboard(name, csrfToken string) templ.Component {
	greeting := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Dashboard</h1><p>Hello, %s!</p>`, templ.EscapeString(name))
		return err
	})

	return page("Dashboard", templ.Join(
		greeting,
		raw(`<form method="post" action="/logout">`),
		csrfField(csrfToken),
		raw(`<button type="submit">Log out</button></form>`),
	))
}

// NotFoundPage renders the 404 page.
func NotFoundPage() templ.Component {
	return page("Page not found", raw(
		`<h1>404</h1><p>Page not found</p><p><a href="/">Back to start</a></p>`))
}
