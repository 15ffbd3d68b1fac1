package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/volunteam/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login runs one login attempt: prompt for credentials, validate them with
// the login form, and submit the sanitized email to the auth service.
//
// Field-level validation errors are printed inline and never reach the
// server. A terminal authentication error is shown as a blocking alert-style
// message; in both cases the form keeps the typed input so the user can
// correct it on the next attempt. Only a successful login resets the form.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	a.form.SetEmail(email)
	a.form.SetPassword(password)

	if !a.form.Validate() {
		if e := a.form.EmailError(); e != "" {
			fmt.Println("  email:", e)
		}
		if e := a.form.PasswordError(); e != "" {
			fmt.Println("  password:", e)
		}
		return nil
	}

	user, err := a.authService.Login(ctx, a.form.SanitizedEmail(), a.form.Password())
	if err != nil {
		var authErr *api.AuthenticationError
		if errors.As(err, &authErr) {
			fmt.Println("Authentication Error:", authErr.Message)
			return nil
		}
		return err
	}

	a.form.Reset()
	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Logout drops the cached and in-memory session.
func (a *App) Logout(ctx context.Context) {
	a.authService.Logout(ctx)
	fmt.Println("Logged out.")
}
