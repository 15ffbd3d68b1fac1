// Package loginform manages the transient login form: field values,
// per-field validation errors, and sanitization of the submitted email.
// The form is UI-scoped state and is never persisted.
package loginform

import (
	"regexp"
	"strings"
)

// Fixed, user-facing validation messages.
const (
	EmailErrorMessage    = "Please enter a valid email address"
	PasswordErrorMessage = "Password must be at least 6 characters"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the login fields and their validation errors. Zero value is an
// empty form. Not safe for concurrent use; it belongs to a single screen.
type Form struct {
	email         string
	password      string
	emailError    string
	passwordError string
}

func New() *Form {
	return &Form{}
}

// SetEmail updates the email and optimistically clears its error. The value
// is kept verbatim so the user always sees their literal typed text.
func (f *Form) SetEmail(email string) {
	f.email = email
	f.emailError = ""
}

// SetPassword updates the password and optimistically clears its error.
func (f *Form) SetPassword(password string) {
	f.password = password
	f.passwordError = ""
}

func (f *Form) Email() string         { return f.email }
func (f *Form) Password() string      { return f.password }
func (f *Form) EmailError() string    { return f.emailError }
func (f *Form) PasswordError() string { return f.passwordError }

// Validate re-checks both fields, records per-field errors, and reports
// whether the form may be submitted. Validation runs against the sanitized
// email so trailing whitespace does not fail an otherwise valid address.
func (f *Form) Validate() bool {
	if !emailPattern.MatchString(f.SanitizedEmail()) {
		f.emailError = EmailErrorMessage
	}

	if len(f.password) < minPasswordLength {
		f.passwordError = PasswordErrorMessage
	}

	return f.emailError == "" && f.passwordError == ""
}

// SanitizedEmail returns the email as it must be submitted: trimmed and
// lowercased. The form's own field value is left untouched.
func (f *Form) SanitizedEmail() string {
	return strings.ToLower(strings.TrimSpace(f.email))
}

// Reset clears all fields and errors, e.g. after a successful submission.
func (f *Form) Reset() {
	*f = Form{}
}
