package loginform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmailFormats(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.org", true},
		{" User@Example.com ", true}, // sanitized before matching
		{"", false},
		{"no-at-sign", false},
		{"user@", false},
		{"@example.com", false},
		{"user@nodot", false},
		{"two words@example.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			f := New()
			f.SetEmail(tc.email)
			f.SetPassword("secret1")

			ok := f.Validate()
			if tc.valid {
				assert.True(t, ok)
				assert.Empty(t, f.EmailError())
			} else {
				assert.False(t, ok)
				assert.Equal(t, EmailErrorMessage, f.EmailError())
			}
		})
	}
}

func TestValidate_PasswordLength(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"", false},
		{"12345", false},
		{"123456", true},
		{"a much longer password", true},
	}

	for _, tc := range tests {
		t.Run(tc.password, func(t *testing.T) {
			f := New()
			f.SetEmail("user@example.com")
			f.SetPassword(tc.password)

			ok := f.Validate()
			if tc.valid {
				assert.True(t, ok)
				assert.Empty(t, f.PasswordError())
			} else {
				assert.False(t, ok)
				assert.Equal(t, PasswordErrorMessage, f.PasswordError())
			}
		})
	}
}

func TestSanitizedEmail_TrimsAndLowercases(t *testing.T) {
	f := New()
	f.SetEmail(" User@Example.com ")

	assert.Equal(t, "user@example.com", f.SanitizedEmail())
	// The echoed value stays exactly as typed.
	assert.Equal(t, " User@Example.com ", f.Email())
}

func TestSetField_ClearsOnlyItsOwnError(t *testing.T) {
	f := New()
	f.SetEmail("bad")
	f.SetPassword("123")
	require.False(t, f.Validate())
	require.NotEmpty(t, f.EmailError())
	require.NotEmpty(t, f.PasswordError())

	// Editing a field clears its error even if the new value is still invalid.
	f.SetEmail("still-bad")
	assert.Empty(t, f.EmailError())
	assert.NotEmpty(t, f.PasswordError())

	f.SetPassword("1234")
	assert.Empty(t, f.PasswordError())
}

func TestReset_ClearsEverything(t *testing.T) {
	f := New()
	f.SetEmail("bad")
	f.SetPassword("123")
	_ = f.Validate()

	f.Reset()

	assert.Empty(t, f.Email())
	assert.Empty(t, f.Password())
	assert.Empty(t, f.EmailError())
	assert.Empty(t, f.PasswordError())
}
