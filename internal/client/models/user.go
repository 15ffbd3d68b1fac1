// Package models defines client-side data models shared by the Volunteam CLI.
package models

// User identifies the authenticated principal as returned by the server.
// The record is never mutated locally, only replaced wholesale on re-login.
type User struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"id"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Email is the address the user logs in with.
	Email string `json:"email"`

	// Avatar is an optional profile image URL.
	Avatar string `json:"avatar,omitempty"`
}

// AuthResponse is the success payload of POST /login.
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}
