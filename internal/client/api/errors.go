package api

import "fmt"

// Error codes carried by AuthenticationError for callers that branch on the
// failure class rather than the message.
const (
	CodeNetworkError = "network_error"
	CodeBadStatus    = "bad_status"
)

// genericErrorMessage is shown when the server's error payload carries no
// message of its own.
const genericErrorMessage = "An unexpected error occurred"

// AuthenticationError is the single normalized error surfaced by the API
// client. Message is human-readable (the server's message when present),
// Code is a machine error class, and Status is the HTTP status, or 0 when
// the request never produced a response.
type AuthenticationError struct {
	Message string
	Code    string
	Status  int

	err error
}

func (e *AuthenticationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.err
}
