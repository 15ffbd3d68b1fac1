package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
)

// TokenSource yields the bearer token to attach to outbound requests.
// The read is fail-soft: ok == false means "no token available right now".
type TokenSource interface {
	AccessToken(ctx context.Context) (string, bool)
}

// bearerTransport attaches the current access token and a request ID to every
// outbound request. The token is read from the source on each request, never
// cached, so a rotated token takes effect immediately. When the read misses,
// the request proceeds without credentials instead of failing.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating: RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())

	if token, ok := t.tokens.AccessToken(req.Context()); ok && token != "" {
		req.Header.Set(authorizationHeader, "Bearer "+token)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	return t.base.RoundTrip(req)
}
