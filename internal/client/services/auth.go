// Package services contains application services for the Volunteam client.
// This file defines the authentication service: the launch-time session
// restore and the login/logout flows that tie together the API client, the
// session store, the in-memory session state, and the navigation gate.
package services

import (
	"context"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
	"github.com/dmitrijs2005/volunteam/internal/client/navigation"
	"github.com/dmitrijs2005/volunteam/internal/client/session"
	"github.com/dmitrijs2005/volunteam/internal/logging"
)

// Authenticator is the slice of the API client the service needs.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

// SessionStore is the slice of the durable session store the service needs.
// Both operations are fail-soft.
type SessionStore interface {
	SaveSession(ctx context.Context, u *models.User, token string)
	Clear(ctx context.Context)
}

// AuthService defines the session lifecycle operations for the client.
//
// Contract:
//   - Restore: run the launch sequence and resolve the initial route.
//   - Login: authenticate against the server, persist the session, update
//     in-memory state, and fire the navigation transition — in that order.
//   - Logout: drop the persisted and in-memory session.
type AuthService interface {
	Restore(ctx context.Context) navigation.Route
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context)
}

type authService struct {
	api   Authenticator
	store SessionStore
	state *session.State
	gate  *navigation.Gate
	log   logging.Logger
}

// NewAuthService constructs an AuthService over the given collaborators.
func NewAuthService(api Authenticator, store SessionStore, state *session.State, gate *navigation.Gate, log logging.Logger) AuthService {
	return &authService{api: api, store: store, state: state, gate: gate, log: log}
}

// Restore resolves the initial route from the cached session.
func (s *authService) Restore(ctx context.Context) navigation.Route {
	route := s.gate.Resolve(ctx)
	s.log.Info(ctx, "session restored", "route", route.String(), "authenticated", s.state.IsAuthenticated())
	return route
}

// Login submits the (already sanitized) credentials. On success the session
// is persisted first, then mirrored into the in-memory state, and only then
// is the navigation transition fired, so a half-written session can never
// authorize navigation.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.api.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	u := resp.User
	s.store.SaveSession(ctx, &u, resp.AccessToken)
	s.state.SetUser(&u)
	s.gate.CompleteLogin()

	s.log.Info(ctx, "login succeeded", "user", u.ID)
	return &u, nil
}

// Logout clears the persisted session records and the in-memory user.
// The navigation gate defines no reverse transition; the next launch
// resolves to the login flow naturally.
func (s *authService) Logout(ctx context.Context) {
	s.store.Clear(ctx)
	s.state.SetUser(nil)
	s.log.Info(ctx, "logged out")
}
