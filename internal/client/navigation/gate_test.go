package navigation

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
	"github.com/dmitrijs2005/volunteam/internal/client/session"
)

// fakeStore implements SessionReader for tests.
type fakeStore struct {
	user  *models.User
	token string
}

func (f *fakeStore) User(ctx context.Context) (*models.User, bool) {
	return f.user, f.user != nil
}

func (f *fakeStore) AccessToken(ctx context.Context) (string, bool) {
	return f.token, f.token != ""
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newGateAt(store SessionReader, state *session.State, now time.Time) *Gate {
	g := NewGate(store, state)
	g.now = func() time.Time { return now }
	return g
}

func TestGate_StartsUnauthenticated(t *testing.T) {
	g := NewGate(&fakeStore{}, session.NewState())
	assert.Equal(t, RouteLogin, g.Current())
}

func TestResolve_NothingCached(t *testing.T) {
	state := session.NewState()
	g := newGateAt(&fakeStore{}, state, time.Now())

	assert.Equal(t, RouteLogin, g.Resolve(context.Background()))
	assert.False(t, state.IsAuthenticated())
}

func TestResolve_UserAndValidToken(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		user:  &models.User{ID: "u1", Name: "Joao"},
		token: tokenExpiringAt(t, now.Add(time.Hour)),
	}
	state := session.NewState()
	g := newGateAt(store, state, now)

	assert.Equal(t, RouteEvents, g.Resolve(context.Background()))
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, 1, g.transitions)
}

func TestResolve_UserWithExpiredToken_StaysOnLogin(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		user:  &models.User{ID: "u1"},
		token: tokenExpiringAt(t, now.Add(-time.Minute)),
	}
	state := session.NewState()
	g := newGateAt(store, state, now)

	assert.Equal(t, RouteLogin, g.Resolve(context.Background()))
	// The stale user record is still rendered in the session state.
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, 0, g.transitions)
}

func TestResolve_UserWithoutToken_StaysOnLogin(t *testing.T) {
	store := &fakeStore{user: &models.User{ID: "u1"}}
	g := newGateAt(store, session.NewState(), time.Now())

	assert.Equal(t, RouteLogin, g.Resolve(context.Background()))
}

func TestResolve_TokenWithoutUser_StaysOnLogin(t *testing.T) {
	now := time.Now()
	store := &fakeStore{token: tokenExpiringAt(t, now.Add(time.Hour))}
	state := session.NewState()
	g := newGateAt(store, state, now)

	assert.Equal(t, RouteLogin, g.Resolve(context.Background()))
	assert.False(t, state.IsAuthenticated())
}

func TestCompleteLogin_TransitionsExactlyOnce(t *testing.T) {
	g := NewGate(&fakeStore{}, session.NewState())

	g.CompleteLogin()
	require.Equal(t, RouteEvents, g.Current())
	require.Equal(t, 1, g.transitions)

	// Re-entrant guard: the login flow is no longer reachable.
	g.CompleteLogin()
	assert.Equal(t, RouteEvents, g.Current())
	assert.Equal(t, 1, g.transitions)
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "login", RouteLogin.String())
	assert.Equal(t, "events", RouteEvents.String())
}
