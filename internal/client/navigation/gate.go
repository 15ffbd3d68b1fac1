// Package navigation decides which flow the client shows: the login flow or
// the authenticated events flow.
package navigation

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
	"github.com/dmitrijs2005/volunteam/internal/client/session"
	"github.com/dmitrijs2005/volunteam/internal/client/token"
)

// Route is one of the gate's two states.
type Route int

const (
	// RouteLogin shows the login flow (unauthenticated).
	RouteLogin Route = iota
	// RouteEvents shows the main events flow (authenticated).
	RouteEvents
)

func (r Route) String() string {
	switch r {
	case RouteEvents:
		return "events"
	default:
		return "login"
	}
}

// SessionReader is the slice of the session store the gate needs at launch.
type SessionReader interface {
	User(ctx context.Context) (*models.User, bool)
	AccessToken(ctx context.Context) (string, bool)
}

// Gate is a two-state machine. It starts at RouteLogin; the only defined
// transition is RouteLogin -> RouteEvents, fired either by a launch-time
// restore that finds a user and a live token, or by a completed login.
// There is no reverse transition.
type Gate struct {
	store SessionReader
	state *session.State

	mu          sync.Mutex
	route       Route
	transitions int

	now func() time.Time
}

func NewGate(store SessionReader, state *session.State) *Gate {
	return &Gate{store: store, state: state, now: time.Now}
}

// Current returns the gate's current route.
func (g *Gate) Current() Route {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.route
}

// Resolve runs the launch sequence: restore the cached user into the session
// state, then check the cached token's expiry. Only the combination of a
// restored user AND a non-expired token authorizes RouteEvents. A stale user
// record alone is still surfaced in the session state, but does not
// authorize navigation.
func (g *Gate) Resolve(ctx context.Context) Route {
	if u, ok := g.store.User(ctx); ok {
		g.state.SetUser(u)
	}

	tok, ok := g.store.AccessToken(ctx)
	if !ok || token.IsExpired(tok, g.now()) {
		return g.Current()
	}
	if !g.state.IsAuthenticated() {
		return g.Current()
	}

	g.transition()
	return g.Current()
}

// CompleteLogin fires the RouteLogin -> RouteEvents transition after a
// successful login has been persisted and mirrored into the session state.
// Once authenticated, further calls are no-ops: the login flow is no longer
// reachable.
func (g *Gate) CompleteLogin() {
	g.transition()
}

func (g *Gate) transition() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.route == RouteEvents {
		return
	}
	g.route = RouteEvents
	g.transitions++
}
