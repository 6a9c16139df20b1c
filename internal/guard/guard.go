// Package guard gates protected commands on the presence of a stored
// credential. It is the CLI's rendition of a protected route: a missing
// credential is not an error condition but the routine "logged out" branch,
// answered by routing the user to login.
package guard

import (
	"context"
	"errors"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/session"
)

// State of the guard for one resolution.
type State int

const (
	// Unknown is the initial state: the credential has not been read yet.
	// Guarded work never runs from here.
	Unknown State = iota
	Authorized
	Unauthorized
)

func (s State) String() string {
	switch s {
	case Authorized:
		return "authorized"
	case Unauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// ErrUnauthorized reports the logged-out branch. Callers redirect to the
// login entry point instead of showing it to the user as a failure.
var ErrUnauthorized = errors.New("not logged in")

// Guard resolves authorization from the credential store on each use.
type Guard struct {
	store session.Store
}

func New(store session.Store) *Guard {
	return &Guard{store: store}
}

// Resolve reads the credential store and reports Authorized or
// Unauthorized. A store read failure resolves to Unauthorized: without a
// readable credential the guarded content must not render.
func (g *Guard) Resolve(ctx context.Context) State {
	token, err := g.store.Read(ctx)
	if err != nil || token == "" {
		return Unauthorized
	}
	return Authorized
}

// Do runs fn only when the guard resolves Authorized; otherwise it returns
// ErrUnauthorized and fn never runs, not even partially.
func (g *Guard) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if g.Resolve(ctx) != Authorized {
		return ErrUnauthorized
	}
	return fn(ctx)
}
