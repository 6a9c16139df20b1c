package guard

import (
	"context"
	"errors"
	"testing"
)

type memStore struct {
	token   string
	readErr error
}

func (s *memStore) Save(_ context.Context, t string) error { s.token = t; return nil }
func (s *memStore) Read(context.Context) (string, error)   { return s.token, s.readErr }
func (s *memStore) Clear(context.Context) error            { s.token = ""; return nil }

func TestResolveWithToken(t *testing.T) {
	g := New(&memStore{token: "tok"})
	if got := g.Resolve(context.Background()); got != Authorized {
		t.Fatalf("Resolve = %v, want Authorized", got)
	}
}

func TestResolveWithoutToken(t *testing.T) {
	g := New(&memStore{})
	if got := g.Resolve(context.Background()); got != Unauthorized {
		t.Fatalf("Resolve = %v, want Unauthorized", got)
	}
}

func TestResolveStoreFailure(t *testing.T) {
	g := New(&memStore{readErr: errors.New("corrupt db")})
	if got := g.Resolve(context.Background()); got != Unauthorized {
		t.Fatalf("Resolve = %v, want Unauthorized on store failure", got)
	}
}

func TestDoNeverRunsGuardedWorkWhenLoggedOut(t *testing.T) {
	g := New(&memStore{})
	ran := false

	err := g.Do(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})

	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if ran {
		t.Fatal("guarded work ran while unauthorized")
	}
}

func TestDoRunsWhenAuthorized(t *testing.T) {
	g := New(&memStore{token: "tok"})
	ran := false

	if err := g.Do(context.Background(), func(context.Context) error {
		ran = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("guarded work did not run")
	}
}

func TestStateString(t *testing.T) {
	if Unknown.String() != "unknown" || Authorized.String() != "authorized" || Unauthorized.String() != "unauthorized" {
		t.Fatal("State strings wrong")
	}
}
