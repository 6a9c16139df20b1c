// Package googleauth catches the backend's Google sign-in redirect on a
// loopback HTTP listener. The browser does the sign-in; the backend
// redirects to us with the session token in query parameters, consumed
// exactly once.
package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
)

const callbackPath = "/auth/google/callback"

// ErrLoginFailed means the redirect arrived without a usable token.
var ErrLoginFailed = errors.New("google login failed: token not found")

// Result is the payload of a successful redirect.
type Result struct {
	Token string
	Email string
}

type outcome struct {
	res Result
	err error
}

// Listener serves the callback route until the first redirect is consumed.
type Listener struct {
	ln   net.Listener
	srv  *http.Server
	ch   chan outcome
	once sync.Once
	log  logging.Logger
}

// NewListener binds addr (use "localhost:0" for an ephemeral port in tests)
// but does not serve yet; call Wait.
func NewListener(addr string, log logging.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("binding oauth callback listener: %w", err)
	}

	l := &Listener{
		ln:  ln,
		ch:  make(chan outcome, 1),
		log: log.With("component", "googleauth"),
	}

	r := chi.NewRouter()
	r.Get(callbackPath, l.handleCallback)
	l.srv = &http.Server{Handler: r}
	return l, nil
}

// RedirectURI is the value to hand the backend as redirect_uri.
func (l *Listener) RedirectURI() string {
	return "http://" + l.ln.Addr().String() + callbackPath
}

func (l *Listener) handleCallback(w http.ResponseWriter, r *http.Request) {
	consumed := false
	l.once.Do(func() {
		consumed = true
		q := r.URL.Query()
		token := q.Get("access_token")
		if q.Get("success") == "false" || token == "" {
			l.ch <- outcome{err: ErrLoginFailed}
			fmt.Fprintln(w, "Login failed. You can close this tab and return to the terminal.")
			return
		}
		l.ch <- outcome{res: Result{Token: token, Email: q.Get("email")}}
		fmt.Fprintln(w, "Login complete. You can close this tab and return to the terminal.")
	})
	if !consumed {
		// The redirect was already processed; a reload must not replay it.
		fmt.Fprintln(w, "Login already completed.")
	}
}

// Wait serves the callback route until the redirect arrives or ctx ends.
func (l *Listener) Wait(ctx context.Context) (Result, error) {
	serveErr := make(chan error, 1)
	go func() {
		if err := l.srv.Serve(l.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer l.Close()

	select {
	case out := <-l.ch:
		return out.res, out.err
	case err := <-serveErr:
		return Result{}, fmt.Errorf("oauth callback listener: %w", err)
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (l *Listener) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return l.srv.Shutdown(ctx)
}
