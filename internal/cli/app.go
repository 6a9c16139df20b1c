package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/api"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/config"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/flow"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/guard"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/profile"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/session"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/tryon"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/wardrobe"
)

// App holds every long-lived piece of the client: the session manager, the
// profile cache subscribed to it, the API client reading its token from it,
// and one flow per confirmable operation.
type App struct {
	config   *config.Config
	log      logging.Logger
	api      api.Client
	store    session.Store
	sessions *session.Manager
	profile  *profile.Cache
	guard    *guard.Guard
	wardrobe *wardrobe.Service
	tryons   *tryon.Service

	reader *bufio.Reader
	out    io.Writer
	ui     flow.UI

	restoreFlow *flow.Flow
	deleteFlow  *flow.Flow
	itemFlow    *flow.Flow
	tryonFlow   *flow.Flow

	closeStore func() error
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, logLevel(cfg.LogLevel))

	store, err := session.OpenStore(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error opening credential store", "error", err)
		return nil, err
	}

	sessions := session.NewManager(store)
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions.Token, log)
	prof := profile.NewCache(client, sessions, log)

	a := &App{
		config:   cfg,
		log:      log,
		api:      client,
		store:    store,
		sessions: sessions,
		profile:  prof,
		guard:    guard.New(store),
		wardrobe: wardrobe.NewService(client, log),
		tryons:   tryon.NewService(client, log),

		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,

		restoreFlow: flow.New(),
		deleteFlow:  flow.New(),
		itemFlow:    flow.New(),
		tryonFlow:   flow.New(),

		closeStore: store.Close,
	}
	a.ui = &consoleUI{reader: a.reader, out: a.out}

	return a, nil
}

// Run restores any saved session and starts the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.sessions.Restore(ctx); err != nil {
		a.log.Warn(ctx, "error restoring session", "error", err)
	}

	fmt.Fprintln(a.out, "Virtual Wardrobe CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the profile cache subscription and the credential store.
func (a *App) Close() {
	a.profile.Close()
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			a.log.Warn(context.Background(), "error closing credential store", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsLoggedIn()
}

func (a *App) getStatus() string {
	if u := a.profile.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	if a.sessions.IsLoggedIn() {
		return "(logged in)"
	}
	return ""
}

// requireLogin wraps commands that need a session. When the guard resolves
// unauthorized, the user is sent to the login prompt instead, the CLI
// analogue of a redirect to the login page.
func (a *App) requireLogin(ctx context.Context, fn func(ctx context.Context) error) error {
	err := a.guard.Do(ctx, fn)
	if errors.Is(err, guard.ErrUnauthorized) {
		fmt.Fprintln(a.out, "You need to be logged in for that. Redirecting to login...")
		return a.Login(ctx)
	}
	return err
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
