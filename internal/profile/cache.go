// Package profile caches the fetched user record. The cache derives
// staleness from the session manager's token: every token change (and only
// a token change) triggers a refresh.
package profile

import (
	"context"
	"sync"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/session"
)

// UserAPI is the one backend call the cache needs.
type UserAPI interface {
	GetUser(ctx context.Context) (*models.User, error)
}

// Cache holds the profile record. A nil User means "unknown", never "empty".
// Close detaches the subscription and cancels any in-flight refresh so a
// stale response cannot mutate state after its consumer is gone.
type Cache struct {
	api      UserAPI
	sessions *session.Manager
	log      logging.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	mu   sync.Mutex
	user *models.User
}

func NewCache(api UserAPI, sessions *session.Manager, log logging.Logger) *Cache {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		api:      api,
		sessions: sessions,
		log:      log.With("component", "profile"),
		ctx:      ctx,
		cancel:   cancel,
	}
	c.unsubscribe = sessions.Subscribe(c.onTokenChange)
	return c
}

func (c *Cache) onTokenChange(token string) {
	if token == "" {
		c.Set(nil)
		return
	}
	c.Refresh(c.ctx)
}

// Refresh re-fetches the profile. Without a token it sets the cache to nil
// and issues no network call. A failed fetch also leaves nil: consumers must
// treat the profile as unknown, and the failure is logged for diagnosis only.
func (c *Cache) Refresh(ctx context.Context) {
	if c.sessions.Token() == "" {
		c.Set(nil)
		return
	}

	user, err := c.api.GetUser(ctx)
	if err != nil {
		c.log.Error(ctx, "fetching user profile", "error", err)
		c.Set(nil)
		return
	}
	c.Set(user)
}

// User returns the cached record, nil when unknown.
func (c *Cache) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Set replaces the cached record. Used for optimistic local patches (phone
// number, profile picture) that skip a full re-fetch.
func (c *Cache) Set(u *models.User) {
	c.mu.Lock()
	c.user = u
	c.mu.Unlock()
}

// Close ends the cache's lifecycle: no further automatic refreshes run and
// any in-flight one is canceled.
func (c *Cache) Close() {
	c.unsubscribe()
	c.cancel()
}
