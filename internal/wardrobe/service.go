// Package wardrobe manages the user's clothing items: backend CRUD plus a
// client-side cached list that is patched optimistically after each
// mutation instead of re-fetched.
package wardrobe

import (
	"context"
	"sync"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

// API is the backend surface the service needs.
type API interface {
	ListWardrobeItems(ctx context.Context) ([]models.WardrobeItem, error)
	AddWardrobeItem(ctx context.Context, attrs models.ItemAttrs, imagePath string) (*models.WardrobeItem, error)
	UpdateWardrobeItem(ctx context.Context, id string, attrs models.ItemAttrs) (*models.WardrobeItem, error)
	DeleteWardrobeItem(ctx context.Context, id string) (string, error)
}

type Service struct {
	api API
	log logging.Logger

	mu    sync.Mutex
	items []models.WardrobeItem
}

func NewService(api API, log logging.Logger) *Service {
	return &Service{api: api, log: log.With("component", "wardrobe")}
}

// List fetches the item list and replaces the cache wholesale.
func (s *Service) List(ctx context.Context) ([]models.WardrobeItem, error) {
	items, err := s.api.ListWardrobeItems(ctx)
	if err != nil {
		s.log.Error(ctx, "listing wardrobe items", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

// Cached returns the locally cached list without touching the network.
func (s *Service) Cached() []models.WardrobeItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WardrobeItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add creates an item. Enumerated attributes are uppercased before
// transmission; the created record is appended to the cache.
func (s *Service) Add(ctx context.Context, attrs models.ItemAttrs, imagePath string) (*models.WardrobeItem, error) {
	item, err := s.api.AddWardrobeItem(ctx, attrs.Normalized(), imagePath)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *item)
	s.mu.Unlock()
	return item, nil
}

// Update patches an item and replaces it in the cache in place.
func (s *Service) Update(ctx context.Context, id string, attrs models.ItemAttrs) (*models.WardrobeItem, error) {
	item, err := s.api.UpdateWardrobeItem(ctx, id, attrs.Normalized())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *item
			break
		}
	}
	s.mu.Unlock()
	return item, nil
}

// Delete removes an item and drops it from the cache without a re-fetch.
// On failure the cache keeps the item and the server's message comes back
// in the error for dialog display.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	message, err := s.api.DeleteWardrobeItem(ctx, id)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return message, nil
}
