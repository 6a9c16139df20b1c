// Package tryon wraps the virtual try-on feature: uploading an image pair
// for inference and managing the append-only result history.
package tryon

import (
	"context"
	"fmt"
	"os"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

// API is the backend surface the service needs.
type API interface {
	CreateTryOn(ctx context.Context, humanPath, garmentPath string) (*models.TryOn, error)
	ListTryOns(ctx context.Context) ([]models.TryOn, error)
	DeleteTryOn(ctx context.Context, id string) error
}

type Service struct {
	api API
	log logging.Logger
}

func NewService(api API, log logging.Logger) *Service {
	return &Service{api: api, log: log.With("component", "tryon")}
}

// Create validates both image paths locally, then uploads them and waits
// for the inference result. Missing files are a local validation failure:
// no network call is made.
func (s *Service) Create(ctx context.Context, humanPath, garmentPath string) (*models.TryOn, error) {
	for _, path := range []string{humanPath, garmentPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("image %s: %w", path, err)
		}
	}

	record, err := s.api.CreateTryOn(ctx, humanPath, garmentPath)
	if err != nil {
		s.log.Error(ctx, "try-on request failed", "error", err)
		return nil, err
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]models.TryOn, error) {
	return s.api.ListTryOns(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.DeleteTryOn(ctx, id)
}
