package api

import (
	"context"
	"net/http"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

// CreateTryOn uploads the human and garment images and blocks until the
// backend's inference returns the result record. This is the slowest call
// the CLI makes; it still runs under the configured request timeout.
func (c *HTTPClient) CreateTryOn(ctx context.Context, humanPath, garmentPath string) (*models.TryOn, error) {
	body, contentType, err := multipartBody(map[string]string{
		"human_image":   humanPath,
		"garment_image": garmentPath,
	})
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/virtual-tryon",
		body:        body,
		contentType: contentType,
		authed:      true,
	})
	if err != nil {
		return nil, err
	}

	var record models.TryOn
	if err := decodeData(env, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

type tryOnListData struct {
	Items []models.TryOn `json:"items"`
}

func (c *HTTPClient) ListTryOns(ctx context.Context) ([]models.TryOn, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/virtual-tryon", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var data tryOnListData
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

func (c *HTTPClient) DeleteTryOn(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/virtual-tryon/"+id, nil, nil, true)
	return err
}
