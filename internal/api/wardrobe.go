package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

type itemListData struct {
	Items []models.WardrobeItem `json:"items"`
}

func (c *HTTPClient) ListWardrobeItems(ctx context.Context) ([]models.WardrobeItem, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/wardrobe-items", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var data itemListData
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

// itemQuery renders attrs as the backend's item_* query parameters,
// omitting empty fields so updates stay partial.
func itemQuery(attrs models.ItemAttrs) url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("item_category", attrs.Category)
	set("item_type", attrs.Type)
	set("item_brand", attrs.Brand)
	set("item_size", attrs.Size)
	set("item_color", attrs.Color)
	return q
}

// AddWardrobeItem creates an item. Attributes travel as query parameters;
// the image, when given, as a multipart "image" field.
func (c *HTTPClient) AddWardrobeItem(ctx context.Context, attrs models.ItemAttrs, imagePath string) (*models.WardrobeItem, error) {
	r := request{
		method: http.MethodPost,
		path:   "/wardrobe-items",
		query:  itemQuery(attrs),
		authed: true,
	}
	if imagePath != "" {
		body, contentType, err := multipartBody(map[string]string{"image": imagePath})
		if err != nil {
			return nil, err
		}
		r.body = body
		r.contentType = contentType
	}

	env, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}

	var item models.WardrobeItem
	if err := decodeData(env, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) UpdateWardrobeItem(ctx context.Context, id string, attrs models.ItemAttrs) (*models.WardrobeItem, error) {
	env, err := c.doJSON(ctx, http.MethodPatch, "/wardrobe-items/"+id, itemQuery(attrs), nil, true)
	if err != nil {
		return nil, err
	}

	var item models.WardrobeItem
	if err := decodeData(env, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteWardrobeItem removes an item and returns the server's message for
// the success dialog.
func (c *HTTPClient) DeleteWardrobeItem(ctx context.Context, id string) (string, error) {
	env, err := c.doJSON(ctx, http.MethodDelete, "/wardrobe-items/"+id, nil, nil, true)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
