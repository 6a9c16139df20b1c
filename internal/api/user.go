package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/models"
)

func (c *HTTPClient) GetUser(ctx context.Context) (*models.User, error) {
	env, err := c.doJSON(ctx, http.MethodGet, "/user", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser sends a partial profile update. The backend takes these fields
// as query parameters, not a body.
func (c *HTTPClient) UpdateUser(ctx context.Context, upd UserUpdate) error {
	q := url.Values{}
	q.Set("phone_number", upd.PhoneNumber)
	q.Set("delete_phone_number", strconv.FormatBool(upd.DeletePhoneNumber))
	q.Set("delete_profile_pic", strconv.FormatBool(upd.DeleteProfilePic))

	_, err := c.doJSON(ctx, http.MethodPut, "/user", q, nil, true)
	return err
}

type profilePicData struct {
	ProfilePic string `json:"profile_pic"`
}

// UploadProfilePic uploads a new picture and returns its served URL.
func (c *HTTPClient) UploadProfilePic(ctx context.Context, path string) (string, error) {
	body, contentType, err := multipartBody(map[string]string{"profile_pic": path})
	if err != nil {
		return "", err
	}

	env, err := c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/user",
		body:        body,
		contentType: contentType,
		authed:      true,
	})
	if err != nil {
		return "", err
	}

	var data profilePicData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.ProfilePic, nil
}

// DeleteAccount soft-deletes the account; it stays restorable for a grace
// window via RestoreAccount.
func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/user", nil, nil, true)
	return err
}

func (c *HTTPClient) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/contacts", nil, msg, false)
	return err
}
