package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

type tokenData struct {
	AccessToken string `json:"access_token"`
}

type sessionData struct {
	SessionID string `json:"session_id"`
}

// Login exchanges credentials for a bearer token. The one place an HTTP
// status carries flow-control meaning: 409 signals a soft-deleted account
// and maps to ErrAccountPendingDeletion so the caller can offer a restore.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/login", nil, body, false)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return "", ErrAccountPendingDeletion
		}
		return "", err
	}

	var data tokenData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.AccessToken, nil
}

// RestoreAccount lifts the pending deletion and authenticates in one step.
func (c *HTTPClient) RestoreAccount(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/restore-account", nil, body, false)
	if err != nil {
		return "", err
	}

	var data tokenData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	env, err := c.doJSON(ctx, http.MethodPost, "/register", nil, body, false)
	if err != nil {
		return "", err
	}

	var data sessionData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.SessionID, nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, sessionID, code string) (string, error) {
	body := map[string]string{"session_id": sessionID, "otp": code}
	env, err := c.doJSON(ctx, http.MethodPut, "/verify/otp", nil, body, false)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) ResendOTP(ctx context.Context, sessionID string) error {
	body := map[string]string{"session_id": sessionID}
	_, err := c.doJSON(ctx, http.MethodPost, "/verify/otp/resend", nil, body, false)
	return err
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	env, err := c.doJSON(ctx, http.MethodPost, "/forgot-password", nil, body, false)
	if err != nil {
		return "", err
	}

	var data sessionData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.SessionID, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, sessionID, code, newPassword string) error {
	body := map[string]string{"session_id": sessionID, "otp": code, "new_password": newPassword}
	_, err := c.doJSON(ctx, http.MethodPut, "/reset-password", nil, body, false)
	return err
}

// GoogleAuthURL points the browser at the backend's Google sign-in entry.
// The backend finishes the exchange and redirects to redirectURI with
// success/access_token/email query parameters.
func (c *HTTPClient) GoogleAuthURL(redirectURI string) string {
	q := url.Values{}
	q.Set("redirect_uri", redirectURI)
	return c.baseURL + "/auth/google?" + q.Encode()
}
