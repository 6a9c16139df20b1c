package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/logging"
)

// envelope is the uniform response shape of the backend:
// {success, data?, detail?, message?}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Detail  string          `json:"detail,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HTTPClient is the production Client. Every call gets a deadline derived
// from the configured timeout, a request id on its log lines, and — when it
// mutates server state — an Idempotency-Key header so an accidental
// duplicate submission is safe to retry server-side.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
	token   TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: timeout,
		token:   token,
		log:     log.With("component", "api"),
	}
}

// request carries everything do needs to issue one backend call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	authed      bool
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func (c *HTTPClient) do(ctx context.Context, r request) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("building request %s %s: %w", r.method, r.path, err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.authed {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	if mutating(r.method) {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	reqID := xid.New().String()
	c.log.Debug(ctx, "request", "id", reqID, "method", r.method, "path", r.path)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Error(ctx, "bad response body", "id", reqID, "status", resp.StatusCode, "error", err)
		return nil, &Error{Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		detail := env.Detail
		if detail == "" {
			detail = env.Message
		}
		c.log.Debug(ctx, "response rejected", "id", reqID, "status", resp.StatusCode, "detail", detail)
		return nil, &Error{Status: resp.StatusCode, Detail: detail}
	}

	c.log.Debug(ctx, "response ok", "id", reqID, "status", resp.StatusCode)
	return &env, nil
}

// doJSON marshals body (when non-nil) and issues the call.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, body any, authed bool) (*envelope, error) {
	r := request{method: method, path: path, query: query, authed: authed}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding body for %s %s: %w", method, path, err)
		}
		r.body = bytes.NewReader(b)
		r.contentType = "application/json"
	}
	return c.do(ctx, r)
}

// decodeData unmarshals the envelope's data field into v.
func decodeData(env *envelope, v any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

// multipartBody builds a multipart form from named files read off disk.
func multipartBody(files map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening %s: %w", path, err)
		}
		part, err := w.CreateFormFile(field, filepath.Base(path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return nil, "", fmt.Errorf("adding %s to form: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
