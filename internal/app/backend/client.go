// Package backend is the REST client for the marketplace API. All
// substantive business logic (pricing, inventory, settlement, order
// state) lives behind these endpoints; this process only orchestrates
// and renders.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/observability/metrics"
	"github.com/bangg2309/book-exchange/internal/pkg/config"
)

// CodeSuccess is the backend's success code in its response envelope.
const CodeSuccess = 1000

// envelope is the backend's uniform response shape:
// { code, result, message? }.
type envelope struct {
	Code    int             `json:"code"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message,omitempty"`
}

// APIError is a well-formed backend response whose code is not 1000.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error code %d", e.Code)
	}
	return fmt.Sprintf("backend error code %d: %s", e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// do performs one backend round trip and decodes the envelope into out
// (which may be nil for result-less operations). token, when set, is
// sent as a bearer credential.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encoding request for %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "building request for %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ObserveBackendRequest(ctx, method, path, time.Since(start), err)
	if err != nil {
		return errors.Wrapf(err, "calling %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading response of %s %s", method, path)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Warn("Backend response is not an envelope",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return errors.Wrapf(err, "decoding response of %s %s (status %d)", method, path, resp.StatusCode)
	}

	if env.Code != CodeSuccess {
		return &APIError{Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return errors.Wrapf(err, "decoding result of %s %s", method, path)
		}
	}
	return nil
}

// call is the typed wrapper around do for endpoints that return a
// result payload.
func call[T any](ctx context.Context, c *Client, method, path, token string, body any) (T, error) {
	var out T
	if err := c.do(ctx, method, path, token, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// IsAPIError reports whether err is a backend envelope failure, as
// opposed to a transport problem.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
