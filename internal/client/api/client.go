// Package api is the HTTP client for the Volunteam platform API.
//
// Every outbound request carries the currently cached access token as a
// bearer credential. Failed requests are retried with a constant delay up to
// a fixed attempt budget, except authorization failures (HTTP 401), which can
// never succeed on retry and surface immediately. All terminal failures are
// normalized into *AuthenticationError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/volunteam/internal/client/models"
	"github.com/dmitrijs2005/volunteam/internal/logging"
)

// Config holds the client's endpoint and retry policy.
type Config struct {
	// BaseURL is the root of the platform API, e.g. "http://localhost:3333".
	BaseURL string
	// Timeout bounds every individual network attempt.
	Timeout time.Duration
	// RetryAttempts is the total attempt budget, including the first try.
	RetryAttempts int
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration
}

type Client struct {
	httpClient    *http.Client
	baseURL       string
	retryAttempts int
	retryDelay    time.Duration
	log           logging.Logger
}

// NewClient builds a Client whose transport reads the bearer token from
// tokens on every request.
func NewClient(cfg Config, tokens TokenSource, log logging.Logger) *Client {
	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		// retry.NewConstant rejects non-positive intervals.
		delay = time.Millisecond
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &bearerTransport{base: http.DefaultTransport, tokens: tokens},
		},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		retryAttempts: attempts,
		retryDelay:    delay,
		log:           log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticate performs POST /login with the given credentials.
// On failure it returns an *AuthenticationError.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Events fetches the volunteer events visible to the authenticated user.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// do runs one API call under the retry policy: up to retryAttempts attempts
// with a constant retryDelay pause, never retrying HTTP 401.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return &AuthenticationError{Message: genericErrorMessage, Code: CodeNetworkError, err: err}
		}
	}

	backoff := retry.WithMaxRetries(uint64(c.retryAttempts-1), retry.NewConstant(c.retryDelay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := c.attempt(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}

		var authErr *AuthenticationError
		if errors.As(err, &authErr) && authErr.Status == http.StatusUnauthorized {
			// Retrying with the same bad credentials cannot succeed.
			return err
		}

		if attempt < c.retryAttempts {
			c.log.Warn(ctx, "request failed, will retry", "method", method, "path", path, "error", err)
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			return authErr
		}
		// Context cancellation surfaced by retry.Do itself.
		return &AuthenticationError{Message: genericErrorMessage, Code: CodeNetworkError, err: err}
	}
	return nil
}

// attempt executes a single request/response cycle and normalizes any
// failure into *AuthenticationError.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &AuthenticationError{Message: genericErrorMessage, Code: CodeNetworkError, err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &AuthenticationError{Message: err.Error(), Code: CodeNetworkError, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return formatError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &AuthenticationError{
				Message: genericErrorMessage,
				Code:    CodeNetworkError,
				Status:  resp.StatusCode,
				err:     fmt.Errorf("decode response: %w", err),
			}
		}
	}
	return nil
}

// formatError builds the normalized error for a non-2xx response, preferring
// the server's own message when its payload carries one.
func formatError(resp *http.Response) *AuthenticationError {
	e := &AuthenticationError{
		Message: genericErrorMessage,
		Code:    CodeBadStatus,
		Status:  resp.StatusCode,
	}

	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err == nil {
		if payload.Message != "" {
			e.Message = payload.Message
		}
		if payload.Code != "" {
			e.Code = payload.Code
		}
	}
	return e
}
