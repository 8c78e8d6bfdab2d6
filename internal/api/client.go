package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to the venue booking backend. Every call takes a
// context and the underlying http.Client carries a hard timeout, so a
// hung backend can never park a chat on a loading message forever.
type Client struct {
	baseURL string
	// callbackBaseURL is the public base of the payment return listener;
	// the backend points the provider's redirect URLs at it.
	callbackBaseURL string
	http            *http.Client
	logger          *zap.Logger
}

func NewClient(baseURL, callbackBaseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		callbackBaseURL: strings.TrimRight(callbackBaseURL, "/"),
		http:            &http.Client{Timeout: timeout},
		logger:          logger,
	}
}

// Error is a non-2xx response with the backend's best-effort message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// errorBody is the union of the error envelopes the backend uses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}

// do performs one request and decodes the response into out (if non-nil).
// A non-2xx status is returned as *Error with the decoded server message.
func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb) // best effort
		c.logger.Warn("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("server_message", eb.text()),
		)
		return &Error{Status: resp.StatusCode, Message: eb.text()}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}
