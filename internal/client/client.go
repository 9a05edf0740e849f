// Package client talks to a running chat relay over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/vertexchat/internal/errors"
	"github.com/diogo/vertexchat/internal/models"
)

const chatPath = "/api/chat"

// RelayClient sends chat messages to the relay's POST /api/chat
// endpoint. Any failure to complete the exchange (connection refused,
// bad status, unparseable body) surfaces as ErrRelayUnreachable so the
// UI can show its fixed connection-error message.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the client
type Option func(*RelayClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RelayClient) {
		c.httpClient = hc
	}
}

// New creates a RelayClient for the relay at baseURL.
func New(baseURL string, opts ...Option) *RelayClient {
	c := &RelayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No timeout: the relay sets none either, and a hung provider
		// call is surfaced by the UI staying in its pending state.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts message to the relay and returns the reply text, which may
// itself be a flattened provider failure (the caller cannot tell).
func (c *RelayClient) Send(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(models.ChatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apierrors.ErrRelayUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", apierrors.ErrRelayUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", apierrors.ErrRelayUnreachable, resp.StatusCode)
	}

	reply := gjson.GetBytes(body, "reply")
	if !reply.Exists() {
		return "", fmt.Errorf("%w: missing reply field", apierrors.ErrRelayUnreachable)
	}

	return reply.String(), nil
}
