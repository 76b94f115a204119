package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client handles communication with the mail-sender webhook
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	stubMode   bool
}

// NewClient creates a new notify client with the given configuration.
// In stub mode no request is sent; the payload is logged instead, which
// is enough for local development without a mail sender.
func NewClient(baseURL, secret string, stubMode bool) *Client {
	return &Client{
		baseURL:    baseURL,
		secret:     secret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		stubMode:   stubMode,
	}
}

// SendPasswordReset delivers a password-reset token to the user's email
// address via the webhook.
func (c *Client) SendPasswordReset(ctx context.Context, email, token string) error {
	if c.stubMode {
		slog.Info("notify stub: password reset", "email", email, "token", token)
		return nil
	}

	if c.baseURL == "" {
		return fmt.Errorf("notify webhook URL is not configured")
	}

	payload, err := json.Marshal(ResetRequest{Email: email, ResetToken: token})
	if err != nil {
		return fmt.Errorf("failed to marshal reset request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Webhook-Secret", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
