package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adenmarket/adenmarket/internal/logger"
)

// WebhookFacade posts notifications to a Discord-style webhook. Calls are
// fire-and-forget: a failure is surfaced to the caller and never retried.
type WebhookFacade struct {
	url    string
	client *http.Client
}

// NewWebhookFacade creates a facade for the given webhook URL.
func NewWebhookFacade(url string, timeout time.Duration) *WebhookFacade {
	return &WebhookFacade{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookPayload struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// Send posts one message to the webhook.
func (f *WebhookFacade) Send(ctx context.Context, username, content string) error {
	body, err := json.Marshal(webhookPayload{Username: username, Content: content})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("webhook request failed", "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Errorw("webhook request rejected", "status", resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
