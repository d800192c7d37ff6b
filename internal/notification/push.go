package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"taskboard-api/internal/model"
)

// WebhookNotifier pushes events to an external delivery service (the realtime
// channel that forwards them to connected clients) as JSON POSTs.
type WebhookNotifier struct {
	endpoint   string
	httpClient *http.Client
}

var _ Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier creates a push notifier targeting the given endpoint.
func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type webhookPayload struct {
	OwnerID    string         `json:"owner_id"`
	Event      string         `json:"event"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Notify posts the event to the push endpoint.
func (n *WebhookNotifier) Notify(ctx context.Context, event model.Event) error {
	body, err := json.Marshal(webhookPayload{
		OwnerID:    event.OwnerID,
		Event:      string(event.Name),
		Message:    event.Message,
		Data:       event.Data,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}
