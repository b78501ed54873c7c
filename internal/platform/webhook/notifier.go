// Package webhook delivers caregiver notifications by POSTing them to a
// configured HTTP endpoint, typically a messaging-platform bot bridge.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/commboard-api/internal/notify"
)

// payload is the JSON body POSTed to the webhook endpoint.
type payload struct {
	RecipientID int64     `json:"recipient_id"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sent_at"`
}

// Notifier implements notify.Notifier by POSTing JSON to a webhook URL.
type Notifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// New creates a webhook notifier for the given URL.
// If client is nil, http.DefaultClient is used; per-dispatch deadlines come
// from the caller's context either way.
// If logger is nil, a default logger will be used.
func New(url string, client *http.Client, logger *slog.Logger) *Notifier {
	if url == "" {
		panic("url cannot be empty")
	}

	if client == nil {
		client = http.DefaultClient
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		url:    url,
		client: client,
		logger: logger.With(slog.String("component", "webhook_notifier")),
	}
}

// Ensure Notifier implements notify.Notifier interface
var _ notify.Notifier = (*Notifier)(nil)

// Notify implements notify.Notifier.
// Any transport error or non-2xx response is reported as a dispatch failure.
func (n *Notifier) Notify(ctx context.Context, recipientID int64, text string) error {
	body, err := json.Marshal(payload{
		RecipientID: recipientID,
		Text:        text,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("webhook request failed",
			slog.String("error", err.Error()),
			slog.Int64("recipient_id", recipientID))
		return fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Warn("webhook returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.Int64("recipient_id", recipientID))
		return fmt.Errorf("%w: unexpected status %d", notify.ErrDispatchFailed, resp.StatusCode)
	}

	n.logger.Debug("notification delivered",
		slog.Int64("recipient_id", recipientID))
	return nil
}
