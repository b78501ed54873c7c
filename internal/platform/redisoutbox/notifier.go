// Package redisoutbox delivers caregiver notifications by pushing them onto
// a Redis list that the messaging bot process consumes. Using a list rather
// than pub/sub means a briefly offline bot still drains pending
// notifications when it reconnects.
package redisoutbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phrazzld/commboard-api/internal/notify"
)

// Message is the JSON payload pushed onto the outbox queue.
type Message struct {
	RecipientID int64     `json:"recipient_id"`
	Text        string    `json:"text"`
	QueuedAt    time.Time `json:"queued_at"`
}

// Notifier implements notify.Notifier on top of a Redis list.
type Notifier struct {
	client *redis.Client
	queue  string
	logger *slog.Logger
}

// New creates a Redis outbox notifier pushing onto the given queue key.
// If logger is nil, a default logger will be used.
func New(client *redis.Client, queue string, logger *slog.Logger) *Notifier {
	if client == nil {
		panic("client cannot be nil")
	}
	if queue == "" {
		panic("queue cannot be empty")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		client: client,
		queue:  queue,
		logger: logger.With(slog.String("component", "redis_notifier")),
	}
}

// Ensure Notifier implements notify.Notifier interface
var _ notify.Notifier = (*Notifier)(nil)

// Notify implements notify.Notifier.
// It serializes the message and pushes it onto the outbox queue. The push
// inherits the caller's deadline, so a slow or unreachable Redis results in
// a reported dispatch failure rather than a stalled pipeline.
func (n *Notifier) Notify(ctx context.Context, recipientID int64, text string) error {
	payload, err := json.Marshal(Message{
		RecipientID: recipientID,
		Text:        text,
		QueuedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err)
	}

	if err := n.client.RPush(ctx, n.queue, payload).Err(); err != nil {
		n.logger.Warn("failed to push notification to outbox",
			slog.String("error", err.Error()),
			slog.Int64("recipient_id", recipientID),
			slog.String("queue", n.queue))
		return fmt.Errorf("%w: %v", notify.ErrDispatchFailed, err)
	}

	n.logger.Debug("notification queued",
		slog.Int64("recipient_id", recipientID),
		slog.String("queue", n.queue))
	return nil
}
