package notify

import (
	"context"
	"errors"
)

// Common notifier errors
var (
	// ErrDispatchFailed is returned when a notification could not be
	// delivered to the transport. Callers surface it as a warning outcome,
	// never as a pipeline failure.
	ErrDispatchFailed = errors.New("notification dispatch failed")
)

// Notifier delivers a short text message to a recipient in the messaging
// transport's address space.
//
// Implementations must respect context cancellation: the selection pipeline
// calls Notify under a bounded timeout so a caregiver-side outage can never
// stall the user-facing flow. The core never retries; failed dispatches are
// reported and dropped.
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, text string) error
}

// Func adapts a plain function to the Notifier interface.
type Func func(ctx context.Context, recipientID int64, text string) error

// Notify implements the Notifier interface.
func (f Func) Notify(ctx context.Context, recipientID int64, text string) error {
	return f(ctx, recipientID, text)
}
