package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SelectionEvent-specific validation errors
var (
	// ErrEventIDEmpty is returned when a selection event ID is nil.
	ErrEventIDEmpty = errors.New("selection event ID cannot be empty")

	// ErrEventUserIDInvalid is returned when an event's user ID is zero or negative.
	ErrEventUserIDInvalid = errors.New("selection event user ID must be a positive integer")

	// ErrEventCardIDInvalid is returned when an event's card ID is zero or negative.
	ErrEventCardIDInvalid = errors.New("selection event card ID must be a positive integer")
)

// SelectionEvent is an immutable record of a user choosing a card at a point
// in time. Events are append-only; they are never updated or deleted, and the
// full per-user history is the sole signal driving board adaptivity.
type SelectionEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	CardID    int64     `json:"card_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSelectionEvent creates a new SelectionEvent for the given user and card,
// stamped with the current time. Returns an error if validation fails.
func NewSelectionEvent(userID, cardID int64) (*SelectionEvent, error) {
	event := &SelectionEvent{
		ID:        uuid.New(),
		UserID:    userID,
		CardID:    cardID,
		CreatedAt: time.Now().UTC(),
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the SelectionEvent has valid data.
// Returns an error if any field fails validation.
func (e *SelectionEvent) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEventIDEmpty
	}

	if e.UserID <= 0 {
		return ErrEventUserIDInvalid
	}

	if e.CardID <= 0 {
		return ErrEventCardIDInvalid
	}

	return nil
}
