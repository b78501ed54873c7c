package domain

import (
	"errors"
	"time"
)

// Card-specific validation errors
var (
	// ErrCardSlugEmpty is returned when a card's slug is empty.
	ErrCardSlugEmpty = errors.New("card slug cannot be empty")

	// ErrCardLabelEmpty is returned when a card's label is empty.
	ErrCardLabelEmpty = errors.New("card label cannot be empty")

	// ErrCardPriorityNegative is returned when a card's base priority is negative.
	ErrCardPriorityNegative = errors.New("card base priority cannot be negative")
)

// Card represents one selectable item on the communication board.
//
// BasePriority encodes the semantic urgency of the need, independent of how
// often it is selected. The seeded catalog follows the convention:
//
//	100 - critical/physiological (drink, pain)
//	 50 - situational comfort (cold, hot)
//	 10 - discretionary/entertainment (toy, cartoon)
//
// Cards are reference data: after seeding the core never mutates them, and
// ranking treats every card as a candidate on every read.
type Card struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	Label        string    `json:"label"`
	ImageRef     string    `json:"image_ref,omitempty"`
	BasePriority int       `json:"base_priority"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCard creates a new Card with the given slug, label, and base priority.
// The ID is assigned by the store on creation. Returns an error if
// validation fails.
func NewCard(slug, label string, basePriority int) (*Card, error) {
	card := &Card{
		Slug:         slug,
		Label:        label,
		BasePriority: basePriority,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.Slug == "" {
		return ErrCardSlugEmpty
	}

	if c.Label == "" {
		return ErrCardLabelEmpty
	}

	// Base priority has no enforced upper bound, but negative values would
	// invert the meaning of the scoring formula.
	if c.BasePriority < 0 {
		return ErrCardPriorityNegative
	}

	return nil
}
