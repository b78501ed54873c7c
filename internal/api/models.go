package api

import (
	"time"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/service"
)

// CardResponse represents one card in an ordered board response.
type CardResponse struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	Label        string `json:"label"`
	ImageRef     string `json:"image_ref,omitempty"`
	BasePriority int    `json:"base_priority"`
}

// BoardResponse represents the ordered card board for a user.
// Cards appear highest priority first; clients render them in this order.
type BoardResponse struct {
	Cards []CardResponse `json:"cards"`
}

// SelectionRequest represents the request body for recording a selection.
type SelectionRequest struct {
	CardID int64 `json:"card_id" validate:"required,gt=0"`
}

// SelectionResponse represents the result of a recorded selection: the
// notification outcome plus the refreshed board order.
type SelectionResponse struct {
	Card       CardResponse                `json:"card"`
	Outcome    service.NotificationOutcome `json:"outcome"`
	RecordedAt time.Time                   `json:"recorded_at"`
	Board      []CardResponse              `json:"board"`
}

// SetGuardianRequest represents the request body for binding a caregiver.
type SetGuardianRequest struct {
	GuardianID int64 `json:"guardian_id" validate:"required,gt=0"`
}

// UserResponse represents a board user.
type UserResponse struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	GuardianID  *int64 `json:"guardian_id,omitempty"`
}

// cardToResponse converts a domain card into its response form.
func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:           card.ID,
		Slug:         card.Slug,
		Label:        card.Label,
		ImageRef:     card.ImageRef,
		BasePriority: card.BasePriority,
	}
}

// cardsToResponse converts an ordered card slice, preserving order.
func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, card := range cards {
		out[i] = cardToResponse(card)
	}
	return out
}

// userToResponse converts a domain user into its response form.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		GuardianID:  user.GuardianID,
	}
}
