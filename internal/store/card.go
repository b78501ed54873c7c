package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/commboard-api/internal/domain"
)

// CardStore defines the interface for card catalog persistence.
type CardStore interface {
	// List retrieves the full card catalog in insertion (ID) order.
	// Every card is always a ranking candidate; there is no disabled-card
	// concept, so no filtering parameters exist. An empty catalog returns
	// an empty slice, not an error.
	//
	// The returned order matters: the ranking algorithm uses it as the
	// tie-break for cards with equal scores, so it must be deterministic
	// across calls.
	List(ctx context.Context) ([]*domain.Card, error)

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Card, error)

	// GetBySlug retrieves a card by its unique slug token.
	// Returns ErrCardNotFound if the card does not exist.
	GetBySlug(ctx context.Context, slug string) (*domain.Card, error)

	// Create saves a new card to the catalog and assigns its ID.
	// Returns ErrSlugExists if the slug is already taken.
	// Returns validation errors from the domain Card if data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// WithTx returns a new CardStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CardStore
}
