package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/commboard-api/internal/domain"
)

// SelectionEventStore defines the interface for the append-only selection
// event log. Events are never updated or deleted; the write path is Append
// and the read path is an aggregate count.
type SelectionEventStore interface {
	// Append durably records a selection event. The write is atomic:
	// either it is observable by the next CountByCard call or it failed
	// entirely.
	// Returns validation errors from the domain SelectionEvent if data is
	// invalid.
	Append(ctx context.Context, event *domain.SelectionEvent) error

	// CountByCard returns the number of recorded selections per card for
	// the given user. Cards the user has never selected are absent from
	// the map; callers must treat absent keys as zero.
	CountByCard(ctx context.Context, userID int64) (map[int64]int64, error)

	// WithTx returns a new SelectionEventStore instance that uses the
	// provided transaction. The transaction is created and managed by the
	// caller.
	WithTx(tx *sql.Tx) SelectionEventStore
}
