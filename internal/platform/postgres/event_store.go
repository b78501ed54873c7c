package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/store"
)

// PostgresSelectionEventStore implements the store.SelectionEventStore
// interface using a PostgreSQL database as the storage backend. The
// selection_events table is append-only; this store exposes no update or
// delete operations.
type PostgresSelectionEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSelectionEventStore creates a new PostgreSQL implementation of
// the SelectionEventStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSelectionEventStore(db store.DBTX, logger *slog.Logger) *PostgresSelectionEventStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSelectionEventStore{
		db:     db,
		logger: logger.With(slog.String("component", "selection_event_store")),
	}
}

// Ensure PostgresSelectionEventStore implements store.SelectionEventStore interface
var _ store.SelectionEventStore = (*PostgresSelectionEventStore)(nil)

// Append implements store.SelectionEventStore.Append
// It durably records a selection event in a single atomic insert.
// Returns store.ErrInvalidEntity if the referenced user or card is missing.
// Returns validation errors from the domain SelectionEvent if data is invalid.
func (s *PostgresSelectionEventStore) Append(ctx context.Context, event *domain.SelectionEvent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("selection event validation failed during append",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	query := `
		INSERT INTO selection_events (id, user_id, card_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		event.ID,
		event.UserID,
		event.CardID,
		event.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during event append",
				slog.String("event_id", event.ID.String()),
				slog.Int64("user_id", event.UserID),
				slog.Int64("card_id", event.CardID))
			return fmt.Errorf("%w: selection event references missing user or card",
				store.ErrInvalidEntity)
		}
		log.Error("failed to append selection event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	log.Debug("selection event appended",
		slog.String("event_id", event.ID.String()),
		slog.Int64("user_id", event.UserID),
		slog.Int64("card_id", event.CardID))
	return nil
}

// CountByCard implements store.SelectionEventStore.CountByCard
// It aggregates the user's full selection history grouped by card.
// Cards with no events for this user are absent from the returned map.
func (s *PostgresSelectionEventStore) CountByCard(ctx context.Context, userID int64) (map[int64]int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT card_id, COUNT(id)
		FROM selection_events
		WHERE user_id = $1
		GROUP BY card_id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to count selections by card",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[int64]int64)
	for rows.Next() {
		var cardID, count int64
		if err := rows.Scan(&cardID, &count); err != nil {
			log.Error("failed to scan selection count row",
				slog.String("error", err.Error()),
				slog.Int64("user_id", userID))
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		counts[cardID] = count
	}

	if err := rows.Err(); err != nil {
		log.Error("selection count iteration failed",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return counts, nil
}

// WithTx implements store.SelectionEventStore.WithTx
// It returns a new SelectionEventStore that runs all operations on the provided transaction.
func (s *PostgresSelectionEventStore) WithTx(tx *sql.Tx) store.SelectionEventStore {
	return &PostgresSelectionEventStore{
		db:     tx,
		logger: s.logger,
	}
}
