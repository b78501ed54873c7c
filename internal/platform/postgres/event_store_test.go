package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/platform/postgres"
	"github.com/phrazzld/commboard-api/internal/store"
)

func TestEventStoreAppend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		event, err := domain.NewSelectionEvent(42, 3)
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO selection_events")).
			WithArgs(event.ID, event.UserID, event.CardID, event.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		require.NoError(t, s.Append(context.Background(), event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user or card", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		event, err := domain.NewSelectionEvent(42, 3)
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO selection_events")).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		err = s.Append(context.Background(), event)

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("infrastructure failure", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		event, err := domain.NewSelectionEvent(42, 3)
		require.NoError(t, err)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO selection_events")).
			WillReturnError(errors.New("connection reset"))

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		err = s.Append(context.Background(), event)

		assert.ErrorIs(t, err, store.ErrUnavailable)
	})

	t.Run("invalid event never reaches the database", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		err := s.Append(context.Background(), &domain.SelectionEvent{UserID: 42, CardID: 3})

		assert.ErrorIs(t, err, domain.ErrEventIDEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventStoreCountByCard(t *testing.T) {
	t.Run("aggregates per card", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT card_id, COUNT(id)")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"card_id", "count"}).
				AddRow(1, 12).
				AddRow(4, 100))

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		counts, err := s.CountByCard(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{1: 12, 4: 100}, counts)
	})

	t.Run("no history yields empty map", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT card_id, COUNT(id)")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"card_id", "count"}))

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		counts, err := s.CountByCard(context.Background(), 42)

		require.NoError(t, err)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	t.Run("query failure", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT card_id, COUNT(id)")).
			WillReturnError(errors.New("connection refused"))

		s := postgres.NewPostgresSelectionEventStore(db, nil)
		counts, err := s.CountByCard(context.Background(), 42)

		assert.Nil(t, counts)
		assert.ErrorIs(t, err, store.ErrUnavailable)
	})
}
