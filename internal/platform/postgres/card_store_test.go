package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/platform/postgres"
	"github.com/phrazzld/commboard-api/internal/store"
)

func newMockDB(t *testing.T) (sqlmock.Sqlmock, store.DBTX, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return mock, db, func() { _ = db.Close() }
}

func cardColumns() []string {
	return []string{"id", "slug", "label", "image_ref", "base_priority", "created_at", "updated_at"}
}

func TestCardStoreList(t *testing.T) {
	mock, db, cleanup := newMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, slug, label, image_ref, base_priority, created_at, updated_at")).
		WillReturnRows(sqlmock.NewRows(cardColumns()).
			AddRow(1, "drink", "I want to drink", "cards/drink.png", 100, now, now).
			AddRow(2, "toilet", "I need the toilet", nil, 90, now, now))

	s := postgres.NewPostgresCardStore(db, nil)
	cards, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "drink", cards[0].Slug)
	assert.Equal(t, "cards/drink.png", cards[0].ImageRef)
	assert.Equal(t, "", cards[1].ImageRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardStoreList_Empty(t *testing.T) {
	mock, db, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(cardColumns()))

	s := postgres.NewPostgresCardStore(db, nil)
	cards, err := s.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestCardStoreGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		now := time.Now().UTC()
		mock.ExpectQuery("SELECT").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(cardColumns()).
				AddRow(3, "eat", "I want to eat", nil, 80, now, now))

		s := postgres.NewPostgresCardStore(db, nil)
		card, err := s.GetByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), card.ID)
		assert.Equal(t, "eat", card.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(cardColumns()))

		s := postgres.NewPostgresCardStore(db, nil)
		card, err := s.GetByID(context.Background(), 99)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, store.ErrCardNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})
}

func TestCardStoreGetBySlug_NotFound(t *testing.T) {
	mock, db, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(cardColumns()))

	s := postgres.NewPostgresCardStore(db, nil)
	card, err := s.GetBySlug(context.Background(), "missing")

	assert.Nil(t, card)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardStoreCreate(t *testing.T) {
	t.Run("assigns ID", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		card, err := domain.NewCard("drink", "I want to drink", 100)
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cards")).
			WithArgs(card.Slug, card.Label, card.ImageRef, card.BasePriority, card.CreatedAt, card.UpdatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		s := postgres.NewPostgresCardStore(db, nil)
		require.NoError(t, s.Create(context.Background(), card))
		assert.Equal(t, int64(7), card.ID)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		card, err := domain.NewCard("drink", "I want to drink", 100)
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cards")).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		s := postgres.NewPostgresCardStore(db, nil)
		err = s.Create(context.Background(), card)

		assert.ErrorIs(t, err, store.ErrSlugExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("invalid card never reaches the database", func(t *testing.T) {
		mock, db, cleanup := newMockDB(t)
		defer cleanup()

		s := postgres.NewPostgresCardStore(db, nil)
		err := s.Create(context.Background(), &domain.Card{Label: "no slug"})

		assert.ErrorIs(t, err, domain.ErrCardSlugEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
