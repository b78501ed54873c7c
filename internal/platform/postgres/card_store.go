package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// List implements store.CardStore.List
// It retrieves the full card catalog ordered by ID, which the ranking
// algorithm relies on as the deterministic tie-break order.
func (s *PostgresCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, slug, label, image_ref, base_priority, created_at, updated_at
		FROM cards
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list cards",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	cards := make([]*domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Error("card row iteration failed",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	log.Debug("listed cards", slog.Int("count", len(cards)))
	return cards, nil
}

// GetByID implements store.CardStore.GetByID
// It retrieves a card by its unique ID.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, slug, label, image_ref, base_priority, created_at, updated_at
		FROM cards
		WHERE id = $1
	`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.Int64("card_id", id))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.Int64("card_id", id))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return card, nil
}

// GetBySlug implements store.CardStore.GetBySlug
// It retrieves a card by its unique slug token.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetBySlug(ctx context.Context, slug string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, slug, label, image_ref, base_priority, created_at, updated_at
		FROM cards
		WHERE slug = $1
	`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("slug", slug))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by slug",
			slog.String("error", err.Error()),
			slog.String("slug", slug))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return card, nil
}

// Create implements store.CardStore.Create
// It saves a new card to the catalog and assigns its serial ID.
// Returns store.ErrSlugExists if the slug is already taken.
// Returns validation errors from the domain Card if data is invalid.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("slug", card.Slug))
		return err
	}

	query := `
		INSERT INTO cards (slug, label, image_ref, base_priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		card.Slug,
		card.Label,
		card.ImageRef,
		card.BasePriority,
		card.CreatedAt,
		card.UpdatedAt,
	).Scan(&card.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate slug during card creation",
				slog.String("slug", card.Slug))
			return store.ErrSlugExists
		}
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("slug", card.Slug))
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	log.Info("card created",
		slog.Int64("card_id", card.ID),
		slog.String("slug", card.Slug),
		slog.Int("base_priority", card.BasePriority))
	return nil
}

// WithTx implements store.CardStore.WithTx
// It returns a new CardStore that runs all operations on the provided transaction.
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning code.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCard reads one card row into a domain.Card.
func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	var imageRef sql.NullString

	err := row.Scan(
		&card.ID,
		&card.Slug,
		&card.Label,
		&imageRef,
		&card.BasePriority,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imageRef.Valid {
		card.ImageRef = imageRef.String
	}

	return &card, nil
}
