package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// It saves a new user with the transport-assigned identity.
// Returns store.ErrDuplicate if a user with the same ID already exists.
// Returns validation errors from the domain User if data is invalid.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return err
	}

	query := `
		INSERT INTO users (id, display_name, guardian_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.DisplayName,
		user.GuardianID,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate user during creation",
				slog.Int64("user_id", user.ID))
			return store.ErrDuplicate
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
// It retrieves a user by their transport identity.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, display_name, guardian_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	var guardianID sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.DisplayName,
		&guardianID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if guardianID.Valid {
		user.GuardianID = &guardianID.Int64
	}

	return &user, nil
}

// SetGuardian implements store.UserStore.SetGuardian
// It binds the caregiver identity that receives selection notifications.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) SetGuardian(ctx context.Context, userID, guardianID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if guardianID <= 0 {
		return domain.ErrGuardianIDInvalid
	}

	query := `
		UPDATE users
		SET guardian_id = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, guardianID, time.Now().UTC(), userID)
	if err != nil {
		log.Error("failed to set guardian",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("guardian_id", guardianID))
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected after guardian update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if rows == 0 {
		log.Debug("user not found during guardian update",
			slog.Int64("user_id", userID))
		return store.ErrUserNotFound
	}

	log.Info("guardian bound",
		slog.Int64("user_id", userID),
		slog.Int64("guardian_id", guardianID))
	return nil
}

// WithTx implements store.UserStore.WithTx
// It returns a new UserStore that runs all operations on the provided transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}
