package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/commboard-api/internal/domain"
)

// UserStore defines the interface for user directory persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The user ID comes from the messaging transport rather than being
	// generated, so the caller supplies the complete entity.
	// Returns ErrDuplicate if a user with the same ID already exists.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their transport identity.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// SetGuardian binds the caregiver identity that receives selection
	// notifications for the given user. The guardian ID only has to be a
	// valid recipient in the transport's address space; it does not need
	// to reference a registered user.
	// Returns ErrUserNotFound if the user does not exist.
	SetGuardian(ctx context.Context, userID, guardianID int64) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
