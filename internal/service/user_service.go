package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/platform/logger"
	"github.com/phrazzld/commboard-api/internal/store"
)

// UserService manages board users and their caregiver bindings.
type UserService interface {
	// EnsureRegistered returns the user with the given transport identity,
	// creating them on first contact. The operation is idempotent: an
	// existing user is returned untouched, even if displayName differs.
	EnsureRegistered(ctx context.Context, id int64, displayName string) (*domain.User, error)

	// GetUser retrieves a user by their transport identity.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// SetGuardian binds the caregiver that receives selection
	// notifications for the given user.
	// Returns store.ErrUserNotFound if the user does not exist.
	SetGuardian(ctx context.Context, userID, guardianID int64) error
}

// Verify interface compliance at compile time
var _ UserService = (*userService)(nil)

// userService implements UserService.
type userService struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
// If logger is nil, a default logger will be used.
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userService{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// EnsureRegistered implements UserService.EnsureRegistered.
func (s *userService) EnsureRegistered(
	ctx context.Context,
	id int64,
	displayName string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user, err = domain.NewUser(id, displayName)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		// A concurrent first contact may have won the race; the existing
		// record is the source of truth then.
		if errors.Is(err, store.ErrDuplicate) {
			return s.userStore.GetByID(ctx, id)
		}
		log.Error("failed to register user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered on first contact", slog.Int64("user_id", id))
	return user, nil
}

// GetUser implements UserService.GetUser.
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userStore.GetByID(ctx, id)
}

// SetGuardian implements UserService.SetGuardian.
func (s *userService) SetGuardian(ctx context.Context, userID, guardianID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.userStore.SetGuardian(ctx, userID, guardianID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return store.ErrUserNotFound
		}
		log.Error("failed to set guardian",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("guardian_id", guardianID))
		return fmt.Errorf("failed to set guardian: %w", err)
	}

	return nil
}
