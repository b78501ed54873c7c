package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/store"
)

func TestEnsureRegistered_ExistingUser(t *testing.T) {
	userStore := new(MockUserStore)
	existing := testUser(t, 42, "Alex", nil)
	userStore.On("GetByID", mock.Anything, int64(42)).Return(existing, nil)

	svc := NewUserService(userStore, nil)
	user, err := svc.EnsureRegistered(context.Background(), 42, "ignored")

	require.NoError(t, err)
	assert.Equal(t, existing, user)
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureRegistered_FirstContactCreates(t *testing.T) {
	userStore := new(MockUserStore)
	userStore.On("GetByID", mock.Anything, int64(42)).Return(nil, store.ErrUserNotFound).Once()
	userStore.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewUserService(userStore, nil)
	user, err := svc.EnsureRegistered(context.Background(), 42, "Alex")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Alex", user.DisplayName)
	assert.False(t, user.HasGuardian())
	userStore.AssertExpectations(t)
}

func TestEnsureRegistered_LosingRaceReloads(t *testing.T) {
	userStore := new(MockUserStore)
	winner := testUser(t, 42, "Alex", nil)

	userStore.On("GetByID", mock.Anything, int64(42)).Return(nil, store.ErrUserNotFound).Once()
	userStore.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(store.ErrDuplicate)
	userStore.On("GetByID", mock.Anything, int64(42)).Return(winner, nil).Once()

	svc := NewUserService(userStore, nil)
	user, err := svc.EnsureRegistered(context.Background(), 42, "Alex")

	require.NoError(t, err)
	assert.Equal(t, winner, user)
}

func TestEnsureRegistered_InvalidIdentity(t *testing.T) {
	userStore := new(MockUserStore)
	userStore.On("GetByID", mock.Anything, int64(0)).Return(nil, store.ErrUserNotFound)

	svc := NewUserService(userStore, nil)
	user, err := svc.EnsureRegistered(context.Background(), 0, "Alex")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserIDInvalid)
}

func TestEnsureRegistered_LookupErrorPropagates(t *testing.T) {
	userStore := new(MockUserStore)
	lookupErr := errors.New("connection reset")
	userStore.On("GetByID", mock.Anything, int64(42)).Return(nil, lookupErr)

	svc := NewUserService(userStore, nil)
	user, err := svc.EnsureRegistered(context.Background(), 42, "Alex")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, lookupErr)
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetGuardian(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("SetGuardian", mock.Anything, int64(42), int64(900)).Return(nil)

		svc := NewUserService(userStore, nil)
		err := svc.SetGuardian(context.Background(), 42, 900)

		require.NoError(t, err)
		userStore.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("SetGuardian", mock.Anything, int64(42), int64(900)).
			Return(store.ErrUserNotFound)

		svc := NewUserService(userStore, nil)
		err := svc.SetGuardian(context.Background(), 42, 900)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestGetUser(t *testing.T) {
	userStore := new(MockUserStore)
	existing := testUser(t, 42, "Alex", int64Ptr(900))
	userStore.On("GetByID", mock.Anything, int64(42)).Return(existing, nil)

	svc := NewUserService(userStore, nil)
	user, err := svc.GetUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, existing, user)
}
