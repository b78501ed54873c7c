package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/service"
)

// MockBoardService mocks the service.BoardService interface
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) GetBoard(ctx context.Context, userID int64) ([]*domain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

// MockSelectionService mocks the service.SelectionService interface
type MockSelectionService struct {
	mock.Mock
}

func (m *MockSelectionService) RecordSelection(
	ctx context.Context,
	userID, cardID int64,
) (*service.SelectionResult, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SelectionResult), args.Error(1)
}

// MockUserService mocks the service.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) EnsureRegistered(
	ctx context.Context,
	id int64,
	displayName string,
) (*domain.User, error) {
	args := m.Called(ctx, id, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SetGuardian(ctx context.Context, userID, guardianID int64) error {
	args := m.Called(ctx, userID, guardianID)
	return args.Error(0)
}
