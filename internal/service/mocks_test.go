package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/commboard-api/internal/domain"
	"github.com/phrazzld/commboard-api/internal/store"
)

// MockCardStore mocks the store.CardStore interface
type MockCardStore struct {
	mock.Mock
}

func (m *MockCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardStore) GetBySlug(ctx context.Context, slug string) (*domain.Card, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	args := m.Called(tx)
	return args.Get(0).(store.CardStore)
}

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) SetGuardian(ctx context.Context, userID, guardianID int64) error {
	args := m.Called(ctx, userID, guardianID)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	args := m.Called(tx)
	return args.Get(0).(store.UserStore)
}

// MockSelectionEventStore mocks the store.SelectionEventStore interface
type MockSelectionEventStore struct {
	mock.Mock
}

func (m *MockSelectionEventStore) Append(ctx context.Context, event *domain.SelectionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSelectionEventStore) CountByCard(
	ctx context.Context,
	userID int64,
) (map[int64]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockSelectionEventStore) WithTx(tx *sql.Tx) store.SelectionEventStore {
	args := m.Called(tx)
	return args.Get(0).(store.SelectionEventStore)
}

// MockNotifier mocks the notify.Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, recipientID int64, text string) error {
	args := m.Called(ctx, recipientID, text)
	return args.Error(0)
}
