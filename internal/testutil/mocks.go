package testutil

import (
	"context"

	"katiba/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock for OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, query domain.OrderQuery) ([]domain.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockMemberRepository is a mock for MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) EnsureMember(ctx context.Context, userID int64, displayName string) error {
	args := m.Called(ctx, userID, displayName)
	return args.Error(0)
}

func (m *MockMemberRepository) RegisterMember(ctx context.Context, userID int64, displayName string, specialties []domain.Specialty) error {
	args := m.Called(ctx, userID, displayName, specialties)
	return args.Error(0)
}

func (m *MockMemberRepository) GetMember(ctx context.Context, userID int64) (*domain.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SetMemberSpecialties(ctx context.Context, userID int64, specialties []domain.Specialty) error {
	args := m.Called(ctx, userID, specialties)
	return args.Error(0)
}

func (m *MockMemberRepository) ListRegisteredMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockSender is a mock for notify.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, userID int64, text string) error {
	args := m.Called(ctx, userID, text)
	return args.Error(0)
}
