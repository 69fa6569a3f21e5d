package repository

import (
	"context"
	"errors"

	"katiba/internal/domain"
)

// ErrNotFound is returned when an update targets a missing row
var ErrNotFound = errors.New("not found")

// OrderRepository defines order data operations
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (int64, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, query domain.OrderQuery) ([]domain.Order, error)
}

// MemberRepository defines member data operations
type MemberRepository interface {
	EnsureMember(ctx context.Context, userID int64, displayName string) error
	RegisterMember(ctx context.Context, userID int64, displayName string, specialties []domain.Specialty) error
	GetMember(ctx context.Context, userID int64) (*domain.Member, error)
	SetMemberSpecialties(ctx context.Context, userID int64, specialties []domain.Specialty) error
	ListRegisteredMembers(ctx context.Context) ([]domain.Member, error)
}
