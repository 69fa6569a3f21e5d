package service

import (
	"context"
	"time"

	"katiba/internal/domain"
	"katiba/internal/repository"
)

const defaultListLimit = 20

// OrderService serves the order lists and details
type OrderService struct {
	orderRepo repository.OrderRepository
	loc       *time.Location
	limit     int
	now       func() time.Time
}

// NewOrderService creates a new order service. loc decides what "today" is
// for the upcoming list; limit caps both lists.
func NewOrderService(orderRepo repository.OrderRepository, loc *time.Location, limit int) *OrderService {
	if loc == nil {
		loc = time.UTC
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return &OrderService{
		orderRepo: orderRepo,
		loc:       loc,
		limit:     limit,
		now:       time.Now,
	}
}

// Recent returns the latest recorded orders, newest first
func (s *OrderService) Recent(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListOrders(ctx, domain.OrderQuery{
		Sort:  domain.SortNewest,
		Limit: s.limit,
	})
}

// Upcoming returns open orders whose event is today or later, soonest first
func (s *OrderService) Upcoming(ctx context.Context) ([]domain.Order, error) {
	today := domain.DateOf(s.now(), s.loc)
	return s.orderRepo.ListOrders(ctx, domain.OrderQuery{
		From:            &today,
		ExcludeStatuses: domain.ClosedStatuses,
		Sort:            domain.SortEventDate,
		Limit:           s.limit,
	})
}

// Get returns one order or nil if it does not exist
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.orderRepo.GetOrder(ctx, id)
}
