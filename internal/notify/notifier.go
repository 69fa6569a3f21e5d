package notify

import (
	"context"
	"fmt"

	"katiba/internal/domain"
	"katiba/internal/format"

	"go.uber.org/zap"
)

// MemberLister returns the registered members
type MemberLister interface {
	ListRegisteredMembers(ctx context.Context) ([]domain.Member, error)
}

// Sender delivers a text message to a user
type Sender interface {
	Send(ctx context.Context, userID int64, text string) error
}

// Result is the delivery outcome for one recipient
type Result struct {
	UserID int64
	Err    error
}

// Report collects per-recipient results of one order fan-out
type Report struct {
	OrderID int64
	Results []Result
}

// Delivered returns the number of successful deliveries
func (r Report) Delivered() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the recipients whose delivery failed
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Notifier alerts matching members about new orders
type Notifier struct {
	members MemberLister
	sender  Sender
	logger  *zap.Logger
}

// NewNotifier creates a notifier
func NewNotifier(members MemberLister, sender Sender, logger *zap.Logger) *Notifier {
	return &Notifier{
		members: members,
		sender:  sender,
		logger:  logger,
	}
}

// NotifyOrder sends the order alert to every matching member. Deliveries are
// independent: a failed send is recorded and the loop moves on. The error is
// non-nil only when the member roster could not be loaded.
func (n *Notifier) NotifyOrder(ctx context.Context, order domain.Order) (Report, error) {
	report := Report{OrderID: order.ID}

	if len(order.RequiredSpecialties) == 0 {
		n.logger.Info("Order has no required specialties, skipping notifications",
			zap.Int64("order_id", order.ID),
		)
		return report, nil
	}

	members, err := n.members.ListRegisteredMembers(ctx)
	if err != nil {
		return report, fmt.Errorf("list registered members: %w", err)
	}

	recipients := Match(order.RequiredSpecialties, members)
	text := format.OrderAlert(order)

	for _, id := range recipients {
		err := n.sender.Send(ctx, id, text)
		report.Results = append(report.Results, Result{UserID: id, Err: err})
		if err != nil {
			n.logger.Warn("Failed to notify member",
				zap.Int64("order_id", order.ID),
				zap.Int64("user_id", id),
				zap.Error(err),
			)
		}
	}

	n.logger.Info("Order notifications sent",
		zap.Int64("order_id", order.ID),
		zap.Int("recipients", len(recipients)),
		zap.Int("delivered", report.Delivered()),
		zap.Int("failed", len(report.Failed())),
	)

	return report, nil
}
