package middleware

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const defaultDisplayName = "مستخدم"

// MemberEnsurer records a user on first contact
type MemberEnsurer interface {
	EnsureMember(ctx context.Context, userID int64, displayName string) error
}

// MemberMiddleware makes sure every sender has a member row before any
// handler runs. A storage failure is logged and the update still goes through.
func MemberMiddleware(members MemberEnsurer, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := members.EnsureMember(ctx, sender.ID, DisplayName(sender)); err != nil {
				logger.Error("Failed to ensure member exists in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
			}

			return next(c)
		}
	}
}

// DisplayName builds the name shown for a Telegram user
func DisplayName(u *tele.User) string {
	if u == nil {
		return defaultDisplayName
	}
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return defaultDisplayName
	}
	return name
}
