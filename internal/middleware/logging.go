package middleware

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// TraceIDKey is the context key holding the update's trace id
const TraceIDKey = "trace_id"

// LoggingMiddleware tags each update with a trace id and logs its outcome
func LoggingMiddleware(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			traceID := uuid.NewString()
			c.Set(TraceIDKey, traceID)

			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("trace_id", traceID),
				zap.Int("update_id", c.Update().ID),
				zap.Duration("took", time.Since(start)),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

// TraceID returns the trace id set by LoggingMiddleware, if any
func TraceID(c tele.Context) string {
	if c == nil {
		return ""
	}
	id, _ := c.Get(TraceIDKey).(string)
	return id
}
