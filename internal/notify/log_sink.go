package notify

import (
	"context"

	"go.uber.org/zap"
)

type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(_ context.Context, n Notification) error {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("message", n.Message),
		zap.String("severity", string(n.Severity)),
	}
	if n.OrderID != "" {
		fields = append(fields, zap.String("orderId", n.OrderID))
	}

	if n.Severity == SeverityError {
		s.logger.Warn("notification", fields...)
		return nil
	}
	s.logger.Info("notification", fields...)
	return nil
}
