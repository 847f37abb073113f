package audit

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// LogrusSink implements domain.AuditSink on a dedicated logrus logger.
// Recording never fails the caller: a broken formatter or writer is
// logged by logrus itself and otherwise dropped.
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink creates an audit sink. Passing nil uses a JSON logger on
// the standard output.
func NewLogrusSink(logger *logrus.Logger) domain.AuditSink {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &LogrusSink{logger: logger}
}

// Record implements domain.AuditSink
func (s *LogrusSink) Record(_ context.Context, event *domain.AuditEvent) {
	if event == nil {
		return
	}

	fields := logrus.Fields{
		"audit":      true,
		"event_type": event.EventType,
		"username":   event.Username,
		"timestamp":  event.Timestamp,
		"success":    event.Success,
	}
	if event.Reason != "" {
		fields["reason"] = event.Reason
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := s.logger.WithFields(fields)
	if event.Success {
		entry.Info(string(event.EventType))
	} else {
		entry.Warn(string(event.EventType))
	}
}
