// Package notifier delivers completed submissions to the configured sinks.
// The engine never talks to these directly; the consumer service fans out to
// every registered notifier after an event arrives on the internal bus.
package notifier

import (
	"context"

	"bot-intake-be/internal/entity"
	"bot-intake-be/internal/pkg/logger"
)

// Notifier accepts a fully assembled submission plus the destination
// identifier captured when the intake completed.
type Notifier interface {
	Notify(ctx context.Context, sub entity.Submission, targetID int64) error
}

// LogNotifier is the fallback sink when no external channel is configured:
// submissions land in the structured log instead of disappearing.
type LogNotifier struct {
	logger logger.ILogger
}

func NewLogNotifier(log logger.ILogger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(_ context.Context, sub entity.Submission, targetID int64) error {
	n.logger.Info("NOTIFIER", "Submission received", map[string]interface{}{
		"submission_id": sub.Id,
		"target_id":     targetID,
		"message":       sub.Render(),
	})
	return nil
}
