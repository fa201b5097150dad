// FILE: internal/notifier/nats_notifier.go
package notifier

import (
	"context"
	"time"

	"bot-intake-be/internal/entity"
	pkgEvents "bot-intake-be/pkg/events"
	pktNats "bot-intake-be/pkg/nats"
)

// NatsNotifier publishes submissions to the NATS INTAKE stream. Whatever
// bridges the stream to the operator channel (chat, dashboard) picks them up
// from there.
type NatsNotifier struct {
	publisher *pktNats.Publisher
}

func NewNatsNotifier(publisher *pktNats.Publisher) *NatsNotifier {
	return &NatsNotifier{publisher: publisher}
}

func (n *NatsNotifier) Notify(ctx context.Context, sub entity.Submission, targetID int64) error {
	evt := pkgEvents.BaseEvent{
		Type: pkgEvents.TypeSubmissionCompleted,
		Data: map[string]interface{}{
			"submission_id": sub.Id,
			"target_id":     targetID,
			"user_id":       sub.UserID,
			"username":      sub.Username,
			"full_name":     sub.FullName,
			"industry":      sub.Industry,
			"bot_type":      sub.BotType,
			"display_name":  sub.DisplayName,
			"bot_username":  sub.BotUsername,
			"rating":        sub.Rating,
			"text":          sub.Render(),
		},
		OccurredAt: time.Now(),
	}
	return n.publisher.Publish(ctx, evt)
}
