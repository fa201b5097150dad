// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"bot-intake-be/internal/dto"
	"bot-intake-be/internal/notifier"
	"bot-intake-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the internal bus and fans each submission out to
// every configured notifier. A failing sink is logged and skipped; there is
// no retry loop, and one sink's failure never blocks the others.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	notifiers []notifier.Notifier
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	notifiers []notifier.Notifier,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		notifiers: notifiers,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SubmissionCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal submission message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	for _, n := range cs.notifiers {
		if err := n.Notify(ctx, payload.Submission, payload.TargetID); err != nil {
			cs.logger.Error("CONSUMER", "Notifier delivery failed", map[string]interface{}{
				"submission_id": payload.Submission.Id,
				"error":         err.Error(),
			})
		}
	}

	msg.Ack()
}
