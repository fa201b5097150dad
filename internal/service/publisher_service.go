// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"bot-intake-be/internal/dto"
	"bot-intake-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ISubmissionPublisher puts completed submissions on the internal bus. It is
// the engine's SubmissionSink: completion returns as soon as the message is
// accepted, delivery happens on the consumer side.
type ISubmissionPublisher interface {
	Submit(ctx context.Context, sub entity.Submission, targetID int64) error
}

type submissionPublisher struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewSubmissionPublisher(topicName string, pubSub *gochannel.GoChannel) ISubmissionPublisher {
	return &submissionPublisher{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *submissionPublisher) Submit(_ context.Context, sub entity.Submission, targetID int64) error {
	payload := dto.SubmissionCompletedMessage{
		Submission: sub,
		TargetID:   targetID,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal submission message: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), raw)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		return fmt.Errorf("failed to publish submission message: %w", err)
	}
	return nil
}
