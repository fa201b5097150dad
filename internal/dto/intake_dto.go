// FILE: internal/dto/intake_dto.go
package dto

import "bot-intake-be/internal/entity"

// InboundMessageRequest is one chat event from a transport client.
type InboundMessageRequest struct {
	UserID    int64  `json:"user_id" validate:"required"`
	Text      string `json:"text" validate:"required"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
}

// ReplyResponse is the engine's single outward message for one event.
type ReplyResponse struct {
	Text         string   `json:"text"`
	Choices      []string `json:"choices,omitempty"`
	ClearChoices bool     `json:"clear_choices,omitempty"`
}

// SubmissionCompletedMessage is the internal bus payload for one completed
// intake.
type SubmissionCompletedMessage struct {
	Submission entity.Submission `json:"submission"`
	TargetID   int64             `json:"target_id"`
}
