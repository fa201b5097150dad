// FILE: internal/entity/submission.go
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is the assembled record of one completed intake conversation.
// It is handed to the notification pipeline and not stored as an entity;
// only the rating survives, appended to ReferenceData.Ratings.
type Submission struct {
	Id          uuid.UUID `json:"id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Industry    string    `json:"industry"`
	BotType     string    `json:"bot_type"`
	DisplayName string    `json:"display_name"`
	BotUsername string    `json:"bot_username"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Render formats the submission the way the operator channel expects it.
func (s Submission) Render() string {
	return fmt.Sprintf(
		"Новая заявка от @%s (%s):\n"+
			"Отрасль: %s\n"+
			"Тип бота: %s\n"+
			"Название бота: %s\n"+
			"Имя пользователя бота: %s\n"+
			"Оценка пользователя: %d",
		s.Username, s.FullName, s.Industry, s.BotType, s.DisplayName, s.BotUsername, s.Rating,
	)
}
