// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"bot-intake-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSubmission(toEmail string, sub entity.Submission) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendSubmission(toEmail string, sub entity.Submission) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Новая заявка на бота: %s", sub.DisplayName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Новая заявка от @%s (%s)</h2>
			<table cellpadding="4">
				<tr><td><b>Отрасль</b></td><td>%s</td></tr>
				<tr><td><b>Тип бота</b></td><td>%s</td></tr>
				<tr><td><b>Название бота</b></td><td>%s</td></tr>
				<tr><td><b>Имя пользователя бота</b></td><td>%s</td></tr>
				<tr><td><b>Оценка</b></td><td>%d / 5</td></tr>
			</table>
		</div>
	`, sub.Username, sub.FullName, sub.Industry, sub.BotType, sub.DisplayName, sub.BotUsername, sub.Rating)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send submission mail: %w", err)
	}
	return nil
}
