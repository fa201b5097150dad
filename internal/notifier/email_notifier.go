// FILE: internal/notifier/email_notifier.go
package notifier

import (
	"context"

	"bot-intake-be/internal/entity"
	"bot-intake-be/internal/pkg/mailer"
)

// EmailNotifier mails each submission to a fixed operator address. The
// numeric target identifier has no email meaning, so it is ignored here.
type EmailNotifier struct {
	mail       mailer.IEmailService
	operatorTo string
}

func NewEmailNotifier(mail mailer.IEmailService, operatorTo string) *EmailNotifier {
	return &EmailNotifier{mail: mail, operatorTo: operatorTo}
}

func (n *EmailNotifier) Notify(_ context.Context, sub entity.Submission, _ int64) error {
	return n.mail.SendSubmission(n.operatorTo, sub)
}
