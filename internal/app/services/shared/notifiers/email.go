package notifiers

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"fmt"

	"go.uber.org/zap"
)

type emailNotifier struct {
	mailer  contracts.MailerService
	subject string
	Log     *zap.Logger
}

func NewEmailNotifier(mailer contracts.MailerService, logger *zap.Logger) contracts.Notifier {
	return &emailNotifier{
		mailer:  mailer,
		subject: "Overdue installment notice",
		Log:     logger,
	}
}

func (n *emailNotifier) Send(ctx context.Context, contact contracts.ContactInfo, message string) error {
	if contact.Email == "" {
		return Permanent(fmt.Errorf("patient %s has no email address", contact.PatientID))
	}

	err := n.mailer.SendEmail(ctx, &requests.EmailPayload{
		To:       contact.Email,
		Subject:  n.subject,
		HTMLBody: message,
	})
	if err != nil {
		// SMTP failures are transport-level, retry next cycle.
		return Temporary(fmt.Errorf("email send: %w", err))
	}

	n.Log.Info("emailNotifier.Send succeeded",
		zap.String(constvars.LoggingPatientIDKey, contact.PatientID),
	)
	return nil
}
