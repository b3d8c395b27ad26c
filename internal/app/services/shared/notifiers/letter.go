package notifiers

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// letterNotifier renders a friendly-collection letter, stores it in object
// storage and emails the back-office recipient a download link for printing
// and posting.
type letterNotifier struct {
	storage        contracts.LetterStorage
	mailer         contracts.MailerService
	recipientEmail string
	linkExpiry     time.Duration
	Log            *zap.Logger
}

func NewLetterNotifier(
	storage contracts.LetterStorage,
	mailer contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.Notifier {
	return &letterNotifier{
		storage:        storage,
		mailer:         mailer,
		recipientEmail: internalConfig.Notification.LetterRecipientEmail,
		linkExpiry:     time.Duration(internalConfig.Notification.LetterLinkExpiryInHour) * time.Hour,
		Log:            logger,
	}
}

func (n *letterNotifier) Send(ctx context.Context, contact contracts.ContactInfo, message string) error {
	if n.recipientEmail == "" {
		return Permanent(fmt.Errorf("letter recipient email is not configured"))
	}

	objectName := fmt.Sprintf("letters/%s/%s.txt", contact.ClinicID, uuid.NewString())
	reader := strings.NewReader(message)
	if err := n.storage.Upload(ctx, objectName, reader, int64(len(message)), "text/plain; charset=utf-8"); err != nil {
		return Temporary(fmt.Errorf("letter upload: %w", err))
	}

	link, err := n.storage.PresignedURL(ctx, objectName, n.linkExpiry)
	if err != nil {
		return Temporary(fmt.Errorf("letter presign: %w", err))
	}

	html := fmt.Sprintf(
		"<p>A new collection letter was generated for patient <strong>%s</strong> (contract %s).</p>"+
			"<p><a href=%q>Download the letter</a> for printing and posting.</p>"+
			"<p>This is an automated email, please do not reply.</p>",
		contact.PatientName, contact.ContractID, link,
	)
	err = n.mailer.SendEmail(ctx, &requests.EmailPayload{
		To:       n.recipientEmail,
		Subject:  fmt.Sprintf("Collection letter generated for %s", contact.PatientName),
		HTMLBody: html,
	})
	if err != nil {
		return Temporary(fmt.Errorf("letter email: %w", err))
	}

	n.Log.Info("letterNotifier.Send stored and emailed letter",
		zap.String(constvars.LoggingPatientIDKey, contact.PatientID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return nil
}
