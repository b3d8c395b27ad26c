package mailer

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/drivers/mailer"
	"debtflow-service/internal/pkg/dto/requests"
	"fmt"
	"net/smtp"
)

type mailerService struct {
	Client *mailer.SMTPClient
}

func NewMailerService(client *mailer.SMTPClient) contracts.MailerService {
	return &mailerService{Client: client}
}

func (svc *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		request.To, request.Subject, request.HTMLBody,
	))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	return smtp.SendMail(addr, svc.Client.Auth, from, []string{request.To}, msg)
}
