package mailer

import (
	"debtflow-service/internal/app/config"
	"net/smtp"
)

type SMTPClient struct {
	Host        string
	Port        int
	Username    string
	Password    string
	EmailSender string
	Auth        smtp.Auth
}

func NewSMTPClient(internalConfig *config.InternalConfig) *SMTPClient {
	auth := smtp.PlainAuth("", internalConfig.SMTP.Username, internalConfig.SMTP.Password, internalConfig.SMTP.Host)
	return &SMTPClient{
		Host:        internalConfig.SMTP.Host,
		Port:        internalConfig.SMTP.Port,
		Username:    internalConfig.SMTP.Username,
		Password:    internalConfig.SMTP.Password,
		EmailSender: internalConfig.SMTP.EmailSender,
		Auth:        auth,
	}
}
