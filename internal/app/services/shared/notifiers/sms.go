package notifiers

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type smsNotifier struct {
	client *resty.Client
	Log    *zap.Logger
}

func NewSMSNotifier(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.Notifier {
	client := resty.New().
		SetBaseURL(internalConfig.SMS.BaseUrl).
		SetTimeout(time.Duration(internalConfig.Notification.SendTimeoutInSecond) * time.Second).
		SetAuthToken(internalConfig.SMS.AuthToken).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	return &smsNotifier{client: client, Log: logger}
}

type smsPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (n *smsNotifier) Send(ctx context.Context, contact contracts.ContactInfo, message string) error {
	if contact.Phone == "" {
		return Permanent(fmt.Errorf("patient %s has no phone number", contact.PatientID))
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(smsPayload{Phone: contact.Phone, Message: message}).
		Post("/sms/send")
	if err != nil {
		return Temporary(fmt.Errorf("sms request: %w", err))
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return Temporary(fmt.Errorf("sms provider returned %d", resp.StatusCode()))
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return Permanent(fmt.Errorf("sms provider rejected message with %d", resp.StatusCode()))
	}

	n.Log.Info("smsNotifier.Send succeeded",
		zap.String(constvars.LoggingPatientIDKey, contact.PatientID),
	)
	return nil
}
