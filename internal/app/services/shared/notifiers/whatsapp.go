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

type whatsAppNotifier struct {
	client *resty.Client
	apiKey string
	Log    *zap.Logger
}

// NewWhatsAppNotifier talks to the DebtApp-style WhatsApp gateway.
func NewWhatsAppNotifier(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.Notifier {
	client := resty.New().
		SetBaseURL(internalConfig.WhatsApp.Endpoint).
		SetTimeout(time.Duration(internalConfig.Notification.SendTimeoutInSecond) * time.Second).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	return &whatsAppNotifier{
		client: client,
		apiKey: internalConfig.WhatsApp.APIKey,
		Log:    logger,
	}
}

type whatsAppPayload struct {
	Number      string                 `json:"number"`
	Options     map[string]interface{} `json:"options"`
	TextMessage struct {
		Text string `json:"text"`
	} `json:"textMessage"`
}

func (n *whatsAppNotifier) Send(ctx context.Context, contact contracts.ContactInfo, message string) error {
	if contact.Phone == "" {
		return Permanent(fmt.Errorf("patient %s has no phone number", contact.PatientID))
	}

	payload := whatsAppPayload{
		Number: contact.Phone,
		Options: map[string]interface{}{
			"delay":       1200,
			"presence":    "composing",
			"linkPreview": false,
		},
	}
	payload.TextMessage.Text = message

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("apikey", n.apiKey).
		SetBody(payload).
		Post("")
	if err != nil {
		return Temporary(fmt.Errorf("whatsapp request: %w", err))
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return Temporary(fmt.Errorf("whatsapp gateway returned %d", resp.StatusCode()))
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return Permanent(fmt.Errorf("whatsapp gateway rejected message with %d", resp.StatusCode()))
	}

	n.Log.Info("whatsAppNotifier.Send succeeded",
		zap.String(constvars.LoggingPatientIDKey, contact.PatientID),
	)
	return nil
}
