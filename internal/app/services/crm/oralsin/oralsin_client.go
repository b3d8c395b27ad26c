package oralsin

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type contactActivityRequest struct {
	PatientID   string    `json:"patient_id"`
	ContractID  string    `json:"contract_id"`
	ContactType string    `json:"contact_type"`
	Step        int       `json:"step"`
	Success     bool      `json:"success"`
	SentAt      time.Time `json:"sent_at"`
	Observation string    `json:"observation,omitempty"`
}

type oralsinClient struct {
	httpClient *resty.Client
	Log        *zap.Logger
}

func NewOralsinClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.OralsinClient {
	client := resty.New().
		SetBaseURL(internalConfig.Oralsin.BaseUrl).
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetAuthToken(internalConfig.Oralsin.APIToken).
		SetHeader("Content-Type", "application/json")

	return &oralsinClient{
		httpClient: client,
		Log:        logger,
	}
}

func (c *oralsinClient) RegisterContactActivity(ctx context.Context, history *models.ContactHistory) error {
	body := contactActivityRequest{
		PatientID:   history.PatientID,
		ContractID:  history.ContractID,
		ContactType: history.ContactType,
		Step:        history.Step,
		Success:     history.Success,
		SentAt:      history.SentAt,
		Observation: history.Observation,
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post("contact-activities")
	if err != nil {
		return fmt.Errorf("oralsin register activity: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("oralsin register activity returned %d", resp.StatusCode())
	}
	return nil
}
